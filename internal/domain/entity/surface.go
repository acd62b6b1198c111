package entity

import (
	"image"
	"image/color"
	"unicode/utf8"
)

// Surface is the drawing target the entities render onto
type Surface interface {
	ClearRect(r Rect)
	// DrawImageRegion draws the src sub-rectangle of img stretched into dst.
	DrawImageRegion(img image.Image, src image.Rectangle, dst Rect, alpha float64)
	FillRect(r Rect, clr color.Color)
	StrokeLine(from, to Position, width float64, clr color.Color)
	// DrawText draws s horizontally centered on at.X with its bottom edge on at.Y.
	DrawText(s string, at Position, clr color.Color)
	MeasureText(s string) (w, h float64)
}

// Sound is a playable audio clip. Play is fire-and-forget; overlapping
// plays are not deduplicated.
type Sound interface {
	Play()
}

// DrawOp names a primitive surface operation
type DrawOp string

const (
	OpClear DrawOp = "clear"
	OpImage DrawOp = "image"
	OpFill  DrawOp = "fill"
	OpLine  DrawOp = "line"
	OpText  DrawOp = "text"
)

// DrawCall is one recorded surface operation
type DrawCall struct {
	Op    DrawOp
	Image image.Image
	Src   image.Rectangle
	Dst   Rect
	Alpha float64
	From  Position
	To    Position
	Color color.Color
	Text  string
}

// Recorded glyph metrics of RecordingSurface (ebitenutil debug font cell)
const (
	RecordedGlyphWidth  = 6
	RecordedGlyphHeight = 16
)

// RecordingSurface is a headless Surface that keeps every call in order.
// It backs the replay verifier and draw-order assertions.
type RecordingSurface struct {
	Calls []DrawCall
}

// NewRecordingSurface creates an empty recording surface
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{}
}

func (s *RecordingSurface) ClearRect(r Rect) {
	s.Calls = append(s.Calls, DrawCall{Op: OpClear, Dst: r})
}

func (s *RecordingSurface) DrawImageRegion(img image.Image, src image.Rectangle, dst Rect, alpha float64) {
	s.Calls = append(s.Calls, DrawCall{Op: OpImage, Image: img, Src: src, Dst: dst, Alpha: alpha})
}

func (s *RecordingSurface) FillRect(r Rect, clr color.Color) {
	s.Calls = append(s.Calls, DrawCall{Op: OpFill, Dst: r, Color: clr})
}

func (s *RecordingSurface) StrokeLine(from, to Position, width float64, clr color.Color) {
	s.Calls = append(s.Calls, DrawCall{Op: OpLine, From: from, To: to, Alpha: width, Color: clr})
}

func (s *RecordingSurface) DrawText(text string, at Position, clr color.Color) {
	s.Calls = append(s.Calls, DrawCall{Op: OpText, Text: text, To: at, Color: clr})
}

func (s *RecordingSurface) MeasureText(text string) (float64, float64) {
	return float64(utf8.RuneCountInString(text) * RecordedGlyphWidth), RecordedGlyphHeight
}

// Reset discards the recorded calls
func (s *RecordingSurface) Reset() {
	s.Calls = s.Calls[:0]
}

// Images returns the image draw calls in order
func (s *RecordingSurface) Images() []DrawCall {
	var out []DrawCall
	for _, c := range s.Calls {
		if c.Op == OpImage {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns the drawn strings in order
func (s *RecordingSurface) Texts() []string {
	var out []string
	for _, c := range s.Calls {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}
