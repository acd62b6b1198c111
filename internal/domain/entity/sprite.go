package entity

import (
	"fmt"
	"image"
)

// AtlasState tracks the displayed quad of a sprite sheet and its frame timer.
// Period <= 0 marks a static sprite that never advances on its own.
type AtlasState struct {
	Columns, Rows int
	Col, Row      int
	FrameTimer    float64 // ms
	Period        float64 // ms per frame
}

// Sprite draws one cell of an atlas image at a configured width
type Sprite struct {
	image  image.Image
	atlas  AtlasState
	size   float64
	aspect float64 // cell height / cell width
}

// NewSprite creates a sprite over an atlas of columns x rows equal cells.
// A nil image is accepted; such a sprite keeps its state but draws nothing.
func NewSprite(img image.Image, size float64, columns, rows int, period float64) (*Sprite, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("atlas %dx%d: %w", columns, rows, ErrInvalidAtlas)
	}
	if !validSize(size) {
		return nil, fmt.Errorf("sprite size %v: %w", size, ErrInvalidSize)
	}
	if !isFinite(period) {
		return nil, fmt.Errorf("sprite period: %w", ErrNonFinite)
	}

	s := &Sprite{
		image:  img,
		atlas:  AtlasState{Columns: columns, Rows: rows, Period: period},
		size:   size,
		aspect: 1,
	}
	if img != nil {
		b := img.Bounds()
		if b.Dx() > 0 && b.Dy() > 0 {
			s.aspect = (float64(b.Dy()) / float64(rows)) / (float64(b.Dx()) / float64(columns))
		}
	}
	return s, nil
}

// Advance accumulates dt and steps to the next column of the active row
// once a full period has elapsed.
func (s *Sprite) Advance(dt float64) {
	if s.atlas.Period <= 0 {
		return
	}
	s.atlas.FrameTimer += dt
	if s.atlas.FrameTimer >= s.atlas.Period {
		s.atlas.FrameTimer = 0
		s.atlas.Col = (s.atlas.Col + 1) % s.atlas.Columns
	}
}

// AdvanceRow selects row and advances the animation on it.
// Rows outside the atlas are ignored.
func (s *Sprite) AdvanceRow(dt float64, row int) {
	if row >= 0 && row < s.atlas.Rows {
		s.atlas.Row = row
	}
	s.Advance(dt)
}

// SetQuad forces an explicit frame
func (s *Sprite) SetQuad(col, row int) error {
	if col < 0 || col >= s.atlas.Columns || row < 0 || row >= s.atlas.Rows {
		return fmt.Errorf("quad (%d,%d) in %dx%d atlas: %w", col, row, s.atlas.Columns, s.atlas.Rows, ErrQuadOutOfRange)
	}
	s.setQuad(col, row)
	return nil
}

// setQuad selects a frame, clamping each index into the atlas
func (s *Sprite) setQuad(col, row int) {
	s.atlas.Col = clampIndex(col, s.atlas.Columns)
	s.atlas.Row = clampIndex(row, s.atlas.Rows)
}

func clampIndex(i, n int) int {
	switch {
	case i < 0:
		return 0
	case i >= n:
		return n - 1
	}
	return i
}

// Reset returns to column 0 of the current row
func (s *Sprite) Reset() {
	s.atlas.Col = 0
	s.atlas.FrameTimer = 0
}

// SetSize changes the rendered width; the atlas is untouched
func (s *Sprite) SetSize(size float64) error {
	if !validSize(size) {
		return fmt.Errorf("sprite size %v: %w", size, ErrInvalidSize)
	}
	s.size = size
	return nil
}

// Size returns the rendered width
func (s *Sprite) Size() float64 { return s.size }

// Aspect returns the cell height to width ratio (1 without an image)
func (s *Sprite) Aspect() float64 { return s.aspect }

// Quad returns the displayed (column, row)
func (s *Sprite) Quad() (int, int) { return s.atlas.Col, s.atlas.Row }

// Atlas returns a copy of the atlas state
func (s *Sprite) Atlas() AtlasState { return s.atlas }

// Image returns the atlas image handle (may be nil)
func (s *Sprite) Image() image.Image { return s.image }

// Bounds returns the rendered rectangle when drawn at pos
func (s *Sprite) Bounds(pos Position) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: s.size, Height: s.size * s.aspect}
}

// Render draws the current quad at pos
func (s *Sprite) Render(surface Surface, pos Position) {
	s.RenderAlpha(surface, pos, 1)
}

// RenderAlpha draws the current quad at pos with the given opacity
func (s *Sprite) RenderAlpha(surface Surface, pos Position, alpha float64) {
	if s.image == nil {
		return
	}
	surface.DrawImageRegion(s.image, s.cell(s.atlas.Col, s.atlas.Row), s.Bounds(pos), alpha)
}

func (s *Sprite) cell(col, row int) image.Rectangle {
	b := s.image.Bounds()
	cw := b.Dx() / s.atlas.Columns
	ch := b.Dy() / s.atlas.Rows
	x := b.Min.X + col*cw
	y := b.Min.Y + row*ch
	return image.Rect(x, y, x+cw, y+ch)
}
