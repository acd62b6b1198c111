package screen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/isoroom/internal/domain/entity"
)

var colorBackground = color.RGBA{26, 26, 46, 255}

// Screen draws entity surfaces onto an ebiten image
type Screen struct {
	target *ebiten.Image
	face   *text.GoTextFace
	images map[image.Image]*ebiten.Image
}

// New creates a screen with a Go Regular label face of the given size
func New(fontSize float64) (*Screen, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Screen{
		face:   &text.GoTextFace{Source: source, Size: fontSize},
		images: make(map[image.Image]*ebiten.Image),
	}, nil
}

// SetTarget selects the image drawn to until the next call
func (s *Screen) SetTarget(target *ebiten.Image) {
	s.target = target
}

// ClearRect paints r with the background color
func (s *Screen) ClearRect(r entity.Rect) {
	vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), colorBackground, false)
}

// DrawImageRegion draws src of img scaled into dst
func (s *Screen) DrawImageRegion(img image.Image, src image.Rectangle, dst entity.Rect, alpha float64) {
	if img == nil || src.Empty() || alpha <= 0 {
		return
	}
	sub := s.ebitenImage(img).SubImage(src).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.Width/float64(src.Dx()), dst.Height/float64(src.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(sub, op)
}

// ebitenImage uploads img once; atlases are reused every frame
func (s *Screen) ebitenImage(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := s.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	s.images[img] = e
	return e
}

// FillRect fills r with clr
func (s *Screen) FillRect(r entity.Rect, clr color.Color) {
	vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}

// StrokeLine draws an antialiased line
func (s *Screen) StrokeLine(from, to entity.Position, width float64, clr color.Color) {
	vector.StrokeLine(s.target, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), clr, true)
}

// DrawText draws str centered on at.X with its bottom edge on at.Y
func (s *Screen) DrawText(str string, at entity.Position, clr color.Color) {
	_, h := s.MeasureText(str)

	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y-h)
	op.PrimaryAlign = text.AlignCenter
	op.LineSpacing = s.face.Size
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.target, str, s.face, op)
}

// MeasureText returns the rendered size of str
func (s *Screen) MeasureText(str string) (float64, float64) {
	return text.Measure(str, s.face, s.face.Size)
}
