package entity

import (
	"fmt"
	"image"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FloorConfig holds construction parameters for the Floor
type FloorConfig struct {
	Image    image.Image
	Position Position
	Width    float64
	FadeIn   float64 // ms; 0 shows the floor immediately
}

// Floor is the ground plane. Its bottom corner is the depth reference
// for draw ordering; position and size never change after construction.
type Floor struct {
	position Position
	sprite   *Sprite
	alpha    float64
	fade     *gween.Tween
}

// NewFloor creates the floor, deriving its height from the image aspect
func NewFloor(cfg FloorConfig) (*Floor, error) {
	if !cfg.Position.IsFinite() {
		return nil, fmt.Errorf("floor position: %w", ErrNonFinite)
	}
	sprite, err := NewSprite(cfg.Image, cfg.Width, 1, 1, 0)
	if err != nil {
		return nil, fmt.Errorf("floor: %w", err)
	}

	f := &Floor{position: cfg.Position, sprite: sprite, alpha: 1}
	if cfg.FadeIn > 0 {
		f.alpha = 0
		f.fade = gween.New(0, 1, float32(cfg.FadeIn), ease.OutQuad)
	}
	return f, nil
}

// Update advances the fade-in, if any
func (f *Floor) Update(dt float64) {
	if f.fade == nil {
		return
	}
	v, done := f.fade.Update(float32(dt))
	f.alpha = float64(v)
	if done {
		f.alpha = 1
		f.fade = nil
	}
}

// Alpha returns the current opacity
func (f *Floor) Alpha() float64 { return f.alpha }

// Position returns the top-left corner
func (f *Floor) Position() Position { return f.position }

// Width returns the floor width
func (f *Floor) Width() float64 { return f.sprite.Size() }

// Height returns the floor height derived from the image aspect
func (f *Floor) Height() float64 { return f.sprite.Size() * f.sprite.Aspect() }

// Bounds returns the floor rectangle
func (f *Floor) Bounds() Rect {
	return f.sprite.Bounds(f.position)
}

// BottomCorner returns the bottom-left corner, nearest to the viewer
func (f *Floor) BottomCorner() Position {
	return Position{X: f.position.X, Y: f.position.Y + f.Height()}
}

// DistanceToCorner returns the Euclidean distance from p to BottomCorner
func (f *Floor) DistanceToCorner(p Position) float64 {
	return p.DistanceTo(f.BottomCorner())
}

// Render draws the floor
func (f *Floor) Render(surface Surface) {
	f.sprite.RenderAlpha(surface, f.position, f.alpha)
}
