package entity

import (
	"fmt"
	"image"
)

// Player atlas layout: one row per direction, two walk frames per row
const (
	PlayerAtlasColumns = 2
	PlayerAtlasRows    = 4
)

// PlayerConfig holds construction parameters for a Player
type PlayerConfig struct {
	Name            string
	Image           image.Image
	Position        Position
	Speed           float64 // pixels per ms
	Size            float64
	AnimationPeriod float64 // ms
	HitboxScale     float64 // fraction of the sprite box kept for collisions
}

// Player is the controllable character
type Player struct {
	ID EntityID

	name         Label
	sprite       *Sprite
	speed        float64
	position     Position
	displacement Position
	direction    Direction
	walking      bool
	hitboxScale  float64
}

// NewPlayer creates a player facing left, idle
func NewPlayer(cfg PlayerConfig) (*Player, error) {
	if !isFinite(cfg.Speed) || cfg.Speed < 0 {
		return nil, fmt.Errorf("player %q: %w", cfg.Name, ErrInvalidSpeed)
	}
	if !cfg.Position.IsFinite() {
		return nil, fmt.Errorf("player %q position: %w", cfg.Name, ErrNonFinite)
	}
	if !(cfg.HitboxScale > 0 && cfg.HitboxScale <= 1) {
		return nil, fmt.Errorf("player %q hitbox %v: %w", cfg.Name, cfg.HitboxScale, ErrInvalidHitbox)
	}
	sprite, err := NewSprite(cfg.Image, cfg.Size, PlayerAtlasColumns, PlayerAtlasRows, cfg.AnimationPeriod)
	if err != nil {
		return nil, fmt.Errorf("player %q: %w", cfg.Name, err)
	}

	return &Player{
		name:        Label{Text: cfg.Name},
		sprite:      sprite,
		speed:       cfg.Speed,
		position:    cfg.Position,
		direction:   DirLeft,
		hitboxScale: cfg.HitboxScale,
	}, nil
}

// Update checks collisions against every object, then moves on a
// direction command or idles otherwise.
func (p *Player) Update(dt float64, objects []*InteractiveObject, cmd Command) {
	p.checkCollisions(objects)

	dir, ok := cmd.Direction()
	if !ok {
		p.reset()
		return
	}
	p.updateDirection(dt, dir)
	p.position = p.position.Add(p.displacement)
}

// Displacement returns the displacement applied on the last update
func (p *Player) Displacement() Position {
	return p.displacement
}

func (p *Player) updateDirection(dt float64, dir Direction) {
	step := p.speed * dt
	iso := step * IsometricRatio

	switch dir {
	case DirUp:
		p.displacement = Position{X: step, Y: -iso}
	case DirDown:
		p.displacement = Position{X: -step, Y: iso}
	case DirLeft:
		p.displacement = Position{X: -step, Y: -iso}
	case DirRight:
		p.displacement = Position{X: step, Y: iso}
	}

	p.direction = dir
	p.sprite.AdvanceRow(dt, dir.Row())
	p.walking = true
}

func (p *Player) reset() {
	p.displacement = Position{}
	p.sprite.Reset()
	p.walking = false
}

func (p *Player) checkCollisions(objects []*InteractiveObject) {
	hitbox := p.Hitbox()
	for _, o := range objects {
		o.SetHighlight(hitbox.Overlaps(o.Hitbox()))
	}
}

// Name returns the display name
func (p *Player) Name() string { return p.name.Text }

// Position returns the top-left corner of the sprite
func (p *Player) Position() Position { return p.position }

// SetPosition moves the player; non-finite coordinates are rejected
func (p *Player) SetPosition(pos Position) error {
	if !pos.IsFinite() {
		return fmt.Errorf("player %q position: %w", p.name.Text, ErrNonFinite)
	}
	p.position = pos
	return nil
}

// Size returns the rendered width
func (p *Player) Size() float64 { return p.sprite.Size() }

// SetSize changes the rendered width
func (p *Player) SetSize(size float64) error {
	return p.sprite.SetSize(size)
}

// Speed returns the movement speed in pixels per ms
func (p *Player) Speed() float64 { return p.speed }

// Direction returns the last movement direction
func (p *Player) Direction() Direction { return p.direction }

// IsWalking reports whether the player moved on the last update
func (p *Player) IsWalking() bool { return p.walking }

// Sprite returns the player's sprite
func (p *Player) Sprite() *Sprite { return p.sprite }

// Bounds returns the full sprite rectangle
func (p *Player) Bounds() Rect {
	return p.sprite.Bounds(p.position)
}

// Hitbox returns the collision rectangle
func (p *Player) Hitbox() Rect {
	return p.Bounds().Shrink(p.hitboxScale)
}

// Render draws the sprite and the floating name above it.
// A player without an image draws nothing.
func (p *Player) Render(surface Surface) {
	if p.sprite.Image() == nil {
		return
	}
	p.sprite.Render(surface, p.position)
	p.name.Render(surface, Position{
		X: p.position.X + p.sprite.Size()/2,
		Y: p.position.Y - 5,
	})
}
