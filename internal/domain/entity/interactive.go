package entity

import (
	"fmt"
	"image"
)

// Rows of an interactive object's atlas
const (
	RowIdle        = 0
	RowHighlighted = 1
)

// promptSpacing is the vertical distance between stacked prompts
const promptSpacing = 30

// Action is an interaction bound to one action key
type Action struct {
	Sound   Sound
	Prompt  Label
	Options []string
}

// ActionConfig describes one action of an object
type ActionConfig struct {
	Sound   Sound
	Icon    image.Image
	Options []string
}

// ObjectConfig holds construction parameters for an InteractiveObject
type ObjectConfig struct {
	Name            string
	Image           image.Image
	Position        Position
	Size            float64
	AnimationPeriod float64
	StateCount      int
	HitboxScale     float64
	Actions         []ActionConfig
}

// InteractiveObject is a stationary prop toggled through its states by
// action keys while a player stands on it.
type InteractiveObject struct {
	ID EntityID

	name        string
	position    Position
	sprite      *Sprite
	machine     ToggleMachine
	highlighted bool
	actions     []Action
	lastCommand Command
	hitboxScale float64
}

// NewInteractiveObject validates cfg and creates a closed, unhighlighted object
func NewInteractiveObject(cfg ObjectConfig) (*InteractiveObject, error) {
	if cfg.StateCount <= 0 {
		return nil, fmt.Errorf("object %q: %d states: %w", cfg.Name, cfg.StateCount, ErrInvalidStateCount)
	}
	if len(cfg.Actions) > MaxActions {
		return nil, fmt.Errorf("object %q: %d actions, %d keys: %w", cfg.Name, len(cfg.Actions), MaxActions, ErrTooManyActions)
	}
	if !cfg.Position.IsFinite() {
		return nil, fmt.Errorf("object %q position: %w", cfg.Name, ErrNonFinite)
	}
	if !(cfg.HitboxScale > 0 && cfg.HitboxScale <= 1) {
		return nil, fmt.Errorf("object %q hitbox %v: %w", cfg.Name, cfg.HitboxScale, ErrInvalidHitbox)
	}
	sprite, err := NewSprite(cfg.Image, cfg.Size, cfg.StateCount, 2, cfg.AnimationPeriod)
	if err != nil {
		return nil, fmt.Errorf("object %q: %w", cfg.Name, err)
	}

	actions := make([]Action, len(cfg.Actions))
	for i, a := range cfg.Actions {
		text := ""
		if len(a.Options) > 0 {
			text = a.Options[0]
		}
		actions[i] = Action{
			Sound:   a.Sound,
			Prompt:  Label{Text: text, Icon: a.Icon},
			Options: append([]string(nil), a.Options...),
		}
	}

	return &InteractiveObject{
		name:        cfg.Name,
		position:    cfg.Position,
		sprite:      sprite,
		machine:     NewToggleMachine(cfg.StateCount),
		actions:     actions,
		hitboxScale: cfg.HitboxScale,
	}, nil
}

// Update applies a rising key edge while highlighted, then shows the
// quad for the current state and highlight. The highlight read here was
// set by the players on the previous tick.
func (o *InteractiveObject) Update(cmd Command) (Transition, bool) {
	var (
		t     Transition
		fired bool
	)
	if o.lastCommand.IsNone() && o.highlighted {
		t, fired = o.toggle(cmd)
	}

	row := RowIdle
	if o.highlighted {
		row = RowHighlighted
	}
	o.sprite.setQuad(o.machine.Current, row)
	o.lastCommand = cmd
	return t, fired
}

func (o *InteractiveObject) toggle(cmd Command) (Transition, bool) {
	idx, ok := cmd.ActionIndex()
	if !ok || idx >= len(o.actions) {
		return Transition{}, false
	}
	t, ok := o.machine.Next(idx)
	if !ok {
		return Transition{}, false
	}
	o.machine.Apply(t)
	if t.Sound != NoSound {
		if snd := o.actions[t.Sound].Sound; snd != nil {
			snd.Play()
		}
	}
	return t, true
}

// Name returns the object's scene name
func (o *InteractiveObject) Name() string { return o.name }

// State returns the current toggle state
func (o *InteractiveObject) State() int { return o.machine.Current }

// ActionTarget returns the state the primary action opens into
func (o *InteractiveObject) ActionTarget() int { return o.machine.Target }

// StateCount returns the number of states
func (o *InteractiveObject) StateCount() int { return o.machine.StateCount }

// Actions returns the bound actions
func (o *InteractiveObject) Actions() []Action { return o.actions }

// IsHighlighted reports whether a player overlapped the object on the last player pass
func (o *InteractiveObject) IsHighlighted() bool { return o.highlighted }

// SetHighlight sets the highlight flag
func (o *InteractiveObject) SetHighlight(h bool) { o.highlighted = h }

// LastCommand returns the command seen on the previous update
func (o *InteractiveObject) LastCommand() Command { return o.lastCommand }

// Position returns the top-left corner of the sprite
func (o *InteractiveObject) Position() Position { return o.position }

// SetPosition moves the object; non-finite coordinates are rejected
func (o *InteractiveObject) SetPosition(pos Position) error {
	if !pos.IsFinite() {
		return fmt.Errorf("object %q position: %w", o.name, ErrNonFinite)
	}
	o.position = pos
	return nil
}

// Size returns the rendered width
func (o *InteractiveObject) Size() float64 { return o.sprite.Size() }

// SetSize changes the rendered width
func (o *InteractiveObject) SetSize(size float64) error {
	return o.sprite.SetSize(size)
}

// Sprite returns the object's sprite
func (o *InteractiveObject) Sprite() *Sprite { return o.sprite }

// Bounds returns the full sprite rectangle
func (o *InteractiveObject) Bounds() Rect {
	return o.sprite.Bounds(o.position)
}

// Hitbox returns the collision rectangle
func (o *InteractiveObject) Hitbox() Rect {
	return o.Bounds().Shrink(o.hitboxScale)
}

// Render draws the sprite and, while highlighted, the action prompts.
// An object without an image draws nothing.
func (o *InteractiveObject) Render(surface Surface) {
	if o.sprite.Image() == nil {
		return
	}
	o.sprite.Render(surface, o.position)
	o.renderPrompts(surface)
}

// PromptText returns the text shown for action i in the current state
func (o *InteractiveObject) PromptText(i int) string {
	a := o.actions[i]
	if len(a.Options) == 0 {
		return ""
	}
	if i == 0 && o.machine.Current != 0 && len(a.Options) > 1 {
		return a.Options[1]
	}
	return a.Options[0]
}

func (o *InteractiveObject) renderPrompts(surface Surface) {
	if !o.highlighted {
		return
	}
	anchor := Position{X: o.position.X + o.sprite.Size()/2, Y: o.position.Y}
	for i, a := range o.actions {
		if i != 0 && !o.machine.Intermediate() {
			continue
		}
		a.Prompt.RenderText(surface, Position{X: anchor.X, Y: anchor.Y - float64(i*promptSpacing)}, o.PromptText(i))
	}
}
