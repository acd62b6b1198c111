package config

import (
	"fmt"
	"math"
)

// SceneConfig is the root config for scenes/<name>.json|yaml
type SceneConfig struct {
	Name       string        `json:"name" yaml:"name"`
	Floor      FloorConfig   `json:"floor" yaml:"floor"`
	Player     PlayerConfig  `json:"player" yaml:"player"`
	MaxPlayers int           `json:"maxPlayers" yaml:"maxPlayers"`
	Props      []PropConfig  `json:"props" yaml:"props"`
	Debug      DebugConfig   `json:"debug" yaml:"debug"`
	Audio      AudioConfig   `json:"audio" yaml:"audio"`
	Spawns     []PointConfig `json:"spawns" yaml:"spawns"` // extra players cycle through these
}

// PointConfig is a position in screen pixels
type PointConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// FloorConfig describes the ground plane
type FloorConfig struct {
	Image  string      `json:"image" yaml:"image"`
	Pos    PointConfig `json:"pos" yaml:"pos"`
	Width  float64     `json:"width" yaml:"width"`
	FadeIn float64     `json:"fadeIn" yaml:"fadeIn"` // ms
}

// PlayerConfig is the template every spawned player is built from
type PlayerConfig struct {
	Name            string      `json:"name" yaml:"name"`
	Image           string      `json:"image" yaml:"image"`
	Pos             PointConfig `json:"pos" yaml:"pos"`
	Speed           float64     `json:"speed" yaml:"speed"` // px/ms
	Size            float64     `json:"size" yaml:"size"`
	AnimationPeriod float64     `json:"animationPeriod" yaml:"animationPeriod"` // ms
	HitboxScale     float64     `json:"hitboxScale" yaml:"hitboxScale"`
}

// PropConfig describes one interactive object
type PropConfig struct {
	Name            string         `json:"name" yaml:"name"`
	Image           string         `json:"image" yaml:"image"`
	Pos             PointConfig    `json:"pos" yaml:"pos"`
	Size            float64        `json:"size" yaml:"size"`
	AnimationPeriod float64        `json:"animationPeriod" yaml:"animationPeriod"`
	States          int            `json:"states" yaml:"states"`
	HitboxScale     float64        `json:"hitboxScale" yaml:"hitboxScale"`
	Actions         []ActionConfig `json:"actions" yaml:"actions"`
}

// ActionConfig binds a sound and prompt options to the next free action key
type ActionConfig struct {
	Sound   string   `json:"sound" yaml:"sound"`
	Icon    string   `json:"icon" yaml:"icon"`
	Options []string `json:"options" yaml:"options"`
}

// DebugConfig sets the initial state of the debug overlays
type DebugConfig struct {
	ShowHitbox   bool `json:"showHitbox" yaml:"showHitbox"`
	ShowDistance bool `json:"showDistance" yaml:"showDistance"`
}

// AudioConfig configures the sound library
type AudioConfig struct {
	SampleRate int     `json:"sampleRate" yaml:"sampleRate"`
	Volume     float64 `json:"volume" yaml:"volume"` // beep exponent, 0 is unchanged
	Muted      bool    `json:"muted" yaml:"muted"`
}

const (
	defaultMaxPlayers  = 4
	defaultHitboxScale = 1
	defaultSampleRate  = 44100
	maxActions         = 3
)

func (c *SceneConfig) applyDefaults() {
	if c.MaxPlayers == 0 {
		c.MaxPlayers = defaultMaxPlayers
	}
	if c.Player.HitboxScale == 0 {
		c.Player.HitboxScale = defaultHitboxScale
	}
	for i := range c.Props {
		if c.Props[i].HitboxScale == 0 {
			c.Props[i].HitboxScale = defaultHitboxScale
		}
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = defaultSampleRate
	}
}

// SpawnPoint returns where the n-th player (0-based) appears
func (c *SceneConfig) SpawnPoint(n int) PointConfig {
	if n == 0 || len(c.Spawns) == 0 {
		return c.Player.Pos
	}
	return c.Spawns[(n-1)%len(c.Spawns)]
}

// Validate checks scene values before any entity is built
func (c *SceneConfig) Validate() error {
	if c.Floor.Width <= 0 {
		return fmt.Errorf("floor width %v: %w", c.Floor.Width, ErrInvalidConfig)
	}
	if c.Floor.FadeIn < 0 {
		return fmt.Errorf("floor fadeIn %v: %w", c.Floor.FadeIn, ErrInvalidConfig)
	}
	if !finite(c.Floor.Pos) {
		return fmt.Errorf("floor pos: %w", ErrInvalidConfig)
	}
	if err := c.Player.validate(); err != nil {
		return err
	}
	for _, p := range c.Spawns {
		if !finite(p) {
			return fmt.Errorf("spawn %v: %w", p, ErrInvalidConfig)
		}
	}
	if c.MaxPlayers < 0 {
		return fmt.Errorf("maxPlayers %d: %w", c.MaxPlayers, ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Props))
	for i := range c.Props {
		p := &c.Props[i]
		if p.Name == "" {
			return fmt.Errorf("prop %d has no name: %w", i, ErrInvalidConfig)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("prop %q defined twice: %w", p.Name, ErrInvalidConfig)
		}
		seen[p.Name] = struct{}{}
		if err := p.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p *PlayerConfig) validate() error {
	switch {
	case p.Speed < 0 || math.IsNaN(p.Speed) || math.IsInf(p.Speed, 0):
		return fmt.Errorf("player speed %v: %w", p.Speed, ErrInvalidConfig)
	case p.Size <= 0:
		return fmt.Errorf("player size %v: %w", p.Size, ErrInvalidConfig)
	case p.HitboxScale <= 0 || p.HitboxScale > 1:
		return fmt.Errorf("player hitboxScale %v: %w", p.HitboxScale, ErrInvalidConfig)
	case !finite(p.Pos):
		return fmt.Errorf("player pos: %w", ErrInvalidConfig)
	}
	return nil
}

func (p *PropConfig) validate() error {
	switch {
	case p.States <= 0:
		return fmt.Errorf("prop %q states %d: %w", p.Name, p.States, ErrInvalidConfig)
	case p.Size <= 0:
		return fmt.Errorf("prop %q size %v: %w", p.Name, p.Size, ErrInvalidConfig)
	case p.HitboxScale <= 0 || p.HitboxScale > 1:
		return fmt.Errorf("prop %q hitboxScale %v: %w", p.Name, p.HitboxScale, ErrInvalidConfig)
	case len(p.Actions) > maxActions:
		return fmt.Errorf("prop %q has %d actions, max %d: %w", p.Name, len(p.Actions), maxActions, ErrInvalidConfig)
	case !finite(p.Pos):
		return fmt.Errorf("prop %q pos: %w", p.Name, ErrInvalidConfig)
	}
	for i, a := range p.Actions {
		if len(a.Options) == 0 {
			return fmt.Errorf("prop %q action %d has no options: %w", p.Name, i, ErrInvalidConfig)
		}
	}
	return nil
}

func finite(p PointConfig) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
