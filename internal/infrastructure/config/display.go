package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	Title        string     `json:"title"`
	ScreenWidth  int        `json:"screenWidth"`
	ScreenHeight int        `json:"screenHeight"`
	Scale        float64    `json:"scale"`
	TPS          int        `json:"tps"`
	MaxDelta     float64    `json:"maxDelta"` // ms; longer ticks are clamped
	MetricsAddr  string     `json:"metricsAddr"`
	Font         FontConfig `json:"font"`
}

// FontConfig configures label text
type FontConfig struct {
	Size float64 `json:"size"`
}

// DefaultDisplay returns the values used for keys missing from display.json
func DefaultDisplay() *DisplayConfig {
	return &DisplayConfig{
		Title:        "isoroom",
		ScreenWidth:  1000,
		ScreenHeight: 700,
		Scale:        1,
		TPS:          60,
		MaxDelta:     100,
		Font:         FontConfig{Size: 14},
	}
}

// Validate checks display values
func (c *DisplayConfig) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("screen %dx%d: %w", c.ScreenWidth, c.ScreenHeight, ErrInvalidConfig)
	case c.Scale <= 0:
		return fmt.Errorf("scale %v: %w", c.Scale, ErrInvalidConfig)
	case c.TPS <= 0:
		return fmt.Errorf("tps %d: %w", c.TPS, ErrInvalidConfig)
	case c.MaxDelta <= 0:
		return fmt.Errorf("maxDelta %v: %w", c.MaxDelta, ErrInvalidConfig)
	case c.Font.Size <= 0:
		return fmt.Errorf("font size %v: %w", c.Font.Size, ErrInvalidConfig)
	}
	return nil
}
