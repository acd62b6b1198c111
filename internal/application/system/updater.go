package system

import (
	"math"

	"github.com/younwookim/isoroom/internal/domain/entity"
	"github.com/younwookim/isoroom/internal/domain/world"
)

// Reasons reported by SanitizeDelta
const (
	DeltaNonFinite = "nonfinite"
	DeltaNegative  = "negative"
	DeltaClamped   = "clamped"
)

// Updater advances the whole world by one tick
type Updater struct {
	world *world.World

	// MaxDelta clamps long ticks (ms); 0 disables clamping
	MaxDelta float64

	// Event callbacks
	OnToggle   func(obj *entity.InteractiveObject, t entity.Transition)
	OnSanitize func(reason string, raw float64)
}

// NewUpdater creates an updater over w
func NewUpdater(w *world.World, maxDelta float64) *Updater {
	return &Updater{world: w, MaxDelta: maxDelta}
}

// SanitizeDelta replaces unusable tick deltas. reason is empty when dt is kept.
func SanitizeDelta(dt, maxDelta float64) (float64, string) {
	switch {
	case math.IsNaN(dt) || math.IsInf(dt, 0):
		return 0, DeltaNonFinite
	case dt < 0:
		return 0, DeltaNegative
	case maxDelta > 0 && dt > maxDelta:
		return maxDelta, DeltaClamped
	}
	return dt, ""
}

// Update runs one tick: floor, then every object, then every player.
// Objects read the highlight the players set on the previous tick.
func (u *Updater) Update(dt float64, cmd entity.Command) {
	dt = u.Sanitize(dt)

	w := u.world
	if w.Floor != nil {
		w.Floor.Update(dt)
	}

	for _, o := range w.Objects {
		if t, fired := o.Update(cmd); fired && u.OnToggle != nil {
			u.OnToggle(o, t)
		}
	}

	for _, p := range w.Players {
		p.Update(dt, w.Objects, cmd)
	}

	// with nobody left to overlap them, no prop stays highlighted
	if len(w.Players) == 0 {
		for _, o := range w.Objects {
			o.SetHighlight(false)
		}
	}
}

// Sanitize applies SanitizeDelta with MaxDelta and reports replacements
func (u *Updater) Sanitize(raw float64) float64 {
	dt, reason := SanitizeDelta(raw, u.MaxDelta)
	if reason != "" && u.OnSanitize != nil {
		u.OnSanitize(reason, raw)
	}
	return dt
}
