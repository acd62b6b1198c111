// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/isoroom/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
// It measures wall-clock time between ticks and hands it to the
// current scene in milliseconds.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	now  func() time.Time
	last time.Time
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		now:     time.Now,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.tick())
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// tick returns the milliseconds elapsed since the previous call, 0 the first time
func (g *Game) tick() float64 {
	now := g.now()
	defer func() { g.last = now }()
	if g.last.IsZero() {
		return 0
	}
	return float64(now.Sub(g.last)) / float64(time.Millisecond)
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetClock replaces the time source. Useful for testing.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
	g.last = time.Time{}
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}
