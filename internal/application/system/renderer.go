package system

import (
	"image/color"
	"sort"

	"github.com/younwookim/isoroom/internal/domain/entity"
	"github.com/younwookim/isoroom/internal/domain/world"
)

// Debug overlay colors
var (
	colorHitbox   = color.RGBA{0, 255, 0, 90}
	colorDistance = color.RGBA{255, 0, 0, 255}
)

const distanceLineWidth = 1

// Drawable is anything the renderer depth-sorts
type Drawable interface {
	Render(surface entity.Surface)
	Bounds() entity.Rect
	Hitbox() entity.Rect
}

// RenderableEntry is one depth-sorted draw
type RenderableEntry struct {
	Entity   Drawable
	Anchor   entity.Position // bottom-center of the sprite box
	Distance float64         // from Anchor to the floor's bottom corner
}

// Renderer draws the world back to front (painter's algorithm)
type Renderer struct {
	world *world.World

	ShowHitbox   bool
	ShowDistance bool
}

// NewRenderer creates a renderer over w
func NewRenderer(w *world.World) *Renderer {
	return &Renderer{world: w}
}

// Entries returns players and objects sorted farthest first. Equal
// distances keep insertion order: players, then objects.
func (r *Renderer) Entries() []RenderableEntry {
	w := r.world
	entries := make([]RenderableEntry, 0, len(w.Players)+len(w.Objects))
	for _, p := range w.Players {
		entries = append(entries, r.entry(p))
	}
	for _, o := range w.Objects {
		entries = append(entries, r.entry(o))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Distance > entries[j].Distance
	})
	return entries
}

func (r *Renderer) entry(d Drawable) RenderableEntry {
	anchor := d.Bounds().BottomCenter()
	dist := 0.0
	if r.world.Floor != nil {
		dist = r.world.Floor.DistanceToCorner(anchor)
	}
	return RenderableEntry{Entity: d, Anchor: anchor, Distance: dist}
}

// Render draws the floor, then every entry farthest first, then the
// enabled debug overlays. It never mutates the world.
func (r *Renderer) Render(surface entity.Surface) {
	if r.world.Floor != nil {
		r.world.Floor.Render(surface)
	}

	entries := r.Entries()
	for _, e := range entries {
		e.Entity.Render(surface)
	}

	if r.ShowHitbox {
		for _, e := range entries {
			surface.FillRect(e.Entity.Hitbox(), colorHitbox)
		}
	}
	if r.ShowDistance && r.world.Floor != nil {
		corner := r.world.Floor.BottomCorner()
		for _, e := range entries {
			surface.StrokeLine(e.Anchor, corner, distanceLineWidth, colorDistance)
		}
	}
}
