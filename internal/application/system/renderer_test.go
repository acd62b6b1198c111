package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/isoroom/internal/domain/entity"
)

func TestRenderer_EntriesFarthestFirst(t *testing.T) {
	w, b, _ := buildTestWorld(t)
	_, err := b.SpawnPlayer(w)
	require.NoError(t, err)

	entries := NewRenderer(w).Entries()
	require.Len(t, entries, 3)

	// floor corner is (0, 1000)
	assert.Same(t, w.Objects[1], entries[0].Entity, "desk")
	assert.Same(t, w.Players[0], entries[1].Entity, "player")
	assert.Same(t, w.Objects[0], entries[2].Entity, "drawer")

	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Distance, entries[i].Distance)
	}
	assert.Equal(t, entity.Position{X: 180, Y: 350}, entries[2].Anchor)
	assert.InDelta(t, 674.46, entries[2].Distance, 0.01)
}

func TestRenderer_TiesKeepInsertionOrder(t *testing.T) {
	w, b, _ := buildTestWorld(t)
	p, err := b.SpawnPlayer(w)
	require.NoError(t, err)
	require.NoError(t, p.SetSize(200))
	require.NoError(t, p.SetPosition(entity.Position{X: 80, Y: 150}))

	entries := NewRenderer(w).Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, entries[1].Distance, entries[2].Distance)
	assert.Same(t, w.Players[0], entries[1].Entity, "players before objects on ties")
	assert.Same(t, w.Objects[0], entries[2].Entity)
}

func TestRenderer_DrawOrder(t *testing.T) {
	w, b, _ := buildTestWorld(t)
	_, err := b.SpawnPlayer(w)
	require.NoError(t, err)

	surface := entity.NewRecordingSurface()
	NewRenderer(w).Render(surface)

	images := surface.Images()
	require.Len(t, images, 4)
	assert.Equal(t, w.Floor.Bounds(), images[0].Dst)
	assert.Equal(t, w.Objects[1].Bounds(), images[1].Dst)
	assert.Equal(t, w.Players[0].Bounds(), images[2].Dst)
	assert.Equal(t, w.Objects[0].Bounds(), images[3].Dst)
	assert.Equal(t, []string{"Alex"}, surface.Texts())
}

func TestRenderer_IsIdempotent(t *testing.T) {
	w, b, _ := buildTestWorld(t)
	p, err := b.SpawnPlayer(w)
	require.NoError(t, err)
	require.NoError(t, p.SetPosition(entity.Position{X: 100, Y: 200}))

	u := NewUpdater(w, 100)
	u.Update(16, entity.CommandNone)
	u.Update(16, entity.CommandE)

	r := NewRenderer(w)
	r.ShowHitbox = true
	r.ShowDistance = true

	first := entity.NewRecordingSurface()
	second := entity.NewRecordingSurface()
	r.Render(first)
	r.Render(second)
	assert.Equal(t, first.Calls, second.Calls)
	assert.Equal(t, 1, w.Objects[0].State())
	assert.True(t, w.Objects[0].IsHighlighted())
}

func TestRenderer_DebugOverlays(t *testing.T) {
	w, b, _ := buildTestWorld(t)
	_, err := b.SpawnPlayer(w)
	require.NoError(t, err)

	count := func(s *entity.RecordingSurface, op entity.DrawOp) int {
		n := 0
		for _, c := range s.Calls {
			if c.Op == op {
				n++
			}
		}
		return n
	}

	r := NewRenderer(w)
	plain := entity.NewRecordingSurface()
	r.Render(plain)
	assert.Zero(t, count(plain, entity.OpLine))

	r.ShowHitbox = true
	r.ShowDistance = true
	debug := entity.NewRecordingSurface()
	r.Render(debug)

	assert.Equal(t, count(plain, entity.OpFill)+3, count(debug, entity.OpFill))
	assert.Equal(t, 3, count(debug, entity.OpLine))

	last := debug.Calls[len(debug.Calls)-1]
	assert.Equal(t, entity.OpLine, last.Op)
	assert.Equal(t, w.Floor.BottomCorner(), last.To)
}

func TestRenderer_EmptyWorld(t *testing.T) {
	w, _, _ := buildTestWorld(t)
	w.Objects = nil

	surface := entity.NewRecordingSurface()
	NewRenderer(w).Render(surface)
	require.Len(t, surface.Calls, 1)
	assert.Equal(t, entity.OpImage, surface.Calls[0].Op)
}
