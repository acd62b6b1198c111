package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/isoroom/internal/domain/entity"
)

func newPlayer(t *testing.T, name string) *entity.Player {
	t.Helper()
	p, err := entity.NewPlayer(entity.PlayerConfig{Name: name, Speed: 0.4, Size: 100, HitboxScale: 1})
	require.NoError(t, err)
	return p
}

func newObject(t *testing.T, name string) *entity.InteractiveObject {
	t.Helper()
	o, err := entity.NewInteractiveObject(entity.ObjectConfig{Name: name, Size: 100, StateCount: 3, HitboxScale: 1})
	require.NoError(t, err)
	return o
}

func TestNew(t *testing.T) {
	w := New(nil)

	assert.NotNil(t, w)
	assert.Equal(t, entity.EntityID(1), w.nextID)
	assert.Empty(t, w.Players)
	assert.Empty(t, w.Objects)
}

func TestNewEntity(t *testing.T) {
	w := New(nil)

	assert.Equal(t, entity.EntityID(1), w.NewEntity())
	assert.Equal(t, entity.EntityID(2), w.NewEntity())
	assert.Equal(t, entity.EntityID(3), w.nextID)
}

func TestAddKeepsCreationOrder(t *testing.T) {
	w := New(nil)

	drawer := w.AddObject(newObject(t, "drawer"))
	alex, err := w.AddPlayer(newPlayer(t, "alex"))
	require.NoError(t, err)
	desk := w.AddObject(newObject(t, "desk"))

	assert.Equal(t, entity.EntityID(1), drawer)
	assert.Equal(t, entity.EntityID(2), alex)
	assert.Equal(t, entity.EntityID(3), desk)
	assert.Equal(t, "drawer", w.Objects[0].Name())
	assert.Equal(t, "desk", w.Objects[1].Name())

	o, ok := w.Object(desk)
	require.True(t, ok)
	assert.Equal(t, "desk", o.Name())

	p, ok := w.Player(alex)
	require.True(t, ok)
	assert.Equal(t, "alex", p.Name())

	_, ok = w.Player(drawer)
	assert.False(t, ok)
}

func TestMaxPlayers(t *testing.T) {
	w := New(nil)
	w.MaxPlayers = 2

	_, err := w.AddPlayer(newPlayer(t, "a"))
	require.NoError(t, err)
	_, err = w.AddPlayer(newPlayer(t, "b"))
	require.NoError(t, err)

	_, err = w.AddPlayer(newPlayer(t, "c"))
	assert.ErrorIs(t, err, ErrTooManyPlayers)
	assert.Len(t, w.Players, 2)
}

func TestRemovePlayer(t *testing.T) {
	w := New(nil)
	a, _ := w.AddPlayer(newPlayer(t, "a"))
	b, _ := w.AddPlayer(newPlayer(t, "b"))
	c, _ := w.AddPlayer(newPlayer(t, "c"))

	assert.True(t, w.RemovePlayer(b))
	assert.False(t, w.RemovePlayer(b))
	assert.False(t, w.Exists(b))
	assert.True(t, w.Exists(a))
	assert.True(t, w.Exists(c))
	assert.Equal(t, "a", w.Players[0].Name())
	assert.Equal(t, "c", w.Players[1].Name())

	last, ok := w.LastPlayer()
	require.True(t, ok)
	assert.Equal(t, c, last.ID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := New(nil)
	a, _ := w.AddPlayer(newPlayer(t, "a"))
	w.RemovePlayer(a)

	b, _ := w.AddPlayer(newPlayer(t, "b"))
	assert.NotEqual(t, a, b, "Entity IDs should never be recycled")
}

func TestLastPlayerEmpty(t *testing.T) {
	_, ok := New(nil).LastPlayer()
	assert.False(t, ok)
}
