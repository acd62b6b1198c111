package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/isoroom/internal/domain/entity"
)

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want entity.Command
	}{
		{ebiten.KeyW, entity.CommandUp},
		{ebiten.KeyArrowUp, entity.CommandUp},
		{ebiten.KeyS, entity.CommandDown},
		{ebiten.KeyArrowDown, entity.CommandDown},
		{ebiten.KeyA, entity.CommandLeft},
		{ebiten.KeyArrowLeft, entity.CommandLeft},
		{ebiten.KeyD, entity.CommandRight},
		{ebiten.KeyArrowRight, entity.CommandRight},
		{ebiten.KeyE, entity.CommandE},
		{ebiten.KeyF, entity.CommandF},
		{ebiten.KeyG, entity.CommandG},
		{ebiten.KeyQ, entity.Command("q")},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, CommandForKey(tt.key))
		})
	}
}

func TestInputSystem_Apply(t *testing.T) {
	type step struct {
		pressed  []ebiten.Key
		released []ebiten.Key
		want     entity.Command
	}
	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "held key stays",
			steps: []step{
				{pressed: []ebiten.Key{ebiten.KeyD}, want: entity.CommandRight},
				{want: entity.CommandRight},
				{released: []ebiten.Key{ebiten.KeyD}, want: entity.CommandNone},
			},
		},
		{
			name: "latest key down wins",
			steps: []step{
				{pressed: []ebiten.Key{ebiten.KeyW}, want: entity.CommandUp},
				{pressed: []ebiten.Key{ebiten.KeyE}, want: entity.CommandE},
			},
		},
		{
			name: "any key up clears",
			steps: []step{
				{pressed: []ebiten.Key{ebiten.KeyW}, want: entity.CommandUp},
				{pressed: []ebiten.Key{ebiten.KeyA}, want: entity.CommandLeft},
				{released: []ebiten.Key{ebiten.KeyW}, want: entity.CommandNone},
			},
		},
		{
			name: "tap within one tick",
			steps: []step{
				{pressed: []ebiten.Key{ebiten.KeyE}, released: []ebiten.Key{ebiten.KeyE}, want: entity.CommandNone},
			},
		},
		{
			name: "control keys ignored",
			steps: []step{
				{pressed: []ebiten.Key{ebiten.KeyD}, want: entity.CommandRight},
				{pressed: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyTab}, want: entity.CommandRight},
				{released: []ebiten.Key{ebiten.KeyEnter}, want: entity.CommandRight},
			},
		},
		{
			name: "unbound key occupies the command",
			steps: []step{
				{pressed: []ebiten.Key{ebiten.KeyQ}, want: entity.Command("q")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewInputSystem()
			for i, st := range tt.steps {
				assert.Equal(t, st.want, s.Apply(st.pressed, st.released), "step %d", i)
				assert.Equal(t, st.want, s.Current())
			}
		})
	}
}

func TestInputSystem_Reset(t *testing.T) {
	s := NewInputSystem()
	s.Apply([]ebiten.Key{ebiten.KeyS}, nil)
	s.Reset()
	assert.True(t, s.Current().IsNone())
}
