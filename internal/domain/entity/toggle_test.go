package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleMachine_Next(t *testing.T) {
	tests := []struct {
		name    string
		machine ToggleMachine
		action  int
		want    Transition
		ok      bool
	}{
		{"primary opens", ToggleMachine{3, 0, 1}, 0, Transition{Next: 1, Target: 1, Sound: 0}, true},
		{"primary reopens to target", ToggleMachine{3, 0, 2}, 0, Transition{Next: 2, Target: 2, Sound: 0}, true},
		{"primary closes intermediate", ToggleMachine{3, 1, 1}, 0, Transition{Next: 0, Target: 1, Sound: 0}, true},
		{"primary closes top", ToggleMachine{3, 2, 2}, 0, Transition{Next: 0, Target: 2, Sound: 0}, true},
		{"secondary advances", ToggleMachine{3, 1, 1}, 1, Transition{Next: 2, Target: 2, Sound: 1}, true},
		{"third action advances", ToggleMachine{3, 1, 1}, 2, Transition{Next: 2, Target: 2, Sound: 2}, true},
		{"secondary while closed", ToggleMachine{3, 0, 1}, 1, Transition{}, false},
		{"secondary at top", ToggleMachine{3, 2, 2}, 1, Transition{}, false},
		{"negative action", ToggleMachine{3, 1, 1}, -1, Transition{}, false},
		{"single state", NewToggleMachine(1), 0, Transition{}, false},
		{"two states never intermediate", ToggleMachine{2, 1, 1}, 1, Transition{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.machine.Next(tt.action)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToggleMachine_StaysInRange(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		m := NewToggleMachine(n)
		// exhaustive walk over a fixed action sequence
		for _, a := range []int{0, 1, 2, 0, 0, 1, 1, 2, 0, 2, 0, 1, 0, 0} {
			if tr, ok := m.Next(a); ok {
				m.Apply(tr)
			}
			assert.GreaterOrEqual(t, m.Current, 0)
			assert.Less(t, m.Current, n)
			assert.GreaterOrEqual(t, m.Target, 1)
		}
	}
}

func TestToggleMachine_TargetSurvivesClose(t *testing.T) {
	m := NewToggleMachine(3)
	for _, a := range []int{0, 1, 0} {
		tr, ok := m.Next(a)
		assert.True(t, ok)
		m.Apply(tr)
	}
	assert.Equal(t, 0, m.Current)
	assert.Equal(t, 2, m.Target)

	tr, ok := m.Next(0)
	assert.True(t, ok)
	assert.Equal(t, 2, tr.Next, "reopens at the furthest stage")
}

func TestToggleMachine_Intermediate(t *testing.T) {
	assert.False(t, ToggleMachine{StateCount: 3, Current: 0}.Intermediate())
	assert.True(t, ToggleMachine{StateCount: 3, Current: 1}.Intermediate())
	assert.False(t, ToggleMachine{StateCount: 3, Current: 2}.Intermediate())
}
