package entity

// NoSound marks a transition that plays nothing
const NoSound = -1

// Transition is the outcome of one accepted key edge
type Transition struct {
	Next   int // state entered
	Target int // action target after the transition
	Sound  int // index of the action whose sound plays, or NoSound
}

// ToggleMachine is the multi-state toggle of an interactive object.
//
// State 0 is closed. The primary action (index 0) opens to Target or
// closes back to 0. Secondary actions advance Target by one, but only
// from an intermediate state (0 < Current < StateCount-1). Target is
// never rewound, so reopening after a close returns to the furthest
// stage reached.
type ToggleMachine struct {
	StateCount int
	Current    int
	Target     int
}

// NewToggleMachine returns a closed machine whose first opening enters state 1
func NewToggleMachine(stateCount int) ToggleMachine {
	return ToggleMachine{StateCount: stateCount, Target: 1}
}

// Next evaluates the transition table for the given action index.
// ok is false when the edge has no effect.
func (m ToggleMachine) Next(action int) (t Transition, ok bool) {
	switch {
	case action < 0:
		return Transition{}, false

	case action == 0 && m.Current == 0:
		if m.Target >= m.StateCount {
			// single-state props have nothing to open into
			return Transition{}, false
		}
		return Transition{Next: m.Target, Target: m.Target, Sound: 0}, true

	case action == 0:
		return Transition{Next: 0, Target: m.Target, Sound: 0}, true

	case m.Intermediate():
		target := m.Target + 1
		return Transition{Next: target, Target: target, Sound: action}, true
	}
	return Transition{}, false
}

// Apply commits t
func (m *ToggleMachine) Apply(t Transition) {
	m.Current = t.Next
	m.Target = t.Target
}

// Intermediate reports whether the machine sits between closed and the top state
func (m ToggleMachine) Intermediate() bool {
	return m.Current > 0 && m.Current < m.StateCount-1
}
