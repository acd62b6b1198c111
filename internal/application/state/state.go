package state

// GameState represents the current state of a room
type GameState int

const (
	StateWaiting GameState = iota // no player spawned yet
	StatePlaying
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateWaiting:
		return "Waiting"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Simulating reports whether ticks advance the world in this state
func (s GameState) Simulating() bool {
	return s == StateWaiting || s == StatePlaying
}
