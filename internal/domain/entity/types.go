package entity

import (
	"errors"
	"math"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// Validation errors returned by constructors and setters
var (
	ErrInvalidSize       = errors.New("size must be positive and finite")
	ErrInvalidStateCount = errors.New("state count must be positive")
	ErrTooManyActions    = errors.New("more actions than supported action keys")
	ErrInvalidAtlas      = errors.New("atlas needs at least one column and one row")
	ErrQuadOutOfRange    = errors.New("quad outside atlas")
	ErrNonFinite         = errors.New("value is not finite")
	ErrInvalidSpeed      = errors.New("speed must be non-negative and finite")
	ErrInvalidHitbox     = errors.New("hitbox scale must be in (0, 1]")
)

// IsometricRatio projects cardinal movement onto the 30° tilted view plane.
var IsometricRatio = math.Cos(math.Pi/4) * math.Cos(math.Pi/6)

// Position is a point on the scene plane
type Position struct {
	X, Y float64
}

// IsFinite reports whether both coordinates are finite
func (p Position) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Add returns p translated by d
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// DistanceTo returns the Euclidean distance between p and o
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Rect is an axis-aligned rectangle with its origin at the top-left
type Rect struct {
	X, Y, Width, Height float64
}

// Overlaps reports whether r and o share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}

// Shrink returns r scaled around its center so that each side keeps the
// given fraction of its length. Scales outside (0, 1] leave r unchanged.
func (r Rect) Shrink(scale float64) Rect {
	if !(scale > 0 && scale <= 1) {
		return r
	}
	mx := (1 - scale) * r.Width / 2
	my := (1 - scale) * r.Height / 2
	return Rect{
		X:      r.X + mx,
		Y:      r.Y + my,
		Width:  r.Width - 2*mx,
		Height: r.Height - 2*my,
	}
}

// BottomCenter returns the anchor point used for depth ordering
func (r Rect) BottomCenter() Position {
	return Position{X: r.X + r.Width/2, Y: r.Y + r.Height}
}

// Direction is one of the four cardinal movement directions
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirUp
	DirLeft
)

// String returns the command identifier of the direction
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Row returns the walk-cycle row of the player atlas bound to d
func (d Direction) Row() int {
	return int(d)
}

// Command is the normalized input for one tick: a movement direction,
// an action key, or none. Any other identifier is carried through and
// ignored by the entities.
type Command string

const (
	CommandNone  Command = ""
	CommandUp    Command = "up"
	CommandDown  Command = "down"
	CommandLeft  Command = "left"
	CommandRight Command = "right"
	CommandE     Command = "e"
	CommandF     Command = "f"
	CommandG     Command = "g"
)

// ActionKeys is the fixed ordered set of action identifiers. An object's
// action i is bound to ActionKeys[i]; index 0 is the primary toggle.
var ActionKeys = [...]Command{CommandE, CommandF, CommandG}

// MaxActions is the number of actions an object may bind
const MaxActions = len(ActionKeys)

// Direction returns the movement direction carried by c, if any
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CommandUp:
		return DirUp, true
	case CommandDown:
		return DirDown, true
	case CommandLeft:
		return DirLeft, true
	case CommandRight:
		return DirRight, true
	}
	return 0, false
}

// ActionIndex returns the position of c in ActionKeys, if it is an action key
func (c Command) ActionIndex() (int, bool) {
	for i, k := range ActionKeys {
		if c == k {
			return i, true
		}
	}
	return -1, false
}

// IsNone reports whether no command is active
func (c Command) IsNone() bool {
	return c == CommandNone
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validSize(size float64) bool {
	return isFinite(size) && size > 0
}
