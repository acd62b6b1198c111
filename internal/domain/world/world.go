package world

import (
	"errors"
	"fmt"

	"github.com/younwookim/isoroom/internal/domain/entity"
)

// ErrTooManyPlayers is returned when the player cap is reached
var ErrTooManyPlayers = errors.New("player limit reached")

// World owns every entity of a scene. Players and objects are kept in
// creation order, which is also the depth-sort tie-break order.
type World struct {
	nextID entity.EntityID

	Floor   *entity.Floor
	Players []*entity.Player
	Objects []*entity.InteractiveObject

	// MaxPlayers caps AddPlayer; 0 means unlimited
	MaxPlayers int
}

// New creates an empty world
func New(floor *entity.Floor) *World {
	return &World{
		nextID: 1, // 0 is "nil"
		Floor:  floor,
	}
}

// NewEntity returns a new unique entity ID (never recycled)
func (w *World) NewEntity() entity.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// AddPlayer assigns an ID to p and appends it
func (w *World) AddPlayer(p *entity.Player) (entity.EntityID, error) {
	if w.MaxPlayers > 0 && len(w.Players) >= w.MaxPlayers {
		return 0, fmt.Errorf("add player %q: %w", p.Name(), ErrTooManyPlayers)
	}
	p.ID = w.NewEntity()
	w.Players = append(w.Players, p)
	return p.ID, nil
}

// AddObject assigns an ID to o and appends it
func (w *World) AddObject(o *entity.InteractiveObject) entity.EntityID {
	o.ID = w.NewEntity()
	w.Objects = append(w.Objects, o)
	return o.ID
}

// RemovePlayer drops the player with the given ID, keeping the order of the rest
func (w *World) RemovePlayer(id entity.EntityID) bool {
	for i, p := range w.Players {
		if p.ID == id {
			w.Players = append(w.Players[:i], w.Players[i+1:]...)
			return true
		}
	}
	return false
}

// Player looks up a player by ID
func (w *World) Player(id entity.EntityID) (*entity.Player, bool) {
	for _, p := range w.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Object looks up an interactive object by ID
func (w *World) Object(id entity.EntityID) (*entity.InteractiveObject, bool) {
	for _, o := range w.Objects {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

// Exists reports whether id names a live player or object
func (w *World) Exists(id entity.EntityID) bool {
	if _, ok := w.Player(id); ok {
		return true
	}
	_, ok := w.Object(id)
	return ok
}

// LastPlayer returns the most recently added player
func (w *World) LastPlayer() (*entity.Player, bool) {
	if len(w.Players) == 0 {
		return nil, false
	}
	return w.Players[len(w.Players)-1], true
}
