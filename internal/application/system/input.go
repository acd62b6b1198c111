package system

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/isoroom/internal/domain/entity"
)

// InputSystem turns keyboard events into one Command per tick.
// The latest key-down wins; any key-up clears the command.
type InputSystem struct {
	current  entity.Command
	pressed  []ebiten.Key
	released []ebiten.Key
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the input of one tick
type InputState struct {
	Command        entity.Command
	Spawn          bool
	Despawn        bool
	Pause          bool
	ToggleHitbox   bool
	ToggleDistance bool
	SaveRecording  bool
}

// Control keys never become commands
var controlKeys = map[ebiten.Key]struct{}{
	ebiten.KeyEnter:     {},
	ebiten.KeyBackspace: {},
	ebiten.KeyEscape:    {},
	ebiten.KeyTab:       {},
	ebiten.KeyBackquote: {},
	ebiten.KeyF5:        {},
}

var keyCommands = map[ebiten.Key]entity.Command{
	ebiten.KeyW:          entity.CommandUp,
	ebiten.KeyArrowUp:    entity.CommandUp,
	ebiten.KeyS:          entity.CommandDown,
	ebiten.KeyArrowDown:  entity.CommandDown,
	ebiten.KeyA:          entity.CommandLeft,
	ebiten.KeyArrowLeft:  entity.CommandLeft,
	ebiten.KeyD:          entity.CommandRight,
	ebiten.KeyArrowRight: entity.CommandRight,
	ebiten.KeyE:          entity.CommandE,
	ebiten.KeyF:          entity.CommandF,
	ebiten.KeyG:          entity.CommandG,
}

// CommandForKey maps a key to its command. Unbound keys map to their
// lowercase name, which every consumer ignores.
func CommandForKey(k ebiten.Key) entity.Command {
	if cmd, ok := keyCommands[k]; ok {
		return cmd
	}
	return entity.Command(strings.ToLower(k.String()))
}

// GetInput reads this tick's keyboard events
func (s *InputSystem) GetInput() InputState {
	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	s.released = inpututil.AppendJustReleasedKeys(s.released[:0])

	return InputState{
		Command:        s.Apply(s.pressed, s.released),
		Spawn:          inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Despawn:        inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
		Pause:          inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ToggleHitbox:   inpututil.IsKeyJustPressed(ebiten.KeyTab),
		ToggleDistance: inpututil.IsKeyJustPressed(ebiten.KeyBackquote),
		SaveRecording:  inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}
}

// Apply folds key edges into the current command and returns it.
// Presses are applied before releases, so a key tapped within a
// single tick leaves no command behind.
func (s *InputSystem) Apply(pressed, released []ebiten.Key) entity.Command {
	for _, k := range pressed {
		if _, ctl := controlKeys[k]; ctl {
			continue
		}
		s.current = CommandForKey(k)
	}
	for _, k := range released {
		if _, ctl := controlKeys[k]; ctl {
			continue
		}
		s.current = entity.CommandNone
	}
	return s.current
}

// Current returns the command held since the last Apply
func (s *InputSystem) Current() entity.Command {
	return s.current
}

// Reset drops the held command
func (s *InputSystem) Reset() {
	s.current = entity.CommandNone
}
