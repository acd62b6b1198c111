// Package room provides the isometric room scene: players walk across
// the floor and toggle the props they stand on.
package room

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/younwookim/isoroom/internal/application/replay"
	"github.com/younwookim/isoroom/internal/application/scene"
	"github.com/younwookim/isoroom/internal/application/state"
	"github.com/younwookim/isoroom/internal/application/system"
	"github.com/younwookim/isoroom/internal/domain/entity"
	"github.com/younwookim/isoroom/internal/domain/world"
	"github.com/younwookim/isoroom/internal/infrastructure/config"
	"github.com/younwookim/isoroom/internal/infrastructure/metrics"
	"github.com/younwookim/isoroom/internal/infrastructure/screen"
)

var colorOverlay = color.RGBA{0, 0, 0, 128}

// Options wires a Room to its collaborators. Metrics, Screen, Replayer
// and RecordPath are optional.
type Options struct {
	Scene   *config.SceneConfig
	Display *config.DisplayConfig
	Assets  system.Assets
	Sounds  system.Sounds
	Logger  *zap.Logger
	Metrics *metrics.Collector
	Screen  *screen.Screen

	// Replayer replaces keyboard input with recorded frames
	Replayer *replay.Replayer
	// Record enables input recording; RecordPath names the output file
	Record     bool
	RecordPath string
}

// Room is the main scene
type Room struct {
	name     string
	world    *world.World
	builder  *system.SceneBuilder
	updater  *system.Updater
	renderer *system.Renderer
	input    *system.InputSystem
	state    state.GameState
	paused   state.GameState // state to resume into
	screenW  int
	screenH  int

	logger  *zap.Logger
	metrics *metrics.Collector
	screen  *screen.Screen

	replayer   *replay.Replayer
	recorder   *replay.Recorder
	recordPath string

	ticks     int
	lastEvent string
}

// New builds the scene's world and wires the systems around it
func New(opts Options) (*Room, error) {
	if opts.Scene == nil || opts.Display == nil {
		return nil, errors.New("room: scene and display config are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	builder := system.NewSceneBuilder(opts.Scene, opts.Assets, opts.Sounds)
	w, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %s: %w", opts.Scene.Name, err)
	}

	r := &Room{
		name:       opts.Scene.Name,
		world:      w,
		builder:    builder,
		updater:    system.NewUpdater(w, opts.Display.MaxDelta),
		renderer:   system.NewRenderer(w),
		input:      system.NewInputSystem(),
		state:      state.StateWaiting,
		screenW:    opts.Display.ScreenWidth,
		screenH:    opts.Display.ScreenHeight,
		logger:     logger.With(zap.String("scene", opts.Scene.Name)),
		metrics:    opts.Metrics,
		screen:     opts.Screen,
		replayer:   opts.Replayer,
		recordPath: opts.RecordPath,
	}
	r.renderer.ShowHitbox = opts.Scene.Debug.ShowHitbox
	r.renderer.ShowDistance = opts.Scene.Debug.ShowDistance

	if opts.Record {
		r.recorder = replay.NewRecorder(r.name)
		r.logger.Info("recording enabled",
			zap.String("session", r.recorder.Session()),
			zap.String("path", r.recordPath))
	}

	r.updater.OnToggle = r.onToggle
	r.updater.OnSanitize = r.onSanitize
	return r, nil
}

func (r *Room) onToggle(obj *entity.InteractiveObject, t entity.Transition) {
	r.lastEvent = fmt.Sprintf("%s -> state %d", obj.Name(), t.Next)
	r.logger.Debug("object toggled",
		zap.String("object", obj.Name()),
		zap.Int("state", t.Next),
		zap.Int("target", t.Target),
		zap.Int("sound", t.Sound))
	if r.metrics != nil {
		r.metrics.ObserveToggle(obj.Name(), t.Next)
	}
}

func (r *Room) onSanitize(reason string, raw float64) {
	r.logger.Debug("tick delta replaced", zap.String("reason", reason), zap.Float64("dt", raw))
	if r.metrics != nil {
		r.metrics.ObserveSanitizedDelta(reason)
	}
}

// Update reads one tick of input, from the replayer when set, and steps the room
func (r *Room) Update(dt float64) (scene.Scene, error) {
	if r.replayer != nil {
		in, rdt, ok := r.replayer.Next()
		if !ok {
			return nil, nil
		}
		r.Step(in, rdt)
		return nil, nil
	}

	st := r.input.GetInput()
	if st.SaveRecording {
		r.saveRecording()
	}
	r.Step(replay.Input{
		Command:        st.Command,
		Spawn:          st.Spawn,
		Despawn:        st.Despawn,
		Pause:          st.Pause,
		ToggleHitbox:   st.ToggleHitbox,
		ToggleDistance: st.ToggleDistance,
	}, dt)
	return nil, nil
}

// Step applies one tick of input. Control flags are handled first; the
// world only advances while the room is not paused.
func (r *Room) Step(in replay.Input, rawDt float64) {
	start := time.Now()
	dt := r.updater.Sanitize(rawDt)

	if r.recorder != nil {
		r.recorder.RecordFrame(dt, in)
	}
	r.ticks++

	if in.ToggleHitbox {
		r.renderer.ShowHitbox = !r.renderer.ShowHitbox
	}
	if in.ToggleDistance {
		r.renderer.ShowDistance = !r.renderer.ShowDistance
	}
	if in.Pause {
		r.togglePause()
	}
	if !r.state.Simulating() {
		return
	}

	if in.Spawn {
		r.spawn()
	}
	if in.Despawn {
		r.despawn()
	}

	r.updater.Update(dt, in.Command)

	if r.metrics != nil {
		r.metrics.ObserveTick(time.Since(start))
	}
}

func (r *Room) togglePause() {
	if r.state == state.StatePaused {
		r.state = r.paused
		return
	}
	r.paused = r.state
	r.state = state.StatePaused
}

func (r *Room) spawn() {
	p, err := r.builder.SpawnPlayer(r.world)
	if err != nil {
		r.logger.Warn("spawn rejected", zap.Error(err))
		return
	}
	r.state = state.StatePlaying
	r.logger.Info("player spawned",
		zap.String("player", p.Name()),
		zap.Uint64("id", uint64(p.ID)),
		zap.Int("players", len(r.world.Players)))
	r.observePlayers()
}

func (r *Room) despawn() {
	p, ok := r.world.LastPlayer()
	if !ok {
		return
	}
	r.world.RemovePlayer(p.ID)
	r.logger.Info("player removed", zap.String("player", p.Name()), zap.Int("players", len(r.world.Players)))
	if len(r.world.Players) == 0 {
		r.state = state.StateWaiting
	}
	r.observePlayers()
}

func (r *Room) observePlayers() {
	if r.metrics != nil {
		r.metrics.SetPlayers(len(r.world.Players))
	}
}

func (r *Room) saveRecording() {
	if r.recorder == nil {
		return
	}

	filename := r.recordPath
	if filename == "" {
		filename = replay.GenerateFilename(r.name)
	}

	if err := r.recorder.Save(filename); err != nil {
		r.logger.Warn("failed to save recording", zap.Error(err))
		return
	}
	r.logger.Info("recording saved", zap.String("path", filename), zap.Int("frames", r.recorder.FrameCount()))
}

// Render clears the viewport and draws the world onto surface
func (r *Room) Render(surface entity.Surface) {
	surface.ClearRect(entity.Rect{Width: float64(r.screenW), Height: float64(r.screenH)})
	r.renderer.Render(surface)
}

// Draw renders the room and its HUD
func (r *Room) Draw(target *ebiten.Image) {
	if r.screen == nil {
		return
	}
	r.screen.SetTarget(target)
	r.Render(r.screen)
	r.drawUI(target)

	if r.state == state.StatePaused {
		r.drawPauseOverlay(target)
	}
}

func (r *Room) drawUI(target *ebiten.Image) {
	ebitenutil.DebugPrintAt(target, r.StatusLine(), 10, r.screenH-35)
	ebitenutil.DebugPrint(target, "WASD/Arrows: Move | E/F/G: Interact | Enter: Join | Backspace: Leave | Tab: Hitbox | `: Distance | ESC: Pause")
}

func (r *Room) drawPauseOverlay(target *ebiten.Image) {
	r.screen.FillRect(entity.Rect{Width: float64(r.screenW), Height: float64(r.screenH)}, colorOverlay)
	ebitenutil.DebugPrintAt(target, "PAUSED\n\nPress ESC to resume", r.screenW/2-50, r.screenH/2-20)
}

// StatusLine summarizes the room for the HUD
func (r *Room) StatusLine() string {
	s := fmt.Sprintf("%s | %s | players %d/%d", r.name, r.state, len(r.world.Players), r.world.MaxPlayers)
	if r.replayer != nil {
		s += fmt.Sprintf(" | replay %d/%d", r.replayer.CurrentFrame(), r.replayer.TotalFrames())
	}
	if r.lastEvent != "" {
		s += " | " + r.lastEvent
	}
	return s
}

// OnEnter is called when entering this scene
func (r *Room) OnEnter() {
	r.logger.Info("scene entered", zap.Int("objects", len(r.world.Objects)))
}

// OnExit saves any pending recording
func (r *Room) OnExit() {
	r.saveRecording()
}

// Close stops recording and saves what was captured
func (r *Room) Close() {
	if r.recorder == nil || !r.recorder.IsRecording() {
		return
	}
	r.saveRecording()
	r.recorder.Stop()
}

// World returns the scene's world
func (r *Room) World() *world.World { return r.world }

// State returns the current game state
func (r *Room) State() state.GameState { return r.state }

// Renderer returns the depth-sorting renderer
func (r *Room) Renderer() *system.Renderer { return r.renderer }

// Ticks returns the number of steps taken
func (r *Room) Ticks() int { return r.ticks }

// Recorder returns the active recorder, or nil
func (r *Room) Recorder() *replay.Recorder { return r.recorder }
