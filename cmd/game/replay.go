package main

import (
	"fmt"
	"io"
	"io/fs"
	"sort"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/younwookim/isoroom/internal/application/replay"
	"github.com/younwookim/isoroom/internal/application/scene/room"
	"github.com/younwookim/isoroom/internal/domain/entity"
	"github.com/younwookim/isoroom/internal/infrastructure/assets"
	"github.com/younwookim/isoroom/internal/infrastructure/config"
	"github.com/younwookim/isoroom/internal/infrastructure/metrics"
)

// Summary is the outcome of a headless replay
type Summary struct {
	Session string
	Scene   string
	Frames  int
	Draws   int // surface calls made by the last rendered frame
	Players []string
	States  map[string]int
	Sounds  map[string]int
}

// verifyReplay runs a recording through the room without a window,
// rendering every tick onto a recording surface.
func verifyReplay(path string, loader *config.Loader, assetsFS fs.FS, logger *zap.Logger) (*Summary, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return nil, err
	}
	cfg, err := loader.LoadAll(data.Scene)
	if err != nil {
		return nil, fmt.Errorf("failed to load replay scene: %w", err)
	}

	lib, err := newSoundLibrary(cfg.Scene, assetsFS, logger)
	if err != nil {
		return nil, err
	}
	replayer := replay.NewReplayer(*data)
	rm, err := room.New(room.Options{
		Scene:    cfg.Scene,
		Display:  cfg.Display,
		Assets:   assets.NewLoader(assetsFS, logger),
		Sounds:   lib,
		Logger:   logger,
		Metrics:  metrics.NewCollector(),
		Replayer: replayer,
	})
	if err != nil {
		return nil, err
	}

	surface := entity.NewRecordingSurface()
	for !replayer.Done() {
		if _, err := rm.Update(0); err != nil {
			return nil, err
		}
		surface.Reset()
		rm.Render(surface)
	}

	sum := &Summary{
		Session: data.Session,
		Scene:   data.Scene,
		Frames:  rm.Ticks(),
		Draws:   len(surface.Calls),
		States:  make(map[string]int),
		Sounds:  make(map[string]int),
	}
	for _, p := range rm.World().Players {
		sum.Players = append(sum.Players, p.Name())
	}
	for _, o := range rm.World().Objects {
		sum.States[o.Name()] = o.State()
	}
	for _, cue := range cueNames(cfg.Scene) {
		sum.Sounds[cue] = lib.Plays(cue)
	}
	return sum, nil
}

// Print writes the summary as an aligned table
func (s *Summary) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "session\t%s\n", s.Session)
	fmt.Fprintf(tw, "scene\t%s\n", s.Scene)
	fmt.Fprintf(tw, "frames\t%d\n", s.Frames)
	fmt.Fprintf(tw, "players\t%d\n", len(s.Players))
	for _, name := range sortedKeys(s.States) {
		fmt.Fprintf(tw, "object %s\tstate %d\n", name, s.States[name])
	}
	for _, cue := range sortedKeys(s.Sounds) {
		fmt.Fprintf(tw, "sound %s\t%d plays\n", cue, s.Sounds[cue])
	}
	return tw.Flush()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
