package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/isoroom/internal/application/game"
	"github.com/younwookim/isoroom/internal/application/replay"
	"github.com/younwookim/isoroom/internal/application/scene/room"
	"github.com/younwookim/isoroom/internal/infrastructure/assets"
	"github.com/younwookim/isoroom/internal/infrastructure/audio"
	"github.com/younwookim/isoroom/internal/infrastructure/config"
	"github.com/younwookim/isoroom/internal/infrastructure/logging"
	"github.com/younwookim/isoroom/internal/infrastructure/metrics"
	"github.com/younwookim/isoroom/internal/infrastructure/screen"
)

type flags struct {
	scene       string
	configDir   string
	assetsDir   string
	record      bool
	recordPath  string
	replayPath  string
	verify      bool
	logLevel    string
	metricsAddr string
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.scene, "scene", "office", "Scene to load from configs/scenes")
	flag.StringVar(&f.configDir, "config", "", "Read configs from this directory instead of the embedded ones")
	flag.StringVar(&f.assetsDir, "assets", "assets", "Directory holding images, icons and sounds")
	flag.BoolVar(&f.record, "record", false, "Record input (F5 saves, quitting saves)")
	flag.StringVar(&f.recordPath, "record-file", "", "Recording output file (default: replay_<scene>_<time>.json)")
	flag.StringVar(&f.replayPath, "replay", "", "Play back a recorded session")
	flag.BoolVar(&f.verify, "verify", false, "Run the -replay file headless and print a summary")
	flag.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&f.metricsAddr, "metrics", "", "Serve Prometheus metrics on this address (overrides display.json)")
	flag.Parse()
	return f
}

func main() {
	f := parseFlags()

	logger, err := logging.New(f.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(f, logger); err != nil {
		logger.Fatal("game stopped", zap.Error(err))
	}
}

func configLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func run(f flags, logger *zap.Logger) error {
	loader, err := configLoader(f.configDir)
	if err != nil {
		return err
	}
	assetsFS := os.DirFS(f.assetsDir)

	if f.verify {
		if f.replayPath == "" {
			return errors.New("-verify needs -replay")
		}
		sum, err := verifyReplay(f.replayPath, loader, assetsFS, logger)
		if err != nil {
			return err
		}
		return sum.Print(os.Stdout)
	}

	var replayer *replay.Replayer
	sceneName := f.scene
	if f.replayPath != "" {
		data, err := replay.LoadReplay(f.replayPath)
		if err != nil {
			return err
		}
		replayer = replay.NewReplayer(*data)
		sceneName = data.Scene
		logger.Info("replaying session", zap.String("session", data.Session), zap.Int("frames", len(data.Frames)))
	}

	cfg, err := loader.LoadAll(sceneName)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	collector := metrics.NewCollector()
	addr := cfg.Display.MetricsAddr
	if f.metricsAddr != "" {
		addr = f.metricsAddr
	}
	if addr != "" {
		collector.Serve(ctx, addr, logger)
	}

	lib, err := newSoundLibrary(cfg.Scene, assetsFS, logger)
	if err != nil {
		return err
	}
	lib.OnPlay = collector.ObserveSound
	if err := lib.Initialize(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
	}
	defer lib.Close()

	scr, err := screen.New(cfg.Display.Font.Size)
	if err != nil {
		return err
	}

	rm, err := room.New(room.Options{
		Scene:      cfg.Scene,
		Display:    cfg.Display,
		Assets:     assets.NewLoader(assetsFS, logger),
		Sounds:     lib,
		Logger:     logger,
		Metrics:    collector,
		Screen:     scr,
		Replayer:   replayer,
		Record:     f.record,
		RecordPath: f.recordPath,
	})
	if err != nil {
		return err
	}
	defer rm.Close()

	d := cfg.Display
	g := game.New(rm, d.ScreenWidth, d.ScreenHeight)

	ebiten.SetWindowSize(int(float64(d.ScreenWidth)*d.Scale), int(float64(d.ScreenHeight)*d.Scale))
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.TPS)

	return ebiten.RunGame(g)
}

// newSoundLibrary loads every cue the scene's props reference
func newSoundLibrary(sc *config.SceneConfig, assetsFS fs.FS, logger *zap.Logger) (*audio.Library, error) {
	lib := audio.NewLibrary(audio.Config{
		SampleRate: sc.Audio.SampleRate,
		Volume:     sc.Audio.Volume,
		Muted:      sc.Audio.Muted,
	}, logger)
	if err := lib.Load(assetsFS, cueNames(sc)...); err != nil {
		return nil, err
	}
	return lib, nil
}

func cueNames(sc *config.SceneConfig) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, p := range sc.Props {
		for _, a := range p.Actions {
			if a.Sound == "" {
				continue
			}
			if _, ok := seen[a.Sound]; ok {
				continue
			}
			seen[a.Sound] = struct{}{}
			names = append(names, a.Sound)
		}
	}
	return names
}
