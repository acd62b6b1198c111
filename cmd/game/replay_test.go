package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/younwookim/isoroom/internal/application/replay"
	"github.com/younwookim/isoroom/internal/application/scene/room"
	"github.com/younwookim/isoroom/internal/domain/entity"
	"github.com/younwookim/isoroom/internal/infrastructure/assets"
	"github.com/younwookim/isoroom/internal/infrastructure/config"
)

// recordOfficeSession walks the first player onto the drawer and opens
// it twice, saving the recording to a temp file.
func recordOfficeSession(t *testing.T, loader *config.Loader) string {
	t.Helper()
	cfg, err := loader.LoadAll("office")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "office.json")
	logger := zap.NewNop()
	lib, err := newSoundLibrary(cfg.Scene, fstest.MapFS{}, logger)
	require.NoError(t, err)

	rm, err := room.New(room.Options{
		Scene:      cfg.Scene,
		Display:    cfg.Display,
		Assets:     assets.NewLoader(fstest.MapFS{}, logger),
		Sounds:     lib,
		Logger:     logger,
		Record:     true,
		RecordPath: path,
	})
	require.NoError(t, err)

	rm.Step(replay.Input{Spawn: true}, 0)
	for i := 0; i < 6; i++ {
		rm.Step(replay.Input{Command: entity.CommandDown}, 100)
	}
	rm.Step(replay.Input{}, 16)
	rm.Step(replay.Input{Command: entity.CommandE}, 16)
	rm.Step(replay.Input{}, 16)
	rm.Step(replay.Input{Command: entity.CommandF}, 16)
	rm.Step(replay.Input{}, 16)

	require.Equal(t, 2, rm.World().Objects[0].State(), "recording run opens the drawer")
	rm.Close()
	return path
}

func TestVerifyReplay(t *testing.T) {
	loader, err := configLoader("")
	require.NoError(t, err)
	path := recordOfficeSession(t, loader)

	sum, err := verifyReplay(path, loader, fstest.MapFS{}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "office", sum.Scene)
	assert.Equal(t, 12, sum.Frames)
	assert.Equal(t, []string{"Alex Topiroze"}, sum.Players)
	assert.Equal(t, map[string]int{"drawer": 2, "desk": 0}, sum.States)
	assert.Equal(t, 1, sum.Sounds["door"])
	assert.Equal(t, 1, sum.Sounds["grab"])
	assert.Equal(t, 0, sum.Sounds["woosh"])
	assert.Positive(t, sum.Draws)

	var out bytes.Buffer
	require.NoError(t, sum.Print(&out))
	assert.Contains(t, out.String(), "object drawer  state 2")
	assert.Contains(t, out.String(), "sound door     1 plays")
}

func TestVerifyReplay_Deterministic(t *testing.T) {
	loader, err := configLoader("")
	require.NoError(t, err)
	path := recordOfficeSession(t, loader)

	first, err := verifyReplay(path, loader, fstest.MapFS{}, zap.NewNop())
	require.NoError(t, err)
	second, err := verifyReplay(path, loader, fstest.MapFS{}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestVerifyReplay_MissingFile(t *testing.T) {
	loader, err := configLoader("")
	require.NoError(t, err)

	_, err = verifyReplay(filepath.Join(t.TempDir(), "nope.json"), loader, fstest.MapFS{}, zap.NewNop())
	assert.Error(t, err)
}

func TestCueNames(t *testing.T) {
	loader, err := configLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadScene("office")
	require.NoError(t, err)

	assert.Equal(t, []string{"door", "grab", "woosh", "paper"}, cueNames(cfg))
}

func TestConfigLoader_Directory(t *testing.T) {
	loader, err := configLoader("configs")
	require.NoError(t, err)

	cfg, err := loader.LoadAll("studio")
	require.NoError(t, err)
	assert.Equal(t, "studio", cfg.Scene.Name)
}
