package system

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/isoroom/internal/domain/entity"
	"github.com/younwookim/isoroom/internal/domain/world"
	"github.com/younwookim/isoroom/internal/infrastructure/config"
)

type fakeAssets struct {
	requested []string
}

func (a *fakeAssets) Image(path string, columns, rows int) image.Image {
	a.requested = append(a.requested, path)
	return image.NewRGBA(image.Rect(0, 0, columns*10, rows*10))
}

func (a *fakeAssets) KeyIcon(cmd entity.Command) image.Image {
	return image.NewRGBA(image.Rect(0, 0, 4, 4))
}

type countingSound struct {
	plays int
}

func (s *countingSound) Play() { s.plays++ }

type fakeSounds map[string]*countingSound

func (f fakeSounds) Sound(name string) entity.Sound {
	s, ok := f[name]
	if !ok {
		s = &countingSound{}
		f[name] = s
	}
	return s
}

func testScene() *config.SceneConfig {
	return &config.SceneConfig{
		Name:       "test",
		Floor:      config.FloorConfig{Image: "floor.png", Pos: config.PointConfig{X: 0, Y: 0}, Width: 1000},
		MaxPlayers: 4,
		Player: config.PlayerConfig{
			Name: "Alex", Image: "player.png", Pos: config.PointConfig{X: 450, Y: 30},
			Speed: 0.4, Size: 100, AnimationPeriod: 100, HitboxScale: 1,
		},
		Spawns: []config.PointConfig{{X: 100, Y: 500}},
		Props: []config.PropConfig{
			{
				Name: "drawer", Image: "drawer.png", Pos: config.PointConfig{X: 80, Y: 150},
				Size: 200, States: 3, HitboxScale: 1,
				Actions: []config.ActionConfig{
					{Sound: "door", Options: []string{"open the cabinet", "close the cabinet"}},
					{Sound: "grab", Options: []string{"take the contents"}},
				},
			},
			{
				Name: "desk", Image: "desk.png", Pos: config.PointConfig{X: 720, Y: 150},
				Size: 220, States: 3, HitboxScale: 1,
				Actions: []config.ActionConfig{
					{Sound: "woosh", Options: []string{"open the notebook", "close the notebook"}},
					{Sound: "paper", Options: []string{"take the paper"}},
				},
			},
		},
	}
}

func buildTestWorld(t *testing.T) (*world.World, *SceneBuilder, fakeSounds) {
	t.Helper()
	sounds := fakeSounds{}
	b := NewSceneBuilder(testScene(), &fakeAssets{}, sounds)
	w, err := b.Build()
	require.NoError(t, err)
	return w, b, sounds
}
