package system

import (
	"fmt"
	"image"

	"github.com/younwookim/isoroom/internal/domain/entity"
	"github.com/younwookim/isoroom/internal/domain/world"
	"github.com/younwookim/isoroom/internal/infrastructure/config"
)

// Assets supplies image handles. A nil image is drawn as nothing.
type Assets interface {
	Image(path string, columns, rows int) image.Image
	KeyIcon(cmd entity.Command) image.Image
}

// Sounds supplies sound handles by cue name; nil plays nothing
type Sounds interface {
	Sound(name string) entity.Sound
}

// SceneBuilder turns a SceneConfig into a World and spawns players into it
type SceneBuilder struct {
	cfg     *config.SceneConfig
	assets  Assets
	sounds  Sounds
	spawned int
}

// NewSceneBuilder creates a builder for cfg
func NewSceneBuilder(cfg *config.SceneConfig, assets Assets, sounds Sounds) *SceneBuilder {
	return &SceneBuilder{cfg: cfg, assets: assets, sounds: sounds}
}

// Build creates the floor and every prop. Players are added by SpawnPlayer.
func (b *SceneBuilder) Build() (*world.World, error) {
	fc := b.cfg.Floor
	floor, err := entity.NewFloor(entity.FloorConfig{
		Image:    b.assets.Image(fc.Image, 1, 1),
		Position: point(fc.Pos),
		Width:    fc.Width,
		FadeIn:   fc.FadeIn,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build floor: %w", err)
	}

	w := world.New(floor)
	w.MaxPlayers = b.cfg.MaxPlayers

	for _, pc := range b.cfg.Props {
		obj, err := b.buildProp(pc)
		if err != nil {
			return nil, fmt.Errorf("failed to build prop %s: %w", pc.Name, err)
		}
		w.AddObject(obj)
	}
	return w, nil
}

func (b *SceneBuilder) buildProp(pc config.PropConfig) (*entity.InteractiveObject, error) {
	actions := make([]entity.ActionConfig, len(pc.Actions))
	for i, ac := range pc.Actions {
		var icon image.Image
		if ac.Icon != "" {
			icon = b.assets.Image(ac.Icon, 1, 1)
		} else if i < len(entity.ActionKeys) {
			icon = b.assets.KeyIcon(entity.ActionKeys[i])
		}
		actions[i] = entity.ActionConfig{
			Sound:   b.sound(ac.Sound),
			Icon:    icon,
			Options: ac.Options,
		}
	}

	return entity.NewInteractiveObject(entity.ObjectConfig{
		Name:            pc.Name,
		Image:           b.assets.Image(pc.Image, pc.States, 2),
		Position:        point(pc.Pos),
		Size:            pc.Size,
		AnimationPeriod: pc.AnimationPeriod,
		StateCount:      pc.States,
		HitboxScale:     pc.HitboxScale,
		Actions:         actions,
	})
}

// sound avoids storing a typed nil in the entity.Sound interface
func (b *SceneBuilder) sound(name string) entity.Sound {
	if name == "" || b.sounds == nil {
		return nil
	}
	return b.sounds.Sound(name)
}

// SpawnPlayer adds the next player from the template. The first player
// uses the template name and position; later ones are numbered and
// cycle through the extra spawn points.
func (b *SceneBuilder) SpawnPlayer(w *world.World) (*entity.Player, error) {
	pc := b.cfg.Player
	name := pc.Name
	if b.spawned > 0 {
		name = fmt.Sprintf("%s %d", pc.Name, b.spawned+1)
	}

	p, err := entity.NewPlayer(entity.PlayerConfig{
		Name:            name,
		Image:           b.assets.Image(pc.Image, entity.PlayerAtlasColumns, entity.PlayerAtlasRows),
		Position:        point(b.cfg.SpawnPoint(b.spawned)),
		Speed:           pc.Speed,
		Size:            pc.Size,
		AnimationPeriod: pc.AnimationPeriod,
		HitboxScale:     pc.HitboxScale,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build player: %w", err)
	}
	if _, err := w.AddPlayer(p); err != nil {
		return nil, err
	}
	b.spawned++
	return p, nil
}

func point(p config.PointConfig) entity.Position {
	return entity.Position{X: p.X, Y: p.Y}
}
