package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display *DisplayConfig
	Scene   *SceneConfig
}

// Loader loads game configuration from JSON or YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	data, err := fs.ReadFile(l.fsys, "display.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read display.json: %w", err)
	}

	cfg := DefaultDisplay()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse display.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid display.json: %w", err)
	}

	return cfg, nil
}

// sceneExtensions lists the scene file formats in lookup order
var sceneExtensions = []string{".json", ".yaml", ".yml"}

// LoadScene loads scenes/<name>.json, falling back to .yaml and .yml
func (l *Loader) LoadScene(name string) (*SceneConfig, error) {
	for _, ext := range sceneExtensions {
		p := path.Join("scenes", name+ext)
		data, err := fs.ReadFile(l.fsys, p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read scene %s: %w", name, err)
		}

		cfg, err := ParseScene(data, ext)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scene %s: %w", name, err)
		}
		if cfg.Name == "" {
			cfg.Name = name
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid scene %s: %w", name, err)
		}
		return cfg, nil
	}
	return nil, fmt.Errorf("failed to read scene %s: %w", name, fs.ErrNotExist)
}

// ParseScene decodes a scene document; ext selects the format
func ParseScene(data []byte, ext string) (*SceneConfig, error) {
	var cfg SceneConfig
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadAll loads display.json and the named scene
func (l *Loader) LoadAll(scene string) (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	sceneCfg, err := l.LoadScene(scene)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Display: display,
		Scene:   sceneCfg,
	}, nil
}
