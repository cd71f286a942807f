package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/tilecore/internal/domain/tile"
)

// ErrUnknownCollision is returned for a collision name no tile kind matches
var ErrUnknownCollision = tile.ErrUnknownCollision

// ErrUnmappedTile is returned for a collision layer character that neither
// the stage mapping nor the default mapping covers
var ErrUnmappedTile = errors.New("unmapped tile character")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Tuning  *TuningConfig
	Sprites *SpritesConfig
}

// Loader loads game configuration from files using fs.FS interface
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

// FS returns the filesystem configs are read from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadTuning loads tuning.json
func (l *Loader) LoadTuning() (*TuningConfig, error) {
	data, err := fs.ReadFile(l.fsys, "tuning.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning.json: %w", err)
	}

	var cfg TuningConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning.json: %w", err)
	}

	return &cfg, nil
}

// LoadSprites loads sprites.yaml
func (l *Loader) LoadSprites() (*SpritesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "sprites.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read sprites.yaml: %w", err)
	}

	var cfg SpritesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sprites.yaml: %w", err)
	}

	for name, set := range cfg.Sets {
		for clip, c := range set.Clips {
			if c.Strip == "" {
				return nil, fmt.Errorf("sprite set %s clip %s: missing strip", name, clip)
			}
			if c.FrameTime <= 0 {
				return nil, fmt.Errorf("sprite set %s clip %s: frameTime must be positive", name, clip)
			}
		}
	}

	return &cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadStageAuto loads stages/<name>.tmx when present and falls back to
// stages/<name>.json
func (l *Loader) LoadStageAuto(name string) (*StageConfig, error) {
	if _, err := fs.Stat(l.fsys, "stages/"+name+".tmx"); err == nil {
		return l.LoadTiledStage(name)
	}
	return l.LoadStage(name)
}

// LoadAll loads all base configurations (tuning, sprites)
func (l *Loader) LoadAll() (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	sprites, err := l.LoadSprites()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Tuning:  tuning,
		Sprites: sprites,
	}, nil
}

func (c *StageConfig) validate() error {
	for ch, m := range c.TileMapping {
		if utf8.RuneCountInString(ch) != 1 {
			return fmt.Errorf("tile mapping key %q must be a single character", ch)
		}
		switch m.Collision {
		case "", "passable", "impassable", "platform":
		default:
			return fmt.Errorf("tile mapping %q: %w: %s", ch, ErrUnknownCollision, m.Collision)
		}
	}

	defaults := DefaultTileMapping()
	width := -1
	for y, row := range c.Layers.Collision {
		columns := []rune(row)
		if width >= 0 && len(columns) != width {
			return fmt.Errorf("collision row %d has %d columns, want %d", y, len(columns), width)
		}
		width = len(columns)
		for x, r := range columns {
			ch := string(r)
			if _, ok := c.TileMapping[ch]; ok {
				continue
			}
			if _, ok := defaults[ch]; !ok {
				return fmt.Errorf("tile %q at (%d,%d): %w", ch, x, y, ErrUnmappedTile)
			}
		}
	}
	return nil
}
