package system

import (
	"fmt"
	"unicode/utf8"

	"github.com/younwookim/tilecore/internal/domain/tile"
	"github.com/younwookim/tilecore/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a tile map.
// Each rune is one column. Characters missing from the stage mapping fall
// back to the default mapping; a character in neither is an error.
func LoadStage(cfg *config.StageConfig) (*tile.Map, error) {
	tileWidth := float64(cfg.Size.TileWidth)
	if tileWidth <= 0 {
		tileWidth = tile.DefaultWidth
	}
	tileHeight := float64(cfg.Size.TileHeight)
	if tileHeight <= 0 {
		tileHeight = tile.DefaultHeight
	}

	height := len(cfg.Layers.Collision)
	width := 0
	for _, row := range cfg.Layers.Collision {
		if n := utf8.RuneCountInString(row); n > width {
			width = n
		}
	}

	defaults := config.DefaultTileMapping()
	m := tile.NewMap(width, height, tileWidth, tileHeight)
	for y, row := range cfg.Layers.Collision {
		for x, char := range []rune(row) {
			charStr := string(char)
			mapping, ok := cfg.TileMapping[charStr]
			if !ok {
				mapping, ok = defaults[charStr]
			}
			if !ok {
				return nil, fmt.Errorf("failed to map tile %q at (%d,%d): %w", charStr, x, y, config.ErrUnmappedTile)
			}

			kind, err := tile.ParseCollision(mapping.Collision)
			if err != nil {
				return nil, fmt.Errorf("failed to map tile %q at (%d,%d): %w", charStr, x, y, err)
			}
			m.Set(x, y, kind)
		}
	}

	return m, nil
}
