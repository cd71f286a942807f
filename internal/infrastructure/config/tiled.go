package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	tiledCollisionLayer = "collision"
	tiledEntityGroup    = "entities"
)

var collisionChars = map[string]byte{
	"passable":   '.',
	"impassable": '#',
	"platform":   '-',
}

// LoadTiledStage loads stages/<name>.tmx and converts it to a StageConfig.
// Non-empty cells of the "collision" layer take their kind from the tile's
// "collision" property and default to impassable. Objects of the "entities"
// group are placed in the cell under their center.
func (l *Loader) LoadTiledStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".tmx"
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	cfg := &StageConfig{
		ID:   name,
		Name: levelMap.Properties.GetString("name"),
		Size: StageSizeConfig{
			TileWidth:  levelMap.TileWidth,
			TileHeight: levelMap.TileHeight,
		},
		TileMapping: DefaultTileMapping(),
	}
	if cfg.Name == "" {
		cfg.Name = name
	}

	rows, err := collisionRows(levelMap)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}
	cfg.Layers.Collision = rows

	tw := float64(levelMap.TileWidth)
	th := float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != tiledEntityGroup {
			continue
		}
		for _, o := range og.Objects {
			pos := PositionConfig{
				X: int(math.Floor((o.X + o.Width/2) / tw)),
				Y: int(math.Floor((o.Y + o.Height/2) / th)),
			}
			switch strings.ToLower(o.Name) {
			case "enemy":
				cfg.Enemies = append(cfg.Enemies, EnemySpawnConfig{
					SpriteSet: o.Properties.GetString("spriteSet"),
					X:         pos.X,
					Y:         pos.Y,
				})
			case "gem":
				cfg.Gems = append(cfg.Gems, pos)
			case "player":
				cfg.PlayerSpawn = pos
			case "exit":
				cfg.Exit = pos
			}
		}
	}

	return cfg, nil
}

func collisionRows(levelMap *tiled.Map) ([]string, error) {
	rows := make([]string, levelMap.Height)
	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == tiledCollisionLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("missing %q layer", tiledCollisionLayer)
	}

	for y := 0; y < levelMap.Height; y++ {
		var row strings.Builder
		for x := 0; x < levelMap.Width; x++ {
			t := layer.Tiles[y*levelMap.Width+x]
			if t.IsNil() {
				row.WriteByte('.')
				continue
			}

			kind := "impassable"
			if tilesetTile, err := t.Tileset.GetTilesetTile(t.ID); err == nil {
				if v := tilesetTile.Properties.GetString("collision"); v != "" {
					kind = v
				}
			}
			ch, ok := collisionChars[kind]
			if !ok {
				return nil, fmt.Errorf("tile (%d,%d): %w: %s", x, y, ErrUnknownCollision, kind)
			}
			row.WriteByte(ch)
		}
		rows[y] = row.String()
	}
	return rows, nil
}
