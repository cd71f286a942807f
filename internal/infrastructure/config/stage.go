package config

// StageConfig is the root config for stage files
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        StageSizeConfig              `json:"size"`
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	Exit        PositionConfig               `json:"exit"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
	Enemies     []EnemySpawnConfig           `json:"enemies"`
	Gems        []PositionConfig             `json:"gems"`
}

// StageSizeConfig holds the size of a single tile in world units
type StageSizeConfig struct {
	TileWidth  int `json:"tileWidth"`
	TileHeight int `json:"tileHeight"`
}

// PositionConfig is a tile coordinate
type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type LayersConfig struct {
	Collision []string `json:"collision"`
}

type TileMappingConfig struct {
	Collision string `json:"collision"`
}

type EnemySpawnConfig struct {
	SpriteSet string `json:"spriteSet"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

// DefaultTileMapping is used for characters a stage does not map itself
func DefaultTileMapping() map[string]TileMappingConfig {
	return map[string]TileMappingConfig{
		".": {Collision: "passable"},
		"#": {Collision: "impassable"},
		"-": {Collision: "platform"},
	}
}
