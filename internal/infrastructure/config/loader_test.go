package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="64" tileheight="48" infinite="0" nextlayerid="3" nextobjectid="4">
 <properties>
  <property name="name" value="Tiled Test"/>
 </properties>
 <tileset firstgid="1" name="collision" tilewidth="64" tileheight="48" tilecount="3" columns="3">
  <tile id="0">
   <properties>
    <property name="collision" value="impassable"/>
   </properties>
  </tile>
  <tile id="1">
   <properties>
    <property name="collision" value="platform"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="collision" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,2,0,3,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="entities">
  <object id="1" name="enemy" x="128" y="48" width="64" height="48">
   <properties>
    <property name="spriteSet" value="MonsterB"/>
   </properties>
  </object>
  <object id="2" name="gem" x="0" y="0" width="64" height="48"/>
  <object id="3" name="player" x="192" y="48" width="64" height="48"/>
 </objectgroup>
</map>
`

func createTestFS() fstest.MapFS {
	return fstest.MapFS{
		"tuning.json": {Data: []byte(`{
			"display": {"screenWidth": 640, "screenHeight": 480, "scale": 1, "framerate": 60},
			"physics": {"gravity": 800, "maxFallSpeed": 600},
			"enemy": {"moveSpeed": 128, "maxWaitTime": 0.5, "boundsWidthRatio": 0.35, "boundsHeightRatio": 0.7},
			"gem": {"radiusRatio": 0.3333, "bounceHeightRatio": 0.18, "bounceRate": 3, "bounceSync": -0.75}
		}`)},
		"sprites.yaml": {Data: []byte(`
gem:
  texture: sprites/gem.png
sets:
  MonsterA:
    clips:
      idle: {strip: sprites/MonsterA/Idle.png, frameTime: 0.15, loop: true}
      run: {strip: sprites/MonsterA/Run.png, frameTime: 0.1, loop: true}
`)},
		"stages/test.json": {Data: []byte(`{
			"id": "test",
			"name": "Test",
			"size": {"tileWidth": 64, "tileHeight": 48},
			"layers": {"collision": ["....", ".-.#", "####"]},
			"tileMapping": {"#": {"collision": "impassable"}},
			"enemies": [{"spriteSet": "MonsterA", "x": 1, "y": 1}],
			"gems": [{"x": 2, "y": 0}]
		}`)},
		"stages/ragged.json":   {Data: []byte(`{"layers": {"collision": ["....", "##"]}}`)},
		"stages/unmapped.json": {Data: []byte(`{"layers": {"collision": ["#?", "##"]}}`)},
		"stages/runes.json": {Data: []byte(`{
			"layers": {"collision": ["é#", "##"]},
			"tileMapping": {"é": {"collision": "passable"}}
		}`)},
		"stages/badkind.json": {Data: []byte(`{
			"layers": {"collision": ["~~"]},
			"tileMapping": {"~": {"collision": "water"}}
		}`)},
		"stages/broken.json": {Data: []byte(`{"layers": `)},
		"stages/tiled.tmx":   {Data: []byte(testTMX)},
	}
}

func TestLoader_LoadTuning(t *testing.T) {
	loader := NewFSLoader(createTestFS(), ".")

	cfg, err := loader.LoadTuning()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Display.ScreenWidth)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 800.0, cfg.Physics.Gravity)
	assert.Equal(t, 128.0, cfg.Enemy.MoveSpeed)
	assert.Equal(t, 0.5, cfg.Enemy.MaxWaitTime)
	assert.Equal(t, -0.75, cfg.Gem.BounceSync)
}

func TestLoader_LoadSprites(t *testing.T) {
	loader := NewFSLoader(createTestFS(), ".")

	cfg, err := loader.LoadSprites()
	require.NoError(t, err)

	assert.Equal(t, "sprites/gem.png", cfg.Gem.Texture)
	set, ok := cfg.Sets["MonsterA"]
	require.True(t, ok)
	assert.Equal(t, ClipConfig{Strip: "sprites/MonsterA/Run.png", FrameTime: 0.1, Loop: true}, set.Clips["run"])
	assert.Equal(t, 0.15, set.Clips["idle"].FrameTime)
}

func TestLoader_LoadSpritesRejectsBadClip(t *testing.T) {
	fsys := fstest.MapFS{
		"sprites.yaml": {Data: []byte("sets:\n  A:\n    clips:\n      idle: {strip: a.png, frameTime: 0}\n")},
	}

	_, err := NewFSLoader(fsys, ".").LoadSprites()
	assert.Error(t, err)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewFSLoader(createTestFS(), ".")

	cfg, err := loader.LoadStage("test")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.ID)
	assert.Equal(t, 64, cfg.Size.TileWidth)
	assert.Equal(t, 48, cfg.Size.TileHeight)
	assert.Len(t, cfg.Layers.Collision, 3)
	assert.Equal(t, []EnemySpawnConfig{{SpriteSet: "MonsterA", X: 1, Y: 1}}, cfg.Enemies)
	assert.Equal(t, []PositionConfig{{X: 2, Y: 0}}, cfg.Gems)

	wall, ok := cfg.TileMapping["#"]
	require.True(t, ok)
	assert.Equal(t, "impassable", wall.Collision)
}

func TestLoader_LoadStageErrors(t *testing.T) {
	loader := NewFSLoader(createTestFS(), ".")

	tests := []struct {
		name  string
		stage string
	}{
		{name: "missing file", stage: "nope"},
		{name: "malformed json", stage: "broken"},
		{name: "ragged rows", stage: "ragged"},
		{name: "unknown collision kind", stage: "badkind"},
		{name: "unmapped character", stage: "unmapped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.LoadStage(tt.stage)
			assert.Error(t, err)
		})
	}

	_, err := loader.LoadStage("badkind")
	assert.ErrorIs(t, err, ErrUnknownCollision)

	_, err = loader.LoadStage("unmapped")
	assert.ErrorIs(t, err, ErrUnmappedTile)
}

func TestLoader_LoadStageCountsRunes(t *testing.T) {
	loader := NewFSLoader(createTestFS(), ".")

	cfg, err := loader.LoadStage("runes")
	require.NoError(t, err)
	assert.Equal(t, []string{"é#", "##"}, cfg.Layers.Collision)
}

func TestLoader_LoadTiledStage(t *testing.T) {
	loader := NewFSLoader(createTestFS(), ".")

	cfg, err := loader.LoadTiledStage("tiled")
	require.NoError(t, err)

	assert.Equal(t, "tiled", cfg.ID)
	assert.Equal(t, "Tiled Test", cfg.Name)
	assert.Equal(t, 64, cfg.Size.TileWidth)
	assert.Equal(t, 48, cfg.Size.TileHeight)
	// gid 3 has no collision property and defaults to impassable
	assert.Equal(t, []string{"....", ".-.#", "####"}, cfg.Layers.Collision)
	assert.Equal(t, []EnemySpawnConfig{{SpriteSet: "MonsterB", X: 2, Y: 1}}, cfg.Enemies)
	assert.Equal(t, []PositionConfig{{X: 0, Y: 0}}, cfg.Gems)
	assert.Equal(t, PositionConfig{X: 3, Y: 1}, cfg.PlayerSpawn)
}

func TestLoader_LoadStageAuto(t *testing.T) {
	loader := NewFSLoader(createTestFS(), ".")

	fromTMX, err := loader.LoadStageAuto("tiled")
	require.NoError(t, err)
	assert.Equal(t, "Tiled Test", fromTMX.Name)

	fromJSON, err := loader.LoadStageAuto("test")
	require.NoError(t, err)
	assert.Equal(t, "Test", fromJSON.Name)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewFSLoader(createTestFS(), ".")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Tuning)
	assert.NotNil(t, cfg.Sprites)
}

func TestLoader_ShippedConfigs(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, 128.0, cfg.Tuning.Enemy.MoveSpeed)
	assert.Contains(t, cfg.Sprites.Sets, "MonsterA")

	stage, err := loader.LoadStage("demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", stage.ID)
	assert.NotEmpty(t, stage.Enemies)
	assert.NotEmpty(t, stage.Gems)

	tmx, err := loader.LoadTiledStage("demo")
	require.NoError(t, err)
	assert.Equal(t, stage.Layers.Collision, tmx.Layers.Collision)
}
