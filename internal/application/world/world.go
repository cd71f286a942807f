// Package world owns the actors of a loaded stage and steps them one tick
// at a time: behavior for every actor, then collision, then animation.
package world

import (
	"fmt"

	"github.com/younwookim/tilecore/internal/application/state"
	"github.com/younwookim/tilecore/internal/application/system"
	"github.com/younwookim/tilecore/internal/domain/animation"
	"github.com/younwookim/tilecore/internal/domain/entity"
	"github.com/younwookim/tilecore/internal/domain/geometry"
	"github.com/younwookim/tilecore/internal/domain/tile"
	"github.com/younwookim/tilecore/internal/infrastructure/config"
)

// SpriteLibrary resolves the clips and textures actors are built from
type SpriteLibrary interface {
	EnemySprites(spriteSet string) (entity.EnemySprites, error)
	GemTexture() (animation.Strip, error)
}

// World holds the tile grid and every live actor of a stage
type World struct {
	stage   *config.StageConfig
	grid    *tile.Map
	physics *system.PhysicsSystem

	enemies    []*entity.Enemy
	gems       []*entity.Gem
	gemTexture animation.Strip
	intents    []geometry.Vector

	state        state.GameState
	collector    geometry.Rect
	hasCollector bool
	collected    int
	ticks        int
}

// New builds a world from a stage. Enemies stand on the bottom-center of
// their spawn cell, gems float at the center of theirs.
func New(tuning *config.TuningConfig, stage *config.StageConfig, sprites SpriteLibrary) (*World, error) {
	grid, err := system.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	w := &World{
		stage:   stage,
		grid:    grid,
		physics: system.NewPhysicsSystem(tuning.Physics, grid),
		state:   state.StatePlaying,
	}

	enemyTuning := entity.EnemyTuning{
		MoveSpeed:         tuning.Enemy.MoveSpeed,
		MaxWaitTime:       tuning.Enemy.MaxWaitTime,
		BoundsWidthRatio:  tuning.Enemy.BoundsWidthRatio,
		BoundsHeightRatio: tuning.Enemy.BoundsHeightRatio,
	}
	var id entity.EntityID
	for _, spawn := range stage.Enemies {
		clips, err := sprites.EnemySprites(spawn.SpriteSet)
		if err != nil {
			return nil, fmt.Errorf("failed to load sprites for enemy at (%d,%d): %w", spawn.X, spawn.Y, err)
		}
		id++
		position := tile.Bounds(grid, spawn.X, spawn.Y).BottomCenter()
		enemy, err := entity.NewEnemy(id, position, spawn.SpriteSet, clips, enemyTuning)
		if err != nil {
			return nil, fmt.Errorf("failed to create enemy %s: %w", spawn.SpriteSet, err)
		}
		w.enemies = append(w.enemies, enemy)
	}

	if len(stage.Gems) > 0 {
		w.gemTexture, err = sprites.GemTexture()
		if err != nil {
			return nil, fmt.Errorf("failed to load gem texture: %w", err)
		}
	}
	tileW, tileH := grid.TileSize()
	textureHeight := tileH
	if w.gemTexture != nil {
		textureHeight = float64(w.gemTexture.Bounds().Dy())
	}
	gemTuning := entity.GemTuning{
		Radius:       tileW * tuning.Gem.RadiusRatio,
		BounceHeight: textureHeight * tuning.Gem.BounceHeightRatio,
		BounceRate:   tuning.Gem.BounceRate,
		BounceSync:   tuning.Gem.BounceSync,
	}
	for _, spawn := range stage.Gems {
		id++
		position := tile.Bounds(grid, spawn.X, spawn.Y).Center()
		w.gems = append(w.gems, entity.NewGem(id, position, gemTuning))
	}

	w.intents = make([]geometry.Vector, len(w.enemies))
	return w, nil
}

// Update advances the world by dt seconds and returns the gems collected
// this tick. Paused worlds do not tick.
func (w *World) Update(dt float64) ([]*entity.Gem, error) {
	if !w.state.Ticking() {
		return nil, nil
	}

	for i, e := range w.enemies {
		w.intents[i] = e.Think(dt, w.grid)
	}
	for i, e := range w.enemies {
		w.physics.MoveEnemy(e, w.intents[i], dt)
	}

	for _, g := range w.gems {
		g.Update(dt)
	}
	var collected []*entity.Gem
	if w.hasCollector && w.state.InPlay() {
		w.gems, collected = system.CollectGems(w.gems, w.collector)
		w.collected += len(collected)
	}

	inPlay := w.state.InPlay()
	for _, e := range w.enemies {
		if err := e.Animate(dt, inPlay); err != nil {
			return collected, fmt.Errorf("failed to animate enemy %d: %w", e.ID, err)
		}
	}

	w.ticks++
	return collected, nil
}

// SetCollector sets the bounds that collect gems on the next ticks
func (w *World) SetCollector(bounds geometry.Rect) {
	w.collector = bounds
	w.hasCollector = true
}

// ClearCollector stops gem collection
func (w *World) ClearCollector() {
	w.hasCollector = false
}

// Collector returns the collector bounds and whether one is set
func (w *World) Collector() (geometry.Rect, bool) {
	return w.collector, w.hasCollector
}

// State returns the current world condition
func (w *World) State() state.GameState {
	return w.state
}

// SetState changes the world condition; it takes effect on the next tick
func (w *World) SetState(s state.GameState) {
	w.state = s
}

// Stage returns the config the world was built from
func (w *World) Stage() *config.StageConfig {
	return w.stage
}

// Grid returns the collision map
func (w *World) Grid() *tile.Map {
	return w.grid
}

// Enemies returns the enemies in spawn order
func (w *World) Enemies() []*entity.Enemy {
	return w.enemies
}

// Gems returns the gems still in play
func (w *World) Gems() []*entity.Gem {
	return w.gems
}

// GemTexture returns the texture gems are drawn with, nil for a stage
// without gems
func (w *World) GemTexture() animation.Strip {
	return w.gemTexture
}

// CollectedCount returns the number of gems collected so far
func (w *World) CollectedCount() int {
	return w.collected
}

// Ticks returns the number of ticks the world has advanced
func (w *World) Ticks() int {
	return w.ticks
}
