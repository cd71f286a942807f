package entity

import (
	"errors"
	"math"

	"github.com/younwookim/tilecore/internal/domain/animation"
	"github.com/younwookim/tilecore/internal/domain/geometry"
	"github.com/younwookim/tilecore/internal/domain/tile"
)

// groundProbe is how far below the feet the ground row is sampled
const groundProbe = 0.5

// BehaviorState is the patrol state of an enemy
type BehaviorState int

const (
	StateMoving BehaviorState = iota
	StateWaiting
)

// String returns the string representation of the behavior state
func (s BehaviorState) String() string {
	switch s {
	case StateMoving:
		return "Moving"
	case StateWaiting:
		return "Waiting"
	default:
		return "Unknown"
	}
}

// EnemyTuning holds the patrol constants of an enemy type
type EnemyTuning struct {
	MoveSpeed         float64 // world units per second
	MaxWaitTime       float64 // seconds spent before turning around
	BoundsWidthRatio  float64 // bounds width as a fraction of frame width
	BoundsHeightRatio float64 // bounds height as a fraction of frame width
}

// DefaultEnemyTuning returns the stock patrol constants
func DefaultEnemyTuning() EnemyTuning {
	return EnemyTuning{
		MoveSpeed:         128,
		MaxWaitTime:       0.5,
		BoundsWidthRatio:  0.35,
		BoundsHeightRatio: 0.7,
	}
}

// EnemySprites holds the clips an enemy type switches between
type EnemySprites struct {
	Idle *animation.Clip
	Run  *animation.Clip
}

// Enemy walks back and forth along a ledge, pausing at walls and drops.
// Position is the bottom-center of the sprite.
type Enemy struct {
	ID        EntityID
	SpriteSet string
	Position  geometry.Vector
	Body

	direction Direction
	waitTime  float64
	tuning    EnemyTuning

	width, height float64
	sprites       EnemySprites
	sprite        animation.Player
}

// NewEnemy creates an enemy moving left, showing its idle clip
func NewEnemy(id EntityID, position geometry.Vector, spriteSet string, sprites EnemySprites, tuning EnemyTuning) (*Enemy, error) {
	if sprites.Idle == nil || sprites.Run == nil {
		return nil, errors.New("enemy needs idle and run clips")
	}

	frameWidth := float64(sprites.Idle.FrameWidth())
	e := &Enemy{
		ID:        id,
		SpriteSet: spriteSet,
		Position:  position,
		direction: Left,
		tuning:    tuning,
		width:     frameWidth * tuning.BoundsWidthRatio,
		height:    frameWidth * tuning.BoundsHeightRatio,
		sprites:   sprites,
	}
	e.sprite.Play(sprites.Idle)
	return e, nil
}

// Direction returns the facing direction
func (e *Enemy) Direction() Direction { return e.direction }

// SetDirection turns the enemy; it keeps its current behavior state
func (e *Enemy) SetDirection(d Direction) { e.direction = d }

// WaitTime returns the seconds remaining before turning around
func (e *Enemy) WaitTime() float64 { return e.waitTime }

// State returns the current patrol state
func (e *Enemy) State() BehaviorState {
	if e.waitTime > 0 {
		return StateWaiting
	}
	return StateMoving
}

// Tuning returns the patrol constants
func (e *Enemy) Tuning() EnemyTuning { return e.tuning }

// BoundingRectangle returns the collision bounds in world space
func (e *Enemy) BoundingRectangle() geometry.Rect {
	return geometry.NewRect(e.Position.X-e.width/2, e.Position.Y-e.height, e.width, e.height)
}

// SetBoundingRectangle moves the enemy so its bounds match r
func (e *Enemy) SetBoundingRectangle(r geometry.Rect) {
	e.Position = r.BottomCenter()
}

// Think runs one tick of the patrol state machine and returns the
// horizontal displacement the enemy wants to make. Position is unchanged.
func (e *Enemy) Think(dt float64, grid tile.Grid) geometry.Vector {
	if e.waitTime > 0 {
		e.waitTime = math.Max(0, e.waitTime-dt)
		if e.waitTime <= 0 {
			e.direction = e.direction.Opposite()
		}
		return geometry.Vector{}
	}

	step := e.direction.Sign() * e.tuning.MoveSpeed * dt
	column := e.probeColumn(step, grid)
	footRow := e.footRow(grid)

	wallAhead := grid.GetCollision(column, footRow-1) != tile.Passable
	dropAhead := grid.GetCollision(column, footRow) == tile.Passable
	if wallAhead || dropAhead {
		e.wait()
		return geometry.Vector{}
	}
	return geometry.Vector{X: step}
}

// Update runs the state machine and applies the displacement directly,
// without collision resolution
func (e *Enemy) Update(dt float64, grid tile.Grid) {
	e.Position = e.Position.Add(e.Think(dt, grid))
}

func (e *Enemy) wait() {
	e.waitTime = e.tuning.MaxWaitTime
	if e.waitTime <= 0 {
		e.waitTime = 0
		e.direction = e.direction.Opposite()
	}
}

// probeColumn returns the column the leading edge would reach after step.
// An edge exactly on a tile boundary stays in the column it came from.
func (e *Enemy) probeColumn(step float64, grid tile.Grid) int {
	tileW, _ := grid.TileSize()
	edge := e.Position.X + e.direction.Sign()*e.width/2 + step
	if e.direction == Right {
		return int(math.Ceil(edge/tileW)) - 1
	}
	return int(math.Floor(edge / tileW))
}

func (e *Enemy) footRow(grid tile.Grid) int {
	_, tileH := grid.TileSize()
	return int(math.Floor((e.Position.Y + groundProbe) / tileH))
}

// Animate picks the clip to show and advances it. The enemy idles while
// waiting or whenever the world is not in play.
func (e *Enemy) Animate(dt float64, worldActive bool) error {
	if !worldActive || e.State() == StateWaiting {
		e.sprite.Play(e.sprites.Idle)
	} else {
		e.sprite.Play(e.sprites.Run)
	}
	// Sprites face left
	e.sprite.SetFlipped(e.direction == Right)
	return e.sprite.Advance(dt)
}

// Sprite returns the animation cursor
func (e *Enemy) Sprite() *animation.Player { return &e.sprite }

// FrameRegion returns the frame a renderer should draw at Position
func (e *Enemy) FrameRegion() (animation.FrameRegion, bool) {
	return e.sprite.CurrentFrameRegion()
}
