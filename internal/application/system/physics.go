package system

import (
	"math"

	"github.com/younwookim/tilecore/internal/domain/entity"
	"github.com/younwookim/tilecore/internal/domain/geometry"
	"github.com/younwookim/tilecore/internal/domain/tile"
	"github.com/younwookim/tilecore/internal/infrastructure/config"
)

// PhysicsSystem moves actors through the tile grid with Intent & Apply model:
// behavior proposes a displacement, the resolver corrects it.
type PhysicsSystem struct {
	config config.PhysicsSettings
	grid   tile.Grid
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg config.PhysicsSettings, grid tile.Grid) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		grid:   grid,
	}
}

// Grid returns the tile grid actors collide with
func (s *PhysicsSystem) Grid() tile.Grid {
	return s.grid
}

// CorrectedBounds moves bounds by delta and pushes the result out of every
// blocking tile it overlaps. Tiles are visited row by row, left to right,
// and each correction applies to the already corrected rectangle.
//
// A tile is resolved vertically when the overlap is at least as wide as it
// is tall, and horizontally otherwise. Platforms only resolve vertically and
// only push up, for actors that were above them before the move.
func (s *PhysicsSystem) CorrectedBounds(bounds geometry.Rect, delta geometry.Vector) (geometry.Rect, entity.Contacts) {
	var contacts entity.Contacts
	previousBottom := bounds.Bottom()
	moved := bounds.Translate(delta)

	left, top, right, bottom := tile.Range(s.grid, moved)
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			kind := s.grid.GetCollision(x, y)
			if kind == tile.Passable {
				continue
			}

			tileRect := tile.Bounds(s.grid, x, y)
			depth := geometry.PenetrationDepth(moved, tileRect)
			if depth.IsZero() {
				continue
			}

			absX, absY := math.Abs(depth.X), math.Abs(depth.Y)
			if absY <= absX || kind == tile.Platform {
				if !kind.Blocks(previousBottom, tileRect.Top(), delta.Y) {
					continue
				}
				dy := depth.Y
				if kind == tile.Platform {
					dy = tileRect.Top() - moved.Bottom()
					if dy >= 0 {
						continue
					}
				}
				moved.Y += dy
				if dy < 0 {
					contacts.OnGround = true
				} else {
					contacts.OnCeiling = true
				}
				continue
			}

			moved.X += depth.X
			if depth.X > 0 {
				contacts.OnWallLeft = true
			} else {
				contacts.OnWallRight = true
			}
		}
	}

	return moved, contacts
}

// MoveEnemy applies gravity and the enemy's intended displacement, then
// settles it against the grid
func (s *PhysicsSystem) MoveEnemy(e *entity.Enemy, intent geometry.Vector, dt float64) entity.Contacts {
	e.ApplyGravity(s.config.Gravity, s.config.MaxFallSpeed, dt)
	delta := intent.Add(e.Fall(dt))

	bounds, contacts := s.CorrectedBounds(e.BoundingRectangle(), delta)
	e.SetBoundingRectangle(bounds)
	e.Land(contacts)
	return contacts
}
