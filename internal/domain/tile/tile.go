// Package tile defines how a single grid cell affects motion and provides
// the level grid that answers collision queries.
package tile

import (
	"errors"
	"fmt"

	"github.com/younwookim/tilecore/internal/domain/geometry"
)

// ErrUnknownCollision is returned when a name matches no collision kind
var ErrUnknownCollision = errors.New("unknown tile collision")

// Collision classifies how a tile affects motion
type Collision int

const (
	// Passable tiles never block movement
	Passable Collision = iota
	// Impassable tiles block movement from every side
	Impassable
	// Platform tiles block only actors landing on them from above
	Platform
)

// Default tile dimensions in world units
const (
	DefaultWidth  = 64
	DefaultHeight = 48
)

// String returns the string representation of the collision kind
func (c Collision) String() string {
	switch c {
	case Passable:
		return "passable"
	case Impassable:
		return "impassable"
	case Platform:
		return "platform"
	default:
		return "unknown"
	}
}

// ParseCollision converts a level-file name into a Collision
func ParseCollision(name string) (Collision, error) {
	switch name {
	case "passable", "":
		return Passable, nil
	case "impassable":
		return Impassable, nil
	case "platform":
		return Platform, nil
	default:
		return Passable, fmt.Errorf("%w %q", ErrUnknownCollision, name)
	}
}

// Blocks reports whether a tile of this kind stops an actor.
// Platforms only block an actor whose previous bottom was at or above the
// platform top and that is not moving upward.
func (c Collision) Blocks(previousBottom, tileTop, velocityY float64) bool {
	switch c {
	case Impassable:
		return true
	case Platform:
		return previousBottom <= tileTop+ContactEpsilon && velocityY >= 0
	default:
		return false
	}
}

// ContactEpsilon absorbs float error when comparing resting edges
const ContactEpsilon = 1e-6

// Grid answers collision queries for integer tile coordinates
type Grid interface {
	GetCollision(x, y int) Collision
	TileSize() (w, h float64)
}

// Bounds returns the world rectangle covered by tile (x, y)
func Bounds(g Grid, x, y int) geometry.Rect {
	w, h := g.TileSize()
	return geometry.NewRect(float64(x)*w, float64(y)*h, w, h)
}
