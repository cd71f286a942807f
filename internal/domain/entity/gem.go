package entity

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/tilecore/internal/domain/geometry"
)

// GemTuning holds the pickup constants of a gem
type GemTuning struct {
	Radius       float64 // collection radius in world units
	BounceHeight float64 // bob amplitude in world units
	BounceRate   float64 // bob angular speed in radians per second
	BounceSync   float64 // phase offset per world unit of X
}

// Gem is a collectible that bobs in place.
// It is collected when its bounding circle overlaps a collector's bounds.
type Gem struct {
	ID EntityID

	basePosition geometry.Vector
	bounce       float64
	tuning       GemTuning

	bob    *gween.Tween
	rising bool
}

// NewGem creates a gem bobbing around position. Gems at different X bob
// out of phase with each other.
func NewGem(id EntityID, position geometry.Vector, tuning GemTuning) *Gem {
	g := &Gem{
		ID:           id,
		basePosition: position,
		tuning:       tuning,
	}
	if tuning.BounceHeight <= 0 || tuning.BounceRate <= 0 {
		return g
	}

	// The bob follows -h*cos(rate*t); shift t so the gem starts at
	// h*sin(position.X * sync).
	halfPeriod := math.Pi / tuning.BounceRate
	phase := math.Mod(position.X*tuning.BounceSync+math.Pi/2, 2*math.Pi)
	if phase < 0 {
		phase += 2 * math.Pi
	}
	offset := phase / tuning.BounceRate

	g.rising = offset < halfPeriod
	if !g.rising {
		offset -= halfPeriod
	}
	g.bob = g.newBob()
	current, _ := g.bob.Update(float32(offset))
	g.bounce = float64(current)
	return g
}

func (g *Gem) newBob() *gween.Tween {
	h := float32(g.tuning.BounceHeight)
	halfPeriod := float32(math.Pi / g.tuning.BounceRate)
	if g.rising {
		return gween.New(-h, h, halfPeriod, ease.InOutSine)
	}
	return gween.New(h, -h, halfPeriod, ease.InOutSine)
}

// Update advances the bob by dt seconds
func (g *Gem) Update(dt float64) {
	if g.bob == nil {
		return
	}
	current, finished := g.bob.Update(float32(dt))
	for finished {
		// Time past the turn belongs to the next half-swing
		overflow := g.bob.Overflow
		g.rising = !g.rising
		g.bob = g.newBob()
		current, finished = g.bob.Update(overflow)
	}
	g.bounce = float64(current)
}

// Position returns the current center of the gem
func (g *Gem) Position() geometry.Vector {
	return g.basePosition.Add(geometry.Vector{Y: g.bounce})
}

// BasePosition returns the rest position the gem bobs around
func (g *Gem) BasePosition() geometry.Vector {
	return g.basePosition
}

// BoundingCircle returns the collection region
func (g *Gem) BoundingCircle() geometry.Circle {
	return geometry.NewCircle(g.Position(), g.tuning.Radius)
}

// CollectedBy reports whether the gem overlaps the collector bounds
func (g *Gem) CollectedBy(bounds geometry.Rect) bool {
	return g.BoundingCircle().Intersects(bounds)
}
