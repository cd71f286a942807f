package entity

import "github.com/younwookim/tilecore/internal/domain/geometry"

// Contacts records which sides of an actor touched solid tiles during the
// last collision resolution
type Contacts struct {
	OnGround    bool
	OnCeiling   bool
	OnWallLeft  bool
	OnWallRight bool
}

// Any reports whether any contact was made
func (c Contacts) Any() bool {
	return c.OnGround || c.OnCeiling || c.OnWallLeft || c.OnWallRight
}

// Merge returns the union of both contact sets
func (c Contacts) Merge(o Contacts) Contacts {
	return Contacts{
		OnGround:    c.OnGround || o.OnGround,
		OnCeiling:   c.OnCeiling || o.OnCeiling,
		OnWallLeft:  c.OnWallLeft || o.OnWallLeft,
		OnWallRight: c.OnWallRight || o.OnWallRight,
	}
}

// Body is the falling state of an actor that settles onto tiles.
// VY is in world units per second, positive downward.
type Body struct {
	VY       float64
	Contacts Contacts
}

// ApplyGravity accelerates the body downward, clamped to maxFall
func (b *Body) ApplyGravity(gravity, maxFall, dt float64) {
	b.VY += gravity * dt
	if b.VY > maxFall {
		b.VY = maxFall
	}
}

// Fall returns this tick's vertical displacement
func (b *Body) Fall(dt float64) geometry.Vector {
	return geometry.Vector{Y: b.VY * dt}
}

// Land stores the contacts of a resolution and stops vertical motion
// when the body hit the ground or a ceiling
func (b *Body) Land(c Contacts) {
	b.Contacts = c
	if (c.OnGround && b.VY > 0) || (c.OnCeiling && b.VY < 0) {
		b.VY = 0
	}
}
