// Package geometry provides the axis-aligned primitives used by collision
// resolution and pickups. All values are world-space floats.
package geometry

// Vector is a 2D world-space vector
type Vector struct {
	X, Y float64
}

// Add returns v + o
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// LengthSquared returns the squared length of v
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// IsZero reports whether both components are exactly zero
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is an axis-aligned box. X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle from its top-left corner and size
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge
func (r Rect) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point
func (r Rect) Center() Vector {
	return Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// BottomCenter returns the middle of the bottom edge
func (r Rect) BottomCenter() Vector {
	return Vector{X: r.X + r.W/2, Y: r.Bottom()}
}

// Translate returns r moved by d
func (r Rect) Translate(d Vector) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Empty reports whether r has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// PenetrationDepth returns the signed depth by which a overlaps b on each
// axis. The sign of a component is the direction a must move to separate.
// The zero vector means the rectangles do not overlap; touching edges and
// zero-area rectangles never overlap.
func PenetrationDepth(a, b Rect) Vector {
	if a.Empty() || b.Empty() {
		return Vector{}
	}

	halfWidthA, halfHeightA := a.W/2, a.H/2
	halfWidthB, halfHeightB := b.W/2, b.H/2

	centerA := a.Center()
	centerB := b.Center()

	distanceX := centerA.X - centerB.X
	distanceY := centerA.Y - centerB.Y
	minDistanceX := halfWidthA + halfWidthB
	minDistanceY := halfHeightA + halfHeightB

	if abs(distanceX) >= minDistanceX || abs(distanceY) >= minDistanceY {
		return Vector{}
	}

	var depth Vector
	if distanceX > 0 {
		depth.X = minDistanceX - distanceX
	} else {
		depth.X = -minDistanceX - distanceX
	}
	if distanceY > 0 {
		depth.Y = minDistanceY - distanceY
	} else {
		depth.Y = -minDistanceY - distanceY
	}
	return depth
}

// Circle is a round region, used for pickups
type Circle struct {
	Center Vector
	Radius float64
}

// NewCircle creates a circle
func NewCircle(center Vector, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// Intersects reports whether the circle overlaps r.
// A center lying inside r is at distance zero and does not count.
func (c Circle) Intersects(r Rect) bool {
	return CircleIntersectsRectangle(c, r)
}

// CircleIntersectsRectangle clamps the circle center to r and tests the
// squared distance to the clamped point: 0 < d² < radius².
func CircleIntersectsRectangle(c Circle, r Rect) bool {
	nearest := Vector{
		X: clamp(c.Center.X, r.Left(), r.Right()),
		Y: clamp(c.Center.Y, r.Top(), r.Bottom()),
	}
	distanceSquared := c.Center.Sub(nearest).LengthSquared()
	return distanceSquared > 0 && distanceSquared < c.Radius*c.Radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
