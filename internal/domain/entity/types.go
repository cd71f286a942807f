package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Direction is the horizontal facing of an actor
type Direction int

const (
	Left Direction = iota
	Right
)

// Sign returns -1 for Left and +1 for Right
func (d Direction) Sign() float64 {
	if d == Right {
		return 1
	}
	return -1
}

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	if d == Right {
		return Left
	}
	return Right
}

// String returns the string representation of the direction
func (d Direction) String() string {
	if d == Right {
		return "Right"
	}
	return "Left"
}
