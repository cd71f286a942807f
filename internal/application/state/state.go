// Package state holds the world condition that actors read each tick.
package state

// GameState represents the current condition of the world
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StatePlayerDead
	StateReachedExit
	StateTimeExpired
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StatePlayerDead:
		return "PlayerDead"
	case StateReachedExit:
		return "ReachedExit"
	case StateTimeExpired:
		return "TimeExpired"
	default:
		return "Unknown"
	}
}

// InPlay reports whether actors should behave as in normal play.
// Enemies idle in every other state.
func (s GameState) InPlay() bool {
	return s == StatePlaying
}

// Ticking reports whether the world advances at all
func (s GameState) Ticking() bool {
	return s != StatePaused
}
