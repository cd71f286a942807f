package replay

import "github.com/younwookim/tilecore/internal/domain/geometry"

// TickInput records what the world was fed for a single tick
type TickInput struct {
	T         int        `json:"t"`           // Tick number
	DT        float64    `json:"dt"`          // Elapsed seconds
	State     int        `json:"s,omitempty"` // state.GameState
	Collector *RectInput `json:"c,omitempty"` // Gem collector bounds
}

// RectInput is a collector rectangle in world units
type RectInput struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// NewRectInput converts a rectangle for recording
func NewRectInput(r geometry.Rect) *RectInput {
	return &RectInput{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Rect converts the recorded rectangle back
func (r RectInput) Rect() geometry.Rect {
	return geometry.NewRect(r.X, r.Y, r.W, r.H)
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string      `json:"version"`
	Stage     string      `json:"stage"`
	StartTime string      `json:"startTime"`
	Ticks     []TickInput `json:"ticks"`
}
