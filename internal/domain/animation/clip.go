// Package animation plays timed frame sequences cut from horizontal sprite
// strips. Frames are square: a strip's height is also its frame width.
package animation

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrNoClip is returned when advancing a player that has never been
	// given a clip. It indicates a setup bug, not a runtime fault.
	ErrNoClip = errors.New("animation: no clip is playing")

	// ErrInvalidClip is returned when a clip cannot be built from its inputs
	ErrInvalidClip = errors.New("animation: invalid clip")
)

// Strip is a texture holding frames side by side.
// *ebiten.Image satisfies it.
type Strip interface {
	Bounds() image.Rectangle
}

// Clip is an immutable timed sequence of frames.
// A single clip is shared by every actor of the same type.
type Clip struct {
	name      string
	strip     Strip
	frameTime float64
	looping   bool
	size      int
	count     int
}

// NewClip creates a clip over strip. frameTime is in seconds.
func NewClip(name string, strip Strip, frameTime float64, looping bool) (*Clip, error) {
	if strip == nil {
		return nil, fmt.Errorf("%w: %s has no strip", ErrInvalidClip, name)
	}
	if frameTime <= 0 {
		return nil, fmt.Errorf("%w: %s frame time %v must be positive", ErrInvalidClip, name, frameTime)
	}
	b := strip.Bounds()
	if b.Dy() <= 0 || b.Dx() < b.Dy() {
		return nil, fmt.Errorf("%w: %s strip %dx%d holds no square frame", ErrInvalidClip, name, b.Dx(), b.Dy())
	}
	return &Clip{
		name:      name,
		strip:     strip,
		frameTime: frameTime,
		looping:   looping,
		size:      b.Dy(),
		count:     b.Dx() / b.Dy(),
	}, nil
}

// Name returns the clip name
func (c *Clip) Name() string { return c.name }

// Strip returns the texture the frames are cut from
func (c *Clip) Strip() Strip { return c.strip }

// FrameTime returns the duration of each frame in seconds
func (c *Clip) FrameTime() float64 { return c.frameTime }

// Looping reports whether playback wraps after the last frame
func (c *Clip) Looping() bool { return c.looping }

// FrameCount returns the number of frames in the strip
func (c *Clip) FrameCount() int { return c.count }

// FrameWidth returns the width of a single frame
func (c *Clip) FrameWidth() int { return c.size }

// FrameHeight returns the height of a single frame
func (c *Clip) FrameHeight() int { return c.size }

// Duration returns the time needed to show every frame once
func (c *Clip) Duration() float64 {
	return c.frameTime * float64(c.count)
}

// Source returns the strip region of frame index
func (c *Clip) Source(index int) image.Rectangle {
	topLeft := c.strip.Bounds().Min
	x := topLeft.X + index*c.size
	return image.Rect(x, topLeft.Y, x+c.size, topLeft.Y+c.size)
}
