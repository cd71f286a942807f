package animation

import (
	"image"

	"github.com/younwookim/tilecore/internal/domain/geometry"
)

// FrameRegion is everything a renderer needs to blit the current frame
type FrameRegion struct {
	Texture Strip
	Source  image.Rectangle
	// Origin is the point of the frame placed on the actor position:
	// the middle of the frame's bottom edge.
	Origin geometry.Vector
	Flip   bool
}

// Player is a per-actor playback cursor over a shared Clip.
// The zero value has no clip; Play must be called before Advance.
type Player struct {
	clip  *Clip
	frame int
	time  float64
	flip  bool
}

// Clip returns the active clip, nil before the first Play
func (p *Player) Clip() *Clip { return p.clip }

// FrameIndex returns the zero-based index of the current frame
func (p *Player) FrameIndex() int { return p.frame }

// TimeInFrame returns how long the current frame has been shown
func (p *Player) TimeInFrame() float64 { return p.time }

// Play switches to clip and restarts it.
// Playing the clip that is already active keeps its position.
func (p *Player) Play(clip *Clip) {
	if p.clip == clip {
		return
	}
	p.clip = clip
	p.frame = 0
	p.time = 0
}

// Advance moves the cursor forward by elapsed seconds.
// Looping clips wrap around; other clips stop on their last frame.
func (p *Player) Advance(elapsed float64) error {
	if p.clip == nil {
		return ErrNoClip
	}

	p.time += elapsed
	for p.time >= p.clip.frameTime {
		p.time -= p.clip.frameTime
		if p.clip.looping {
			p.frame = (p.frame + 1) % p.clip.count
		} else if p.frame < p.clip.count-1 {
			p.frame++
		}
	}
	return nil
}

// SetFlipped mirrors the frame horizontally on the next region lookups
func (p *Player) SetFlipped(flip bool) {
	p.flip = flip
}

// Origin returns the bottom-center point of a frame of the active clip
func (p *Player) Origin() geometry.Vector {
	if p.clip == nil {
		return geometry.Vector{}
	}
	return geometry.Vector{
		X: float64(p.clip.FrameWidth()) / 2,
		Y: float64(p.clip.FrameHeight()),
	}
}

// CurrentFrameRegion describes the frame to draw.
// ok is false before the first Play.
func (p *Player) CurrentFrameRegion() (region FrameRegion, ok bool) {
	if p.clip == nil {
		return FrameRegion{}, false
	}
	return FrameRegion{
		Texture: p.clip.strip,
		Source:  p.clip.Source(p.frame),
		Origin:  p.Origin(),
		Flip:    p.flip,
	}, true
}
