package replay

import (
	"github.com/akmonengine/particlesim/eventlog"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultMaxFrames caps the frames played back, long logs are subsampled
	DefaultMaxFrames = 500
	// RecentWindow is how far (in simulated seconds) around the current frame a collision counts as recent
	RecentWindow = 0.1
)

// Player walks through the frames of a recording and loops at the end
type Player struct {
	Recording *eventlog.Recording

	frames []int
	cursor int
	Paused bool
	// Trails overlays the path each particle followed up to the current frame
	Trails bool
}

// NewPlayer keeps at most maxFrames evenly spaced frames of recording
func NewPlayer(recording *eventlog.Recording, maxFrames int) *Player {
	if maxFrames <= 0 {
		maxFrames = DefaultMaxFrames
	}
	stride := max(1, len(recording.Frames)/maxFrames)

	frames := make([]int, 0, len(recording.Frames)/stride+1)
	for i := 0; i < len(recording.Frames); i += stride {
		frames = append(frames, i)
	}

	return &Player{Recording: recording, frames: frames}
}

func (p *Player) Len() int {
	return len(p.frames)
}

func (p *Player) Index() int {
	return p.cursor
}

// Frame returns the current frame, or false for an empty recording
func (p *Player) Frame() (eventlog.Frame, bool) {
	if len(p.frames) == 0 {
		return eventlog.Frame{}, false
	}

	return p.Recording.Frames[p.frames[p.cursor]], true
}

// Next moves to the next frame, back to the first one after the last
func (p *Player) Next() {
	if len(p.frames) == 0 {
		return
	}
	p.cursor = (p.cursor + 1) % len(p.frames)
}

func (p *Player) Prev() {
	if len(p.frames) == 0 {
		return
	}
	p.cursor = (p.cursor - 1 + len(p.frames)) % len(p.frames)
}

// Recent returns the collisions within RecentWindow of the current frame
func (p *Player) Recent() []eventlog.Collision {
	frame, ok := p.Frame()
	if !ok {
		return nil
	}

	var recent []eventlog.Collision
	for _, c := range p.Recording.Collisions {
		if c.Time-frame.Time < RecentWindow && frame.Time-c.Time < RecentWindow {
			recent = append(recent, c)
		}
	}

	return recent
}

// Trail returns the positions of particle id over the played frames, up to and including the current one
func (p *Player) Trail(id int) []mgl64.Vec2 {
	if len(p.frames) == 0 {
		return nil
	}

	var trail []mgl64.Vec2
	for _, i := range p.frames[:p.cursor+1] {
		for _, state := range p.Recording.Frames[i].Particles {
			if state.ID == id {
				trail = append(trail, state.Position)
				break
			}
		}
	}

	return trail
}
