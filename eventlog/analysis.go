package eventlog

import (
	"fmt"
	"strings"

	"github.com/akmonengine/particlesim"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultHistogramBins is the number of time buckets Analysis uses
const DefaultHistogramBins = 50

var collisionTypes = []particlesim.EventType{
	particlesim.PARTICLE_COLLISION,
	particlesim.OBSTACLE_COLLISION,
	particlesim.WALL_COLLISION,
}

// Duration returns the time of the last frame or collision in the log
func (r *Recording) Duration() float64 {
	var end float64
	if len(r.Frames) > 0 {
		end = r.Frames[len(r.Frames)-1].Time
	}
	for _, c := range r.Collisions {
		end = max(end, c.Time)
	}

	return end
}

// CountByType returns the number of collisions of each type found in the log
func (r *Recording) CountByType() map[particlesim.EventType]int {
	counts := make(map[particlesim.EventType]int)
	for _, c := range r.Collisions {
		counts[c.Type]++
	}

	return counts
}

// Histogram splits [0, Duration()] into bins buckets of equal width and counts
// the collisions falling in each. The last bucket is closed on the right.
func (r *Recording) Histogram(bins int) []int {
	if bins <= 0 {
		return nil
	}

	counts := make([]int, bins)
	width := r.Duration() / float64(bins)
	for _, c := range r.Collisions {
		i := 0
		if width > 0 {
			i = int(c.Time / width)
		}
		counts[min(max(i, 0), bins-1)]++
	}

	return counts
}

// Trajectory returns the recorded positions of particle id, in time order
func (r *Recording) Trajectory(id int) []mgl64.Vec2 {
	var path []mgl64.Vec2
	for _, frame := range r.Frames {
		for _, p := range frame.Particles {
			if p.ID == id {
				path = append(path, p.Position)
				break
			}
		}
	}

	return path
}

// Analysis formats the collision counts per type, the total, and a text
// histogram of the collisions over time
func (r *Recording) Analysis(bins int) string {
	var b strings.Builder

	counts := r.CountByType()
	for _, t := range collisionTypes {
		fmt.Fprintf(&b, "%s: %d\n", t, counts[t])
	}
	fmt.Fprintf(&b, "total: %d\n", len(r.Collisions))

	histogram := r.Histogram(bins)
	if len(histogram) == 0 {
		return b.String()
	}

	peak := 0
	for _, n := range histogram {
		peak = max(peak, n)
	}
	width := r.Duration() / float64(len(histogram))
	for i, n := range histogram {
		bar := 0
		if peak > 0 {
			bar = n * 40 / peak
		}
		fmt.Fprintf(&b, "%8.4f %6d %s\n", float64(i)*width, n, strings.Repeat("#", bar))
	}

	return b.String()
}
