package actor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Region is the rectangle [0, Width] x [0, Height] enclosing the simulation.
// Its four sides are the walls particles bounce against.
type Region struct {
	Width  float64
	Height float64
}

// AABB returns the region as a bounding box anchored at the origin
func (r Region) AABB() AABB {
	return AABB{Max: mgl64.Vec2{r.Width, r.Height}}
}

// Contains reports whether a disc of the given radius lies fully inside the region
func (r Region) Contains(center mgl64.Vec2, radius float64) bool {
	return center.X() >= radius && center.X() <= r.Width-radius &&
		center.Y() >= radius && center.Y() <= r.Height-radius
}

func (r Region) String() string {
	return fmt.Sprintf("region: %.2f x %.2f", r.Width, r.Height)
}
