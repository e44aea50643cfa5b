package constraint

import (
	"github.com/akmonengine/particlesim/actor"
	"github.com/go-gl/mathgl/mgl64"
)

type Wall uint8

const (
	WALL_LEFT Wall = 1 << iota
	WALL_RIGHT
	WALL_BOTTOM
	WALL_TOP
)

// WallConstraint is a particle crossing one or more sides of the region
type WallConstraint struct {
	Body   *actor.Particle
	Region actor.Region
	Walls  Wall
}

// CollideWalls tests each side of the region independently
func CollideWalls(body *actor.Particle, region actor.Region) (WallConstraint, bool) {
	if !body.Active {
		return WallConstraint{}, false
	}

	var walls Wall
	if body.Position.X()-body.Radius < 0 {
		walls |= WALL_LEFT
	}
	if body.Position.X()+body.Radius > region.Width {
		walls |= WALL_RIGHT
	}
	if body.Position.Y()-body.Radius < 0 {
		walls |= WALL_BOTTOM
	}
	if body.Position.Y()+body.Radius > region.Height {
		walls |= WALL_TOP
	}

	if walls == 0 {
		return WallConstraint{}, false
	}

	return WallConstraint{Body: body, Region: region, Walls: walls}, true
}

func (c *WallConstraint) Has(wall Wall) bool {
	return c.Walls&wall != 0
}

// Solve clamps the particle back inside and mirrors the crossing velocity component.
// Walls are perfectly elastic, restitution only applies to obstacles.
func (c *WallConstraint) Solve() {
	body := c.Body
	x, y := body.Position.X(), body.Position.Y()
	vx, vy := body.Velocity.X(), body.Velocity.Y()

	if c.Has(WALL_LEFT) {
		x = body.Radius
		vx = -vx
	}
	if c.Has(WALL_RIGHT) {
		x = c.Region.Width - body.Radius
		vx = -vx
	}
	if c.Has(WALL_BOTTOM) {
		y = body.Radius
		vy = -vy
	}
	if c.Has(WALL_TOP) {
		y = c.Region.Height - body.Radius
		vy = -vy
	}

	body.Position = mgl64.Vec2{x, y}
	body.Velocity = mgl64.Vec2{vx, vy}
}
