package constraint

import (
	"github.com/akmonengine/particlesim/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// ContactConstraint is a particle overlapping a static obstacle
type ContactConstraint struct {
	Body     *actor.Particle
	Obstacle *actor.Obstacle

	// Point is the closest point of the obstacle to the particle center
	Point mgl64.Vec2
	// Distance from the particle center to Point
	Distance float64
	// Normal is the axis-aligned normal of the obstacle side nearest to the particle center.
	// This is only exact for shallow penetrations, a deep corner hit may pick the wrong side.
	Normal      mgl64.Vec2
	Restitution float64
}

// CollideObstacle tests an active particle against an obstacle
func CollideObstacle(body *actor.Particle, obstacle *actor.Obstacle, restitution float64) (ContactConstraint, bool) {
	if !body.Active {
		return ContactConstraint{}, false
	}

	box := obstacle.AABB()
	point := box.ClosestPoint(body.Position)
	distance := body.Position.Sub(point).Len()
	if distance >= body.Radius {
		return ContactConstraint{}, false
	}

	return ContactConstraint{
		Body:        body,
		Obstacle:    obstacle,
		Point:       point,
		Distance:    distance,
		Normal:      faceNormal(box, body.Position),
		Restitution: restitution,
	}, true
}

// Solve bounces the particle off the obstacle, then pushes it out along the normal
func (c *ContactConstraint) Solve() {
	c.SolveVelocity()
	c.SolvePosition()
}

// SolveVelocity applies restitution to the normal component of the velocity
func (c *ContactConstraint) SolveVelocity() {
	c.Body.Velocity = reflect(c.Body.Velocity, c.Normal, c.Restitution)
}

// SolvePosition moves the particle out of the obstacle, plus SeparationMargin
func (c *ContactConstraint) SolvePosition() {
	correction := c.Body.Radius - c.Distance + SeparationMargin
	c.Body.Position = c.Body.Position.Add(c.Normal.Mul(correction))
}
