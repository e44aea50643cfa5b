package constraint

import (
	"math"

	"github.com/akmonengine/particlesim/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// SeparationMargin is added to the positional correction of an obstacle contact
// so the particle does not overlap the obstacle again on the next step.
const SeparationMargin = 0.1

type Constraint interface {
	Solve()
}

// reflect splits velocity into its normal and tangential parts, and scales the inverted
// normal part by restitution: v' = t - e*(v.n)*n
func reflect(velocity, normal mgl64.Vec2, restitution float64) mgl64.Vec2 {
	normalComponent := velocity.Dot(normal)
	tangential := velocity.Sub(normal.Mul(normalComponent))

	return tangential.Add(normal.Mul(-restitution * normalComponent))
}

// faceNormal returns the outward normal of the box side closest to point.
// Sides are compared left, right, bottom, top; the first minimum wins.
func faceNormal(box actor.AABB, point mgl64.Vec2) mgl64.Vec2 {
	distances := [4]float64{
		math.Abs(point.X() - box.Min.X()),
		math.Abs(point.X() - box.Max.X()),
		math.Abs(point.Y() - box.Min.Y()),
		math.Abs(point.Y() - box.Max.Y()),
	}
	normals := [4]mgl64.Vec2{
		{-1, 0},
		{1, 0},
		{0, -1},
		{0, 1},
	}

	nearest := 0
	for i := 1; i < len(distances); i++ {
		if distances[i] < distances[nearest] {
			nearest = i
		}
	}

	return normals[nearest]
}
