package actor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Obstacle is a static axis-aligned square
type Obstacle struct {
	Center mgl64.Vec2
	Side   float64
}

func NewObstacle(center mgl64.Vec2, side float64) *Obstacle {
	return &Obstacle{Center: center, Side: side}
}

func (o *Obstacle) MinX() float64 { return o.Center.X() - o.Side/2.0 }
func (o *Obstacle) MaxX() float64 { return o.Center.X() + o.Side/2.0 }
func (o *Obstacle) MinY() float64 { return o.Center.Y() - o.Side/2.0 }
func (o *Obstacle) MaxY() float64 { return o.Center.Y() + o.Side/2.0 }

// AABB returns the bounds of the obstacle, computed on demand
func (o *Obstacle) AABB() AABB {
	return AABB{
		Min: mgl64.Vec2{o.MinX(), o.MinY()},
		Max: mgl64.Vec2{o.MaxX(), o.MaxY()},
	}
}

func (o *Obstacle) String() string {
	return fmt.Sprintf("obstacle: center=(%.2f, %.2f) side=%.2f bounds=[%.2f, %.2f] x [%.2f, %.2f]",
		o.Center.X(), o.Center.Y(), o.Side, o.MinX(), o.MaxX(), o.MinY(), o.MaxY())
}
