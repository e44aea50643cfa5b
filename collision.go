package particlesim

import (
	"github.com/akmonengine/particlesim/actor"
	"github.com/akmonengine/particlesim/constraint"
)

// obstacleHit is the outcome of one particle/obstacle contact, kept until the pass is over
type obstacleHit struct {
	obstacle int
	contact  constraint.ContactConstraint
}

// collideParticles is an exhaustive O(n²) scan over every pair i<j.
// A merge is applied as soon as it is detected: later pairs see the merged particle,
// and no pair is evaluated twice in the same step.
// This pass always runs on a single goroutine, a merge mutates two particles at once.
func (w *World) collideParticles() {
	for i := 0; i < len(w.Particles); i++ {
		for j := i + 1; j < len(w.Particles); j++ {
			merge, ok := constraint.CollideParticles(w.Particles[i], w.Particles[j])
			if !ok {
				continue
			}

			w.Events.emit(ParticleCollisionEvent{
				At:    w.Time,
				BodyA: merge.BodyA.ID(),
				BodyB: merge.BodyB.ID(),
			})
			merge.Solve()
		}
	}
}

// collideObstacles tests every active particle against every obstacle, in insertion order.
// A contact is solved before the next obstacle is tested.
func (w *World) collideObstacles() {
	if len(w.Obstacles) == 0 {
		return
	}

	hits := make([][]obstacleHit, len(w.Particles))
	task(w.Workers, w.Particles, func(body *actor.Particle) {
		for k, obstacle := range w.Obstacles {
			contact, ok := constraint.CollideObstacle(body, obstacle, w.Restitution)
			if !ok {
				continue
			}

			contact.Solve()
			hits[body.ID()] = append(hits[body.ID()], obstacleHit{obstacle: k, contact: contact})
		}
	})

	for id, bodyHits := range hits {
		for _, hit := range bodyHits {
			w.Events.emit(ObstacleCollisionEvent{
				At:       w.Time,
				Body:     id,
				Obstacle: hit.obstacle,
				Normal:   hit.contact.Normal,
			})
		}
	}
}

// collideWalls clamps every active particle back inside the region
func (w *World) collideWalls() {
	hits := make([]constraint.Wall, len(w.Particles))
	task(w.Workers, w.Particles, func(body *actor.Particle) {
		contact, ok := constraint.CollideWalls(body, w.Region)
		if !ok {
			return
		}

		contact.Solve()
		hits[body.ID()] = contact.Walls
	})

	for id, walls := range hits {
		if walls == 0 {
			continue
		}
		w.Events.emit(WallCollisionEvent{At: w.Time, Body: id, Walls: walls})
	}
}
