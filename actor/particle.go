package actor

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Particle is a circular point mass moving inside the region.
// Particles are never removed: once absorbed by a merge they stay in their world, inactive.
type Particle struct {
	id int

	Position mgl64.Vec2
	Velocity mgl64.Vec2
	Mass     float64
	Radius   float64

	// Active is false once the particle has been absorbed by another one
	Active bool
}

// NewParticle creates an active particle with the given identity.
// Identities are handed out by the owner of the particles (see World.AddParticle).
func NewParticle(id int, position, velocity mgl64.Vec2, mass, radius float64) *Particle {
	return &Particle{
		id:       id,
		Position: position,
		Velocity: velocity,
		Mass:     mass,
		Radius:   radius,
		Active:   true,
	}
}

func (p *Particle) ID() int {
	return p.id
}

// Advance moves the particle by one explicit Euler step
func (p *Particle) Advance(dt float64) {
	if !p.Active {
		return
	}

	p.Position = p.Position.Add(p.Velocity.Mul(dt))
}

// MergeWith absorbs other into p with a perfectly inelastic collision.
// Momentum and total area are conserved, other is deactivated.
// Nothing happens if either particle is already inactive.
func (p *Particle) MergeWith(other *Particle) {
	if !p.Active || !other.Active {
		return
	}

	totalMass := p.Mass + other.Mass

	// p_total = m1*v1 + m2*v2
	momentum := p.Velocity.Mul(p.Mass).Add(other.Velocity.Mul(other.Mass))
	p.Velocity = SafeDiv(momentum, totalMass)

	// center of mass
	p.Position = SafeDiv(p.Position.Mul(p.Mass).Add(other.Position.Mul(other.Mass)), totalMass)

	p.Mass = totalMass

	// π*r'^2 = π*r1^2 + π*r2^2
	p.Radius = math.Sqrt(p.Radius*p.Radius + other.Radius*other.Radius)

	other.Active = false
}

// Overlaps reports whether both particles are active and their discs intersect.
// Touching discs (distance equal to the sum of radii) do not overlap.
func (p *Particle) Overlaps(other *Particle) bool {
	if !p.Active || !other.Active {
		return false
	}

	return p.Position.Sub(other.Position).Len() < p.Radius+other.Radius
}

// AABB returns the bounding box of the particle's disc
func (p *Particle) AABB() AABB {
	extent := mgl64.Vec2{p.Radius, p.Radius}
	return AABB{Min: p.Position.Sub(extent), Max: p.Position.Add(extent)}
}

func (p *Particle) String() string {
	state := "active"
	if !p.Active {
		state = "inactive"
	}

	return fmt.Sprintf("particle #%d: pos=(%.2f, %.2f) vel=(%.2f, %.2f) mass=%.2f radius=%.2f %s",
		p.id, p.Position.X(), p.Position.Y(), p.Velocity.X(), p.Velocity.Y(), p.Mass, p.Radius, state)
}
