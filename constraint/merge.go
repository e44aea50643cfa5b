package constraint

import "github.com/akmonengine/particlesim/actor"

// MergeConstraint is an overlap between two particles, resolved by a perfectly inelastic merge.
// BodyA always has the lower index and survives; BodyB is absorbed.
type MergeConstraint struct {
	BodyA *actor.Particle
	BodyB *actor.Particle
}

// CollideParticles tests two particles for overlap.
// The returned constraint is ordered so the lower identity absorbs the higher one.
func CollideParticles(a, b *actor.Particle) (MergeConstraint, bool) {
	if !a.Overlaps(b) {
		return MergeConstraint{}, false
	}
	if b.ID() < a.ID() {
		a, b = b, a
	}

	return MergeConstraint{BodyA: a, BodyB: b}, true
}

func (c *MergeConstraint) Solve() {
	c.BodyA.MergeWith(c.BodyB)
}
