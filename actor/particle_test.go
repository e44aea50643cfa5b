package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

// =============================================================================
// Advance Tests
// =============================================================================

func TestParticle_Advance(t *testing.T) {
	p := NewParticle(0, mgl64.Vec2{1, 2}, mgl64.Vec2{10, -5}, 1, 1)

	p.Advance(0.1)

	if !p.Position.ApproxEqualThreshold(mgl64.Vec2{2, 1.5}, epsilon) {
		t.Errorf("Position = %v, want (2, 1.5)", p.Position)
	}
	if p.Velocity != (mgl64.Vec2{10, -5}) {
		t.Errorf("Velocity changed to %v", p.Velocity)
	}
}

func TestParticle_Advance_Inactive(t *testing.T) {
	p := NewParticle(0, mgl64.Vec2{1, 2}, mgl64.Vec2{10, -5}, 1, 1)
	p.Active = false

	p.Advance(0.1)

	if p.Position != (mgl64.Vec2{1, 2}) {
		t.Errorf("inactive particle moved to %v", p.Position)
	}
}

// =============================================================================
// MergeWith Tests
// =============================================================================

func TestParticle_MergeWith_HeadOn(t *testing.T) {
	a := NewParticle(0, mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, 1, 1)
	b := NewParticle(1, mgl64.Vec2{1, 0}, mgl64.Vec2{-1, 0}, 1, 1)

	a.MergeWith(b)

	if !a.Position.ApproxEqualThreshold(mgl64.Vec2{0.5, 0}, epsilon) {
		t.Errorf("Position = %v, want (0.5, 0)", a.Position)
	}
	if !a.Velocity.ApproxEqualThreshold(mgl64.Vec2{0, 0}, epsilon) {
		t.Errorf("Velocity = %v, want (0, 0)", a.Velocity)
	}
	if a.Mass != 2 {
		t.Errorf("Mass = %v, want 2", a.Mass)
	}
	if !mgl64.FloatEqualThreshold(a.Radius, math.Sqrt2, epsilon) {
		t.Errorf("Radius = %v, want sqrt(2)", a.Radius)
	}
	if !a.Active {
		t.Error("receiver should stay active")
	}
	if b.Active {
		t.Error("absorbed particle should be inactive")
	}
	if a.ID() != 0 {
		t.Errorf("receiver identity = %d, want 0", a.ID())
	}
}

func TestParticle_MergeWith_Conservation(t *testing.T) {
	tests := []struct {
		name string
		a, b *Particle
	}{
		{
			name: "unequal masses",
			a:    NewParticle(0, mgl64.Vec2{3, 4}, mgl64.Vec2{2, -1}, 3, 2),
			b:    NewParticle(1, mgl64.Vec2{5, 4}, mgl64.Vec2{-4, 3}, 1, 0.5),
		},
		{
			name: "one at rest",
			a:    NewParticle(0, mgl64.Vec2{0, 0}, mgl64.Vec2{0, 0}, 10, 3),
			b:    NewParticle(1, mgl64.Vec2{1, 1}, mgl64.Vec2{7, 7}, 0.1, 1),
		},
		{
			name: "same direction",
			a:    NewParticle(0, mgl64.Vec2{50, 50}, mgl64.Vec2{15, -15}, 2, 4),
			b:    NewParticle(1, mgl64.Vec2{52, 48}, mgl64.Vec2{10, -20}, 1.2, 3.2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			momentum := tt.a.Velocity.Mul(tt.a.Mass).Add(tt.b.Velocity.Mul(tt.b.Mass))
			areaRadius2 := tt.a.Radius*tt.a.Radius + tt.b.Radius*tt.b.Radius
			centerOfMass := tt.a.Position.Mul(tt.a.Mass).Add(tt.b.Position.Mul(tt.b.Mass)).Mul(1 / (tt.a.Mass + tt.b.Mass))

			tt.a.MergeWith(tt.b)

			if got := tt.a.Velocity.Mul(tt.a.Mass); !got.ApproxEqualThreshold(momentum, 1e-9) {
				t.Errorf("momentum = %v, want %v", got, momentum)
			}
			if got := tt.a.Radius * tt.a.Radius; !mgl64.FloatEqualThreshold(got, areaRadius2, 1e-9) {
				t.Errorf("radius² = %v, want %v", got, areaRadius2)
			}
			if !tt.a.Position.ApproxEqualThreshold(centerOfMass, 1e-9) {
				t.Errorf("Position = %v, want center of mass %v", tt.a.Position, centerOfMass)
			}
		})
	}
}

func TestParticle_MergeWith_InactiveIsNoOp(t *testing.T) {
	a := NewParticle(0, mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, 1, 1)
	b := NewParticle(1, mgl64.Vec2{1, 0}, mgl64.Vec2{-1, 0}, 1, 1)
	b.Active = false

	before := *a
	a.MergeWith(b)
	if *a != before {
		t.Errorf("merge with inactive particle changed receiver: %v", a)
	}

	// receiver inactive
	a.Active = false
	b.Active = true
	beforeB := *b
	a.MergeWith(b)
	if *b != beforeB || !b.Active {
		t.Errorf("merge from inactive receiver changed argument: %v", b)
	}
}

// =============================================================================
// Overlaps Tests
// =============================================================================

func TestParticle_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		posB mgl64.Vec2
		want bool
	}{
		{"overlapping", mgl64.Vec2{1, 0}, true},
		{"touching", mgl64.Vec2{2, 0}, false},
		{"separated", mgl64.Vec2{3, 0}, false},
		{"diagonal overlap", mgl64.Vec2{1.4, 1.4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewParticle(0, mgl64.Vec2{0, 0}, mgl64.Vec2{}, 1, 1)
			b := NewParticle(1, tt.posB, mgl64.Vec2{}, 1, 1)

			if got := a.Overlaps(b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v (symmetry test)", got, tt.want)
			}
		})
	}
}

func TestParticle_Overlaps_Inactive(t *testing.T) {
	a := NewParticle(0, mgl64.Vec2{0, 0}, mgl64.Vec2{}, 1, 1)
	b := NewParticle(1, mgl64.Vec2{0, 0}, mgl64.Vec2{}, 1, 1)
	b.Active = false

	if a.Overlaps(b) {
		t.Error("inactive particle should never overlap")
	}
}

func TestParticle_AABB(t *testing.T) {
	p := NewParticle(0, mgl64.Vec2{5, 5}, mgl64.Vec2{}, 1, 2)

	aabb := p.AABB()
	if aabb.Min != (mgl64.Vec2{3, 3}) || aabb.Max != (mgl64.Vec2{7, 7}) {
		t.Errorf("AABB() = %v, want {(3, 3) (7, 7)}", aabb)
	}
}
