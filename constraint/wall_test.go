package constraint

import (
	"testing"

	"github.com/akmonengine/particlesim/actor"
	"github.com/go-gl/mathgl/mgl64"
)

func TestCollideWalls(t *testing.T) {
	region := actor.Region{Width: 10, Height: 10}

	tests := []struct {
		name     string
		position mgl64.Vec2
		walls    Wall
	}{
		{"inside", mgl64.Vec2{5, 5}, 0},
		{"touching", mgl64.Vec2{1, 9}, 0},
		{"left", mgl64.Vec2{0.5, 5}, WALL_LEFT},
		{"right", mgl64.Vec2{9.5, 5}, WALL_RIGHT},
		{"bottom", mgl64.Vec2{5, 0.2}, WALL_BOTTOM},
		{"top", mgl64.Vec2{5, 9.9}, WALL_TOP},
		{"bottom left corner", mgl64.Vec2{0.5, 0.5}, WALL_LEFT | WALL_BOTTOM},
		{"top right corner", mgl64.Vec2{9.5, 10.5}, WALL_RIGHT | WALL_TOP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createParticle(0, tt.position, mgl64.Vec2{}, 1)

			contact, ok := CollideWalls(p, region)
			if ok != (tt.walls != 0) {
				t.Fatalf("CollideWalls() = %v, want %v", ok, tt.walls != 0)
			}
			if contact.Walls != tt.walls {
				t.Errorf("Walls = %b, want %b", contact.Walls, tt.walls)
			}
		})
	}
}

func TestWallConstraint_Solve_Unscaled(t *testing.T) {
	region := actor.Region{Width: 10, Height: 10}
	p := createParticle(0, mgl64.Vec2{0.5, 5}, mgl64.Vec2{-10, 0}, 1)

	contact, ok := CollideWalls(p, region)
	if !ok {
		t.Fatal("expected a wall collision")
	}
	contact.Solve()

	if p.Position.X() != p.Radius {
		t.Errorf("Position.X = %v, want radius %v", p.Position.X(), p.Radius)
	}
	// walls ignore restitution
	if p.Velocity.X() != 10 {
		t.Errorf("Velocity.X = %v, want 10", p.Velocity.X())
	}
	if p.Velocity.Y() != 0 || p.Position.Y() != 5 {
		t.Errorf("Y axis changed: pos %v vel %v", p.Position, p.Velocity)
	}
}

func TestWallConstraint_Solve_Corner(t *testing.T) {
	region := actor.Region{Width: 10, Height: 8}
	p := createParticle(0, mgl64.Vec2{9.8, 7.9}, mgl64.Vec2{3, 4}, 0.5)

	contact, ok := CollideWalls(p, region)
	if !ok {
		t.Fatal("expected a wall collision")
	}
	contact.Solve()

	if !p.Position.ApproxEqual(mgl64.Vec2{9.5, 7.5}) {
		t.Errorf("Position = %v, want (9.5, 7.5)", p.Position)
	}
	if p.Velocity != (mgl64.Vec2{-3, -4}) {
		t.Errorf("Velocity = %v, want (-3, -4)", p.Velocity)
	}
	if !region.Contains(p.Position, p.Radius) {
		t.Errorf("particle %v not contained after Solve", p.Position)
	}
}

func TestWallConstraint_Solve_MovingAway(t *testing.T) {
	region := actor.Region{Width: 10, Height: 10}
	// already moving back inside, the component is still mirrored
	p := createParticle(0, mgl64.Vec2{0.5, 5}, mgl64.Vec2{2, 0}, 1)

	contact, _ := CollideWalls(p, region)
	contact.Solve()

	if p.Velocity.X() != -2 {
		t.Errorf("Velocity.X = %v, want -2", p.Velocity.X())
	}
}
