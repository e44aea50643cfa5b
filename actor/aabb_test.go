package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// AABB Overlap Tests
// =============================================================================

func TestAABBOverlaps(t *testing.T) {
	tests := []struct {
		name          string
		aabb1         AABB
		aabb2         AABB
		shouldOverlap bool
	}{
		{
			name:          "Separated on X axis",
			aabb1:         AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}},
			aabb2:         AABB{Min: mgl64.Vec2{2, 0}, Max: mgl64.Vec2{3, 1}},
			shouldOverlap: false,
		},
		{
			name:          "Separated on Y axis",
			aabb1:         AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}},
			aabb2:         AABB{Min: mgl64.Vec2{0, -2}, Max: mgl64.Vec2{1, -1}},
			shouldOverlap: false,
		},
		{
			name:          "Partial overlap",
			aabb1:         AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{2, 2}},
			aabb2:         AABB{Min: mgl64.Vec2{1, 1}, Max: mgl64.Vec2{3, 3}},
			shouldOverlap: true,
		},
		{
			name:          "Containment",
			aabb1:         AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{10, 10}},
			aabb2:         AABB{Min: mgl64.Vec2{2, 2}, Max: mgl64.Vec2{3, 3}},
			shouldOverlap: true,
		},
		{
			name:          "Edge touching",
			aabb1:         AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}},
			aabb2:         AABB{Min: mgl64.Vec2{1, 0}, Max: mgl64.Vec2{2, 1}},
			shouldOverlap: true,
		},
		{
			name:          "Corner touching",
			aabb1:         AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}},
			aabb2:         AABB{Min: mgl64.Vec2{1, 1}, Max: mgl64.Vec2{2, 2}},
			shouldOverlap: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.aabb1.Overlaps(tt.aabb2); got != tt.shouldOverlap {
				t.Errorf("Overlaps() = %v, want %v", got, tt.shouldOverlap)
			}
			// Test symmetry
			if got := tt.aabb2.Overlaps(tt.aabb1); got != tt.shouldOverlap {
				t.Errorf("Overlaps() = %v, want %v (symmetry test)", got, tt.shouldOverlap)
			}
		})
	}
}

func TestAABBContainsPoint(t *testing.T) {
	aabb := AABB{Min: mgl64.Vec2{-1, -1}, Max: mgl64.Vec2{1, 1}}

	tests := []struct {
		name   string
		point  mgl64.Vec2
		inside bool
	}{
		{"center", mgl64.Vec2{0, 0}, true},
		{"corner", mgl64.Vec2{1, -1}, true},
		{"edge midpoint", mgl64.Vec2{0, 1}, true},
		{"outside X", mgl64.Vec2{1.01, 0}, false},
		{"outside Y", mgl64.Vec2{0, -1.01}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := aabb.ContainsPoint(tt.point); got != tt.inside {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.inside)
			}
		})
	}
}

// =============================================================================
// Closest Point Tests
// =============================================================================

func TestAABBClosestPoint(t *testing.T) {
	aabb := AABB{Min: mgl64.Vec2{8, 8}, Max: mgl64.Vec2{12, 12}}

	tests := []struct {
		name  string
		point mgl64.Vec2
		want  mgl64.Vec2
	}{
		{"left of box", mgl64.Vec2{7.5, 10}, mgl64.Vec2{8, 10}},
		{"right of box", mgl64.Vec2{13, 9}, mgl64.Vec2{12, 9}},
		{"below box", mgl64.Vec2{10, 5}, mgl64.Vec2{10, 8}},
		{"above box", mgl64.Vec2{11, 20}, mgl64.Vec2{11, 12}},
		{"diagonal corner", mgl64.Vec2{6, 14}, mgl64.Vec2{8, 12}},
		{"inside box", mgl64.Vec2{9, 11}, mgl64.Vec2{9, 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := aabb.ClosestPoint(tt.point)
			if !got.ApproxEqual(tt.want) {
				t.Errorf("ClosestPoint(%v) = %v, want %v", tt.point, got, tt.want)
			}
			if !aabb.ContainsPoint(got) {
				t.Errorf("ClosestPoint(%v) = %v is outside the box", tt.point, got)
			}
		})
	}
}
