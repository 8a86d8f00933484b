package physics

import (
	"testing"

	"github.com/san-kum/dsanim/internal/vmath"
)

func TestOverlapClassification(t *testing.T) {
	area := NewCircularArea(vmath.V(0, 0), 50)
	tests := []struct {
		dist float64
		want Overlap
	}{
		{40, Inside},
		{45, Inside},
		{48, Boundary},
		{55, Outside},
		{60, Outside},
	}
	for _, tt := range tests {
		b := NewBody(10)
		b.SetPosition(tt.dist, 0)
		if got := area.Overlap(b); got != tt.want {
			t.Errorf("distance %.0f: got %s, want %s", tt.dist, got, tt.want)
		}
	}
}

func TestKeepInIdempotent(t *testing.T) {
	area := NewCircularArea(vmath.V(10, -10), 50)
	starts := []vmath.Vec2{
		vmath.V(100, 0), vmath.V(-80, 30), vmath.V(10, 38), vmath.V(12, -61), vmath.V(10, -10),
	}
	for _, p := range starts {
		b := NewBody(10)
		b.Position = p
		b.SetVelocity(3, -2)

		area.KeepIn(b, 1)
		if got := area.Overlap(b); got == Outside {
			t.Errorf("start %v: body outside after KeepIn", p)
		}
		pos, vel := b.Position, b.Velocity
		area.KeepIn(b, 1)
		if area.Overlap(b) == Outside {
			t.Errorf("start %v: second KeepIn left body outside", p)
		}
		if area.Overlap(b) == Inside && (b.Position != pos || b.Velocity != vel) {
			t.Errorf("start %v: KeepIn on a contained body must be a no-op", p)
		}
	}
}

func TestKeepOutIdempotent(t *testing.T) {
	area := NewCircularArea(vmath.V(0, 0), 50)
	starts := []vmath.Vec2{
		vmath.V(0, 0), vmath.V(20, 0), vmath.V(-48, 10), vmath.V(0, 52),
	}
	for _, p := range starts {
		b := NewBody(10)
		b.Position = p
		b.SetVelocity(-1, 1)

		area.KeepOut(b, 1)
		if area.Overlap(b) == Inside {
			t.Errorf("start %v: body inside after KeepOut", p)
		}
		area.KeepOut(b, 1)
		if area.Overlap(b) == Inside {
			t.Errorf("start %v: second KeepOut left body inside", p)
		}
	}
}

func TestKeepInBouncesInward(t *testing.T) {
	area := NewCircularArea(vmath.V(0, 0), 50)
	b := NewBody(10)
	b.SetPosition(60, 0)
	b.SetVelocity(5, 0)

	area.KeepIn(b, 1)

	if b.Position.Dist(vmath.V(45, 0)) > 1e-9 {
		t.Errorf("expected body at (45,0), got %v", b.Position)
	}
	if b.Velocity.X >= 0 {
		t.Errorf("expected velocity reflected inward, got %v", b.Velocity)
	}

	c := NewBody(10)
	c.SetPosition(60, 0)
	c.SetVelocity(5, 0)
	area.KeepIn(c, 0)
	if c.Velocity.X != 0 {
		t.Errorf("restitution 0 should cancel the radial component, got %v", c.Velocity)
	}
}
