package physics

import (
	"math"
	"testing"

	"github.com/san-kum/dsanim/internal/vmath"
)

const eps = 1e-9

func TestKinematicStep(t *testing.T) {
	k := Kinematic{Position: vmath.V(1, 1), Velocity: vmath.V(2, -1)}
	k.Step()
	k.Step()
	if k.Position != vmath.V(5, -1) {
		t.Errorf("position after 2 steps = %v, want (5,-1)", k.Position)
	}
}

func TestBounceElastic(t *testing.T) {
	tests := []struct {
		name   string
		vel    vmath.Vec2
		normal vmath.Vec2
	}{
		{"head on", vmath.V(0, 3), vmath.V(0, -1)},
		{"oblique", vmath.V(2, 5), vmath.V(0, -1)},
		{"diagonal normal", vmath.V(4, -1), vmath.V(-1, 1).Normalize()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := Kinematic{Velocity: tt.vel}
			tangent := vmath.V(-tt.normal.Y, tt.normal.X)
			before := k.Velocity

			k.Bounce(tt.normal, 1)

			if got, want := k.Velocity.Dot(tt.normal), -before.Dot(tt.normal); math.Abs(got-want) > eps {
				t.Errorf("normal component = %f, want %f", got, want)
			}
			if got, want := k.Velocity.Dot(tangent), before.Dot(tangent); math.Abs(got-want) > eps {
				t.Errorf("tangent component = %f, want %f", got, want)
			}
			if math.Abs(k.Velocity.Length()-before.Length()) > eps {
				t.Errorf("speed changed: %f -> %f", before.Length(), k.Velocity.Length())
			}
		})
	}
}

func TestBounceInelastic(t *testing.T) {
	k := Kinematic{Velocity: vmath.V(3, 4)}
	k.Bounce(vmath.V(0, -1), 0)
	if math.Abs(k.Velocity.Y) > eps || k.Velocity.X != 3 {
		t.Errorf("inelastic bounce should cancel the normal component, got %v", k.Velocity)
	}
}

func TestFriction(t *testing.T) {
	b := NewBody(1)
	b.SetVelocity(10, 0)
	b.SetFriction(0.1)
	b.Step()
	if math.Abs(b.Velocity.X-9) > eps {
		t.Errorf("velocity after friction = %f, want 9", b.Velocity.X)
	}
	if c, ok := b.Friction(); !ok || math.Abs(c-0.1) > eps {
		t.Errorf("Friction() = %f, %v", c, ok)
	}

	b.SetFriction(0)
	b.Step()
	if math.Abs(b.Velocity.X-9) > eps {
		t.Errorf("friction 0 should disable decay, got %f", b.Velocity.X)
	}
}

func TestAttractSymmetric(t *testing.T) {
	a, b := NewBody(1), NewBody(1)
	a.SetPosition(0, 0)
	b.SetPosition(4, 0)

	a.Attract(b, 16)

	if math.Abs(a.Velocity.X-1) > eps || math.Abs(b.Velocity.X+1) > eps {
		t.Errorf("expected +1/-1 impulses, got %v and %v", a.Velocity, b.Velocity)
	}
	if sum := a.Velocity.Add(b.Velocity); sum.Length() > eps {
		t.Errorf("impulses should cancel, got %v", sum)
	}
}

func TestAttractRepelAndClamp(t *testing.T) {
	a, b := NewBody(1), NewBody(1)
	b.SetPosition(0.1, 0)

	a.Attract(b, -0.2)

	if a.Velocity.X >= 0 || b.Velocity.X <= 0 {
		t.Errorf("negative factor should push bodies apart, got %v and %v", a.Velocity, b.Velocity)
	}
	if math.Abs(a.Velocity.X+0.2) > eps {
		t.Errorf("distance should clamp to 1, got impulse %f", a.Velocity.X)
	}
}

func TestAttractCoincident(t *testing.T) {
	a, b := NewBody(1), NewBody(1)
	a.Attract(b, -5)
	if !a.Velocity.IsFinite() || !b.Velocity.IsFinite() {
		t.Fatal("coincident bodies produced non-finite velocity")
	}
}

func TestLaunchReachesTarget(t *testing.T) {
	gravity := vmath.V(0, 0.2)
	b := NewBody(1)
	b.SetPosition(-50, -120)
	target := vmath.V(0, -40)

	b.Launch(target, 30, gravity)
	for i := 0; i < 30; i++ {
		b.Step()
		b.Accelerate(gravity.X, gravity.Y)
	}

	if b.Position.Dist(target) > 1e-6 {
		t.Errorf("landed at %v, want %v", b.Position, target)
	}
}
