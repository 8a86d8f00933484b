package physics

import "github.com/san-kum/dsanim/internal/vmath"

// MinAttractDistanceSq is the squared-distance floor used by Attract.
const MinAttractDistanceSq = 1.0

type Kinematic struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
}

func (k *Kinematic) Step() { k.Position = k.Position.Add(k.Velocity) }

// Bounce reflects the velocity component along normal, scaled by (1+restitution).
// restitution 0 cancels the normal component, 1 mirrors it, larger values inject energy.
func (k *Kinematic) Bounce(normal vmath.Vec2, restitution float64) {
	vn := -k.Velocity.Dot(normal)
	k.Velocity = k.Velocity.Add(normal.Scale((1 + restitution) * vn))
}

type Body struct {
	Kinematic
	Size float64

	hasFriction  bool
	deceleration float64
}

func NewBody(size float64) *Body {
	return &Body{Size: size, deceleration: 1}
}

func (b *Body) SetPosition(x, y float64)   { b.Position = vmath.V(x, y) }
func (b *Body) SetVelocity(vx, vy float64) { b.Velocity = vmath.V(vx, vy) }

// Radius is half the body size.
func (b *Body) Radius() float64 { return 0.5 * b.Size }

// SetFriction enables a per-tick velocity decay of c; c == 0 disables it.
func (b *Body) SetFriction(c float64) {
	if c == 0 {
		b.hasFriction = false
		b.deceleration = 1
		return
	}
	b.hasFriction = true
	b.deceleration = 1 - c
}

func (b *Body) Friction() (float64, bool) { return 1 - b.deceleration, b.hasFriction }

func (b *Body) Step() {
	b.Kinematic.Step()
	if b.hasFriction {
		b.Velocity = b.Velocity.Scale(b.deceleration)
	}
}

func (b *Body) Accelerate(dvx, dvy float64) {
	b.Velocity = b.Velocity.Add(vmath.V(dvx, dvy))
}

// Attract applies a symmetric inverse-square impulse between b and other.
// A negative factor repels. The squared distance is floored at MinAttractDistanceSq,
// and coincident bodies receive no impulse since their direction is undefined.
func (b *Body) Attract(other *Body, factor float64) {
	d := other.Position.Sub(b.Position)
	distSq := d.LengthSq()
	if distSq < MinAttractDistanceSq {
		distSq = MinAttractDistanceSq
	}
	impulse := d.Normalize().Scale(factor / distSq)
	b.Velocity = b.Velocity.Add(impulse)
	other.Velocity = other.Velocity.Sub(impulse)
}

// Launch sets a velocity that carries the body from its position to target in exactly
// ticks steps while a constant per-tick acceleration gravity is added after each step.
func (b *Body) Launch(target vmath.Vec2, ticks uint, gravity vmath.Vec2) {
	if ticks == 0 {
		b.Position = target
		return
	}
	t := float64(ticks)
	drift := gravity.Scale(0.5 * (t - 1))
	b.Velocity = target.Sub(b.Position).Scale(1 / t).Sub(drift)
}
