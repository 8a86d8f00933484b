package physics

import (
	"fmt"

	"github.com/san-kum/dsanim/internal/vmath"
)

type Overlap int8

const (
	Outside  Overlap = -1
	Boundary Overlap = 0
	Inside   Overlap = 1
)

func (o Overlap) String() string {
	switch o {
	case Outside:
		return "outside"
	case Boundary:
		return "boundary"
	case Inside:
		return "inside"
	}
	return fmt.Sprintf("Overlap(%d)", int8(o))
}

// CircularArea is a stateless circular boundary. It never owns the bodies it corrects.
type CircularArea struct {
	Center vmath.Vec2
	Radius float64
}

func NewCircularArea(center vmath.Vec2, radius float64) CircularArea {
	return CircularArea{Center: center, Radius: radius}
}

func (a CircularArea) Overlap(b *Body) Overlap {
	dist := b.Position.Dist(a.Center)
	r := b.Radius()
	if dist+r <= a.Radius {
		return Inside
	}
	if dist >= a.Radius+r {
		return Outside
	}
	return Boundary
}

// KeepIn pushes a body that is not fully inside back onto the circumference, offset
// inward by its radius, and bounces it off the inward normal.
func (a CircularArea) KeepIn(b *Body, restitution float64) {
	if a.Overlap(b) == Inside {
		return
	}
	a.placeOnCircumference(b, -b.Radius())
	normal := a.Center.Sub(b.Position).Normalize()
	b.Bounce(normal, restitution)
}

// KeepOut pushes a body that is not fully outside onto the circumference, offset
// outward by its radius, and bounces it off the outward normal.
func (a CircularArea) KeepOut(b *Body, restitution float64) {
	if a.Overlap(b) == Outside {
		return
	}
	a.placeOnCircumference(b, b.Radius())
	normal := b.Position.Sub(a.Center).Normalize()
	b.Bounce(normal, restitution)
}

func (a CircularArea) placeOnCircumference(b *Body, offset float64) {
	dir := b.Position.Sub(a.Center).Normalize()
	if dir == (vmath.Vec2{}) {
		dir = vmath.V(1, 0)
	}
	b.Position = a.Center.Add(dir.Scale(a.Radius + offset))
}
