package element

import (
	"github.com/san-kum/dsanim/internal/anim"
	"github.com/san-kum/dsanim/internal/physics"
	"github.com/san-kum/dsanim/internal/render"
	"github.com/san-kum/dsanim/internal/sprite"
	"github.com/san-kum/dsanim/internal/vmath"
)

// Composite groups child elements. Children are positioned relative to the composite's
// body once Movable is set; before that the body is ignored when drawing.
type Composite struct {
	lifecycle

	ID      uint64
	Body    *physics.Body
	Movable bool

	children *sprite.List[Element]
}

func NewComposite(id uint64) *Composite {
	return &Composite{
		ID:       id,
		Body:     physics.NewBody(0),
		children: sprite.NewList[Element](),
	}
}

func (c *Composite) Add(e Element) { c.children.Push(e) }
func (c *Composite) Len() int      { return c.children.Len() }

func (c *Composite) Step() {
	c.children.Step()
	c.Body.Step()
	c.life.Step()
}

func (c *Composite) Draw(s render.Surface) { c.drawWithAlpha(s, anim.MaxAlpha) }

func (c *Composite) drawWithAlpha(s render.Surface, parentAlpha float64) {
	if c.Movable {
		s.Translate(c.Body.Position)
		defer s.Translate(c.Body.Position.Neg())
	}
	alpha := compose(c.life.Alpha(), parentAlpha)
	for _, child := range c.children.All() {
		child.drawWithAlpha(s, alpha)
	}
}

// Leaves flattens the tree into its leaf elements, depth first in child order.
func (c *Composite) Leaves() []*Leaf {
	var out []*Leaf
	for _, child := range c.children.All() {
		switch e := child.(type) {
		case *Leaf:
			out = append(out, e)
		case *Composite:
			out = append(out, e.Leaves()...)
		}
	}
	return out
}

// Center returns the center of the bounding box of all leaf positions,
// in the composite's local frame. It is the zero vector without leaves.
func (c *Composite) Center() vmath.Vec2 {
	leaves := c.Leaves()
	if len(leaves) == 0 {
		return vmath.Vec2{}
	}
	lo, hi := leaves[0].Body.Position, leaves[0].Body.Position
	for _, l := range leaves[1:] {
		p := l.Body.Position
		lo = vmath.V(min(lo.X, p.X), min(lo.Y, p.Y))
		hi = vmath.V(max(hi.X, p.X), max(hi.Y, p.Y))
	}
	return lo.Lerp(hi, 0.5)
}
