package graph

import (
	"github.com/san-kum/dsanim/internal/anim"
	"github.com/san-kum/dsanim/internal/element"
	"github.com/san-kum/dsanim/internal/render"
)

// EdgePaint is the stroke used for edges.
var EdgePaint = render.StrokeOnly(render.Gray(64))

// Edge is a spring between two nodes.
type Edge struct {
	A, B       *element.Leaf
	RestLength float64
	Stiffness  float64
	Paint      render.Paint

	removed bool
}

func NewEdge(a, b *element.Leaf, restLength, stiffness float64) *Edge {
	return &Edge{A: a, B: b, RestLength: restLength, Stiffness: stiffness, Paint: EdgePaint}
}

func (e *Edge) IncidentTo(n *element.Leaf) bool { return e.A == n || e.B == n }

// Other returns the endpoint opposite n.
func (e *Edge) Other(n *element.Leaf) *element.Leaf {
	if e.A == n {
		return e.B
	}
	return e.A
}

// Step pulls the endpoints together when stretched and apart when compressed.
func (e *Edge) Step() {
	a, b := e.A.Body, e.B.Body
	d := b.Position.Sub(a.Position)
	stretch := d.Length() - e.RestLength
	impulse := d.Normalize().Scale(e.Stiffness * stretch)
	a.Velocity = a.Velocity.Add(impulse)
	b.Velocity = b.Velocity.Sub(impulse)
}

func (e *Edge) Draw(s render.Surface) {
	if style, ok := e.Paint.Apply(anim.MaxAlpha); ok {
		s.SetStyle(style)
	}
	s.Line(e.A.Body.Position, e.B.Body.Position)
}

func (e *Edge) Removed() bool { return e.removed }
