package visualizer

import (
	"github.com/san-kum/dsanim/internal/element"
	"github.com/san-kum/dsanim/internal/physics"
	"github.com/san-kum/dsanim/internal/render"
	"github.com/san-kum/dsanim/internal/vmath"
)

var RegionPaint = render.StrokeAndFill(render.Gray(128), render.GrayA(128, 32))

// Region is a circular set boundary with its own membership. Members are kept
// inside the circle and everything else is kept out.
type Region struct {
	Name  string
	Area  physics.CircularArea
	Paint render.Paint

	members map[*element.Leaf]struct{}
}

func NewRegion(name string, center vmath.Vec2, diameter float64) *Region {
	return &Region{
		Name:    name,
		Area:    physics.NewCircularArea(center, 0.5*diameter),
		Paint:   RegionPaint,
		members: make(map[*element.Leaf]struct{}),
	}
}

func (r *Region) Len() int                                { return len(r.members) }
func (r *Region) Has(l *element.Leaf) bool                { _, ok := r.members[l]; return ok }
func (r *Region) Add(l *element.Leaf)                     { r.members[l] = struct{}{} }
func (r *Region) Delete(l *element.Leaf)                  { delete(r.members, l) }
func (r *Region) Overlap(l *element.Leaf) physics.Overlap { return r.Area.Overlap(l.Body) }

// Join adds l when it is not entirely outside and reports whether it did.
func (r *Region) Join(l *element.Leaf) bool {
	if r.Overlap(l) < physics.Boundary {
		return false
	}
	r.Add(l)
	return true
}

// Constrain applies elastic containment to every leaf in ls.
func (r *Region) Constrain(ls []*element.Leaf) {
	for _, l := range ls {
		if r.Has(l) {
			r.Area.KeepIn(l.Body, 1)
		} else {
			r.Area.KeepOut(l.Body, 1)
		}
	}
}

func (r *Region) Draw(s render.Surface) {
	if style, ok := r.Paint.Apply(255); ok {
		s.SetStyle(style)
	}
	s.Circle(r.Area.Center, 2*r.Area.Radius)
}
