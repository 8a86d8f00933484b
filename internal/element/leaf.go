package element

import (
	"github.com/san-kum/dsanim/internal/anim"
	"github.com/san-kum/dsanim/internal/physics"
	"github.com/san-kum/dsanim/internal/render"
)

// DefaultPaint is the dark fill used for data particles.
var DefaultPaint = render.FillOnly(render.Gray(32))

type Leaf struct {
	lifecycle

	ID    uint64
	Body  *physics.Body
	Shape render.Shape
	Paint render.Paint
}

// NewLeaf returns a circular particle of the given size at the origin.
func NewLeaf(id uint64, size float64) *Leaf {
	return &Leaf{
		ID:    id,
		Body:  physics.NewBody(size),
		Shape: render.Circle(),
		Paint: DefaultPaint,
	}
}

func (l *Leaf) Step() {
	l.Body.Step()
	l.life.Step()
}

func (l *Leaf) Draw(s render.Surface) { l.drawWithAlpha(s, anim.MaxAlpha) }

func (l *Leaf) drawWithAlpha(s render.Surface, parentAlpha float64) {
	alpha := compose(l.life.Alpha(), parentAlpha)
	render.Draw(s, l.Shape, l.Paint, l.Body.Position, l.Body.Size, alpha)
}
