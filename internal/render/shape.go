package render

import "github.com/san-kum/dsanim/internal/vmath"

type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeRectGrid
	ShapeGroup
)

// Shape is a closed set of drawable primitives interpreted by DrawShape.
type Shape struct {
	Kind ShapeKind
	// Cells are rectangle centers relative to the body position (ShapeRectGrid).
	Cells []vmath.Vec2
	// CellSize is the width and height of every cell (ShapeRectGrid).
	CellSize vmath.Vec2
	Parts    []Shape
}

// Circle draws a disc whose diameter is the body size.
func Circle() Shape { return Shape{Kind: ShapeCircle} }

func RectGrid(cells []vmath.Vec2, w, h float64) Shape {
	return Shape{Kind: ShapeRectGrid, Cells: cells, CellSize: vmath.V(w, h)}
}

func Group(parts ...Shape) Shape { return Shape{Kind: ShapeGroup, Parts: parts} }

// Surface is the drawing collaborator supplied by the host.
type Surface interface {
	SetStyle(s Style)
	Circle(center vmath.Vec2, diameter float64)
	Rect(center vmath.Vec2, w, h float64)
	Line(a, b vmath.Vec2)
	Text(at vmath.Vec2, s string)
	// Translate shifts the origin of subsequent calls by d.
	Translate(d vmath.Vec2)
}

// DrawShape renders shape at pos for a body of the given size.
func DrawShape(s Surface, shape Shape, pos vmath.Vec2, size float64) {
	switch shape.Kind {
	case ShapeCircle:
		s.Circle(pos, size)
	case ShapeRectGrid:
		for _, c := range shape.Cells {
			s.Rect(pos.Add(c), shape.CellSize.X, shape.CellSize.Y)
		}
	case ShapeGroup:
		for _, p := range shape.Parts {
			DrawShape(s, p, pos, size)
		}
	}
}

// Draw applies paint at alpha and renders shape.
func Draw(s Surface, shape Shape, paint Paint, pos vmath.Vec2, size, alpha float64) {
	if style, ok := paint.Apply(alpha); ok {
		s.SetStyle(style)
	}
	DrawShape(s, shape, pos, size)
}
