package render

import (
	"fmt"
	"math"

	"github.com/san-kum/dsanim/internal/vmath"
)

type Color struct {
	R, G, B, A uint8
}

func Gray(v uint8) Color     { return Color{v, v, v, 255} }
func GrayA(v, a uint8) Color { return Color{v, v, v, a} }

// Fade scales the color's own alpha by alpha/255 using the integer alpha steps 0..255.
func (c Color) Fade(alpha float64) Color {
	step := math.Floor(vmath.Clamp(alpha, 0, 255))
	c.A = uint8(float64(c.A) * step / 255)
	return c
}

func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// Opacity returns A as a fraction in [0, 1].
func (c Color) Opacity() float64 { return float64(c.A) / 255 }

type PaintKind uint8

const (
	PaintStrokeAndFill PaintKind = iota
	PaintFillOnly
	PaintStrokeOnly
	PaintNone
)

// Paint is the stroke/fill combination of a shape.
type Paint struct {
	Kind   PaintKind
	Stroke Color
	Fill   Color
}

func StrokeAndFill(stroke, fill Color) Paint {
	return Paint{Kind: PaintStrokeAndFill, Stroke: stroke, Fill: fill}
}
func FillOnly(fill Color) Paint     { return Paint{Kind: PaintFillOnly, Fill: fill} }
func StrokeOnly(stroke Color) Paint { return Paint{Kind: PaintStrokeOnly, Stroke: stroke} }
func NoPaint() Paint                { return Paint{Kind: PaintNone} }

// Style is the resolved pen state handed to a Surface.
type Style struct {
	Stroke    Color
	Fill      Color
	HasStroke bool
	HasFill   bool
}

// Apply resolves the paint at the given opacity. ok is false for PaintNone,
// in which case the surface's current style is left as it is.
func (p Paint) Apply(alpha float64) (s Style, ok bool) {
	switch p.Kind {
	case PaintStrokeAndFill:
		return Style{Stroke: p.Stroke.Fade(alpha), Fill: p.Fill.Fade(alpha), HasStroke: true, HasFill: true}, true
	case PaintFillOnly:
		return Style{Fill: p.Fill.Fade(alpha), HasFill: true}, true
	case PaintStrokeOnly:
		return Style{Stroke: p.Stroke.Fade(alpha), HasStroke: true}, true
	}
	return Style{}, false
}

// Visible reports whether anything drawn with s would show.
func (s Style) Visible() bool {
	return (s.HasStroke && s.Stroke.A > 0) || (s.HasFill && s.Fill.A > 0)
}
