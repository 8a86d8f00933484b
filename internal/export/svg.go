package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/san-kum/dsanim/internal/render"
	"github.com/san-kum/dsanim/internal/viz"
	"github.com/san-kum/dsanim/internal/vmath"
)

// SVG is a render.Surface that records one frame as an SVG document. Unlike
// the terminal canvas it keeps every alpha step as fill/stroke opacity.
type SVG struct {
	side       float64
	background render.Color
	origin     vmath.Vec2
	style      render.Style
	body       strings.Builder
}

var _ render.Surface = (*SVG)(nil)

// NewSVG starts a square document of the given side on a solid background.
func NewSVG(side float64, background render.Color) *SVG {
	return &SVG{side: side, background: background}
}

func (s *SVG) SetStyle(st render.Style) { s.style = st }
func (s *SVG) Translate(d vmath.Vec2)   { s.origin = s.origin.Add(d) }

// paint returns the presentation attributes of the current style, or ok=false
// when nothing would show.
func (s *SVG) paint(fill bool) (string, bool) {
	st := s.style
	if !st.Visible() {
		return "", false
	}
	var b strings.Builder
	if fill && st.HasFill && st.Fill.A > 0 {
		fmt.Fprintf(&b, ` fill="%s"`, st.Fill.Hex())
		if st.Fill.A < 255 {
			fmt.Fprintf(&b, ` fill-opacity="%.3f"`, st.Fill.Opacity())
		}
	} else {
		b.WriteString(` fill="none"`)
	}
	if st.HasStroke && st.Stroke.A > 0 {
		fmt.Fprintf(&b, ` stroke="%s"`, st.Stroke.Hex())
		if st.Stroke.A < 255 {
			fmt.Fprintf(&b, ` stroke-opacity="%.3f"`, st.Stroke.Opacity())
		}
	}
	return b.String(), true
}

func (s *SVG) Circle(center vmath.Vec2, diameter float64) {
	attrs, ok := s.paint(true)
	if !ok {
		return
	}
	p := center.Add(s.origin)
	fmt.Fprintf(&s.body, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\"%s/>\n", p.X, p.Y, diameter/2, attrs)
}

func (s *SVG) Rect(center vmath.Vec2, w, h float64) {
	attrs, ok := s.paint(true)
	if !ok {
		return
	}
	p := center.Add(s.origin)
	fmt.Fprintf(&s.body, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\"%s/>\n", p.X-w/2, p.Y-h/2, w, h, attrs)
}

func (s *SVG) Line(a, b vmath.Vec2) {
	if !s.style.HasStroke || s.style.Stroke.A == 0 {
		return
	}
	attrs, _ := s.paint(false)
	pa, pb := a.Add(s.origin), b.Add(s.origin)
	fmt.Fprintf(&s.body, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\"%s/>\n", pa.X, pa.Y, pb.X, pb.Y, attrs)
}

func (s *SVG) Text(at vmath.Vec2, text string) {
	attrs, ok := s.paint(true)
	if !ok {
		return
	}
	p := at.Add(s.origin)
	fmt.Fprintf(&s.body, "<text x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\" font-family=\"monospace\" font-size=\"%.1f\"%s>%s</text>\n",
		p.X, p.Y, s.side/40, attrs, html.EscapeString(text))
}

// Reset drops everything drawn so far.
func (s *SVG) Reset() {
	s.body.Reset()
	s.origin = vmath.Vec2{}
	s.style = render.Style{}
}

func (s *SVG) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.side, s.side, s.side, s.side, s.background.Hex())
	b.WriteString(s.body.String())
	b.WriteString("</svg>\n")
	return b.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// Braille dot-to-bit mapping
var pixelMap = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// CanvasToSVG converts a braille canvas to SVG, one dot per lit sub-pixel.
// Labels are dropped.
func CanvasToSVG(canvas *viz.Canvas, scale float64, dot, background render.Color) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, background.Hex(), dot.Hex())

	dotRadius := scale * 0.4
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			pattern := int(canvas.Grid[row][col] - 0x2800)
			if pattern <= 0 {
				continue
			}
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := range 4 {
				for dx := range 2 {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius)
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SeriesToSVG plots series as polylines sharing a [0, ymax] vertical axis.
// Series shorter than two samples are skipped.
func SeriesToSVG(series map[string][]float64, names []string, ymax float64, width, height int, colors []string) string {
	if ymax <= 0 {
		ymax = 1
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height)

	for i, name := range names {
		points := series[name]
		if len(points) < 2 {
			continue
		}
		color := "#202020"
		if len(colors) > 0 {
			color = colors[i%len(colors)]
		}
		fmt.Fprintf(&sb, `<path id="%s" fill="none" stroke="%s" stroke-width="1.5" d="M`, html.EscapeString(name), color)
		for j, v := range points {
			x := float64(j) / float64(len(points)-1) * float64(width)
			y := float64(height) - vmath.Clamp(v/ymax, 0, 1)*float64(height)
			if j == 0 {
				fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
