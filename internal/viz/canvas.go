package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/dsanim/internal/render"
	"github.com/san-kum/dsanim/internal/vmath"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// MinAlpha is the faintest component a Canvas still plots. Braille dots have
// no intensity, so anything more transparent is dropped.
const MinAlpha = 48

// Canvas is a braille grid that also implements render.Surface. World
// coordinates are scaled onto the (Width*2) x (Height*4) sub-pixel grid.
type Canvas struct {
	Width, Height int
	Grid          [][]rune

	labels [][]rune
	scale  float64
	origin vmath.Vec2
	style  render.Style
}

var _ render.Surface = (*Canvas)(nil)

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		labels: make([][]rune, h),
		scale:  1,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.labels[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Fit scales a square world of the given side onto the largest square of
// sub-pixels the grid holds.
func (c *Canvas) Fit(side float64) {
	if side <= 0 {
		return
	}
	c.scale = math.Min(float64(c.Width*2), float64(c.Height*4)) / side
}

// Scale returns sub-pixels per world unit.
func (c *Canvas) Scale() float64 { return c.scale }

// Set sets a pixel at (x, y) in sub-pixel coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] &= ^rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

// IsSet reports whether the sub-pixel at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the grid, the labels and the origin.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.labels[i][j] = 0
		}
	}
	c.origin = vmath.Vec2{}
	c.style = render.Style{}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) SetStyle(s render.Style) { c.style = s }
func (c *Canvas) Translate(d vmath.Vec2)  { c.origin = c.origin.Add(d) }

func (c *Canvas) stroked() bool { return c.style.HasStroke && c.style.Stroke.A >= MinAlpha }
func (c *Canvas) filled() bool  { return c.style.HasFill && c.style.Fill.A >= MinAlpha }

func (c *Canvas) project(p vmath.Vec2) (float64, float64) {
	p = p.Add(c.origin)
	return p.X * c.scale, p.Y * c.scale
}

func (c *Canvas) Circle(center vmath.Vec2, diameter float64) {
	if !c.stroked() && !c.filled() {
		return
	}
	cx, cy := c.project(center)
	r := diameter * c.scale / 2
	if r < 1 {
		c.Set(round(cx), round(cy))
		return
	}
	if c.filled() {
		for y := int(math.Floor(cy - r)); y <= int(math.Ceil(cy+r)); y++ {
			for x := int(math.Floor(cx - r)); x <= int(math.Ceil(cx+r)); x++ {
				dx, dy := float64(x)-cx, float64(y)-cy
				if dx*dx+dy*dy <= r*r {
					c.Set(x, y)
				}
			}
		}
	}
	if c.stroked() {
		n := max(8, int(math.Ceil(2*math.Pi*r)))
		for i := range n {
			th := 2 * math.Pi * float64(i) / float64(n)
			c.Set(round(cx+r*math.Cos(th)), round(cy+r*math.Sin(th)))
		}
	}
}

func (c *Canvas) Rect(center vmath.Vec2, w, h float64) {
	if !c.stroked() && !c.filled() {
		return
	}
	cx, cy := c.project(center)
	hw, hh := w*c.scale/2, h*c.scale/2
	x0, y0 := round(cx-hw), round(cy-hh)
	x1, y1 := round(cx+hw), round(cy+hh)
	if c.filled() {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				c.Set(x, y)
			}
		}
		return
	}
	c.DrawLine(x0, y0, x1, y0)
	c.DrawLine(x1, y0, x1, y1)
	c.DrawLine(x1, y1, x0, y1)
	c.DrawLine(x0, y1, x0, y0)
}

func (c *Canvas) Line(a, b vmath.Vec2) {
	if !c.stroked() {
		return
	}
	ax, ay := c.project(a)
	bx, by := c.project(b)
	c.DrawLine(round(ax), round(ay), round(bx), round(by))
}

// Text writes s centered on at. Labels sit on top of the dots in their cells.
func (c *Canvas) Text(at vmath.Vec2, s string) {
	if !c.filled() && !c.stroked() {
		return
	}
	x, y := c.project(at)
	row := round(y) / 4
	runes := []rune(s)
	col := round(x)/2 - len(runes)/2
	if row < 0 || row >= c.Height {
		return
	}
	for i, r := range runes {
		if j := col + i; j >= 0 && j < c.Width {
			c.labels[row][j] = r
		}
	}
}

// Label returns the label rune at a cell, or 0.
func (c *Canvas) Label(col, row int) rune {
	if row < 0 || row >= c.Height || col < 0 || col >= c.Width {
		return 0
	}
	return c.labels[row][col]
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			if l := c.labels[i][j]; l != 0 {
				r = l
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render colors dots and labels with the given styles, batching runs of the
// same layer per row.
func (c *Canvas) Render(dots, labels lipgloss.Style) string {
	var b strings.Builder
	for i, row := range c.Grid {
		var run []rune
		label := false
		flush := func() {
			if len(run) == 0 {
				return
			}
			if label {
				b.WriteString(labels.Render(string(run)))
			} else {
				b.WriteString(dots.Render(string(run)))
			}
			run = run[:0]
		}
		for j, r := range row {
			l := c.labels[i][j]
			if (l != 0) != label {
				flush()
				label = l != 0
			}
			if label {
				r = l
			}
			run = append(run, r)
		}
		flush()
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func round(f float64) int { return int(math.Round(f)) }

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
