package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/dsanim/internal/render"
	"github.com/san-kum/dsanim/internal/vmath"
)

func solid() render.Style { return render.Style{Fill: render.Gray(0), HasFill: true} }
func outline() render.Style {
	return render.Style{Stroke: render.Gray(0), HasStroke: true}
}

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(3, 5)
	if !c.IsSet(3, 5) {
		t.Fatal("pixel not set")
	}
	if c.Grid[1][1] != 0x2800|0x20 {
		t.Errorf("cell = %U", c.Grid[1][1])
	}
	c.Unset(3, 5)
	if c.IsSet(3, 5) || c.Grid[1][1] != 0x2800 {
		t.Error("pixel not cleared")
	}
	c.Set(-1, 0)
	c.Set(100, 100)
}

func TestCanvasFit(t *testing.T) {
	c := NewCanvas(80, 40)
	c.Fit(640)
	if got := c.Scale(); got != 0.25 {
		t.Errorf("Scale() = %v, want 0.25", got)
	}
}

func TestCanvasShapes(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Fit(20)

	c.SetStyle(solid())
	c.Circle(vmath.V(10, 10), 6)
	if !c.IsSet(10, 10) || !c.IsSet(12, 10) {
		t.Error("filled circle missing pixels")
	}
	if c.IsSet(14, 10) {
		t.Error("filled circle overflows its radius")
	}

	c.Clear()
	c.SetStyle(outline())
	c.Rect(vmath.V(10, 10), 4, 4)
	if !c.IsSet(8, 8) || !c.IsSet(12, 12) {
		t.Error("rect corners missing")
	}
	if c.IsSet(10, 10) {
		t.Error("stroke-only rect should be hollow")
	}

	c.Clear()
	c.SetStyle(outline())
	c.Line(vmath.V(0, 0), vmath.V(5, 0))
	for x := 0; x <= 5; x++ {
		if !c.IsSet(x, 0) {
			t.Errorf("line missing pixel %d", x)
		}
	}
}

func TestCanvasSkipsFaintStyles(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Fit(20)
	c.SetStyle(render.Style{Fill: render.GrayA(0, MinAlpha-1), HasFill: true})
	c.Circle(vmath.V(10, 10), 6)
	c.Rect(vmath.V(10, 10), 4, 4)
	if strings.ContainsFunc(c.String(), func(r rune) bool { return r != 0x2800 && r != '\n' }) {
		t.Error("faint shapes should not be plotted")
	}
}

func TestCanvasTranslateAndText(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Fit(20)
	c.SetStyle(solid())

	c.Translate(vmath.V(2, 0))
	c.Circle(vmath.V(0, 0), 0.5)
	if !c.IsSet(2, 0) {
		t.Error("translate not applied")
	}
	c.Translate(vmath.V(-2, 0))

	c.Text(vmath.V(10, 10), "ab")
	if c.Label(4, 2) != 'a' || c.Label(5, 2) != 'b' {
		t.Errorf("labels = %q %q", c.Label(4, 2), c.Label(5, 2))
	}
	if !strings.Contains(c.String(), "ab") {
		t.Error("String() should overlay labels")
	}

	c.Clear()
	if c.Label(4, 2) != 0 {
		t.Error("Clear() should drop labels")
	}
	c.Circle(vmath.V(0, 0), 0.5)
	if c.IsSet(2, 0) {
		t.Error("Clear() should reset the origin")
	}
}
