package element

import (
	"math"
	"testing"

	"github.com/san-kum/dsanim/internal/anim"
	"github.com/san-kum/dsanim/internal/render"
	"github.com/san-kum/dsanim/internal/vmath"
)

func TestLeafStep(t *testing.T) {
	l := NewLeaf(1, 12)
	l.Body.SetVelocity(1, 2)
	l.Step()
	l.Step()

	if l.Body.Position != vmath.V(2, 4) {
		t.Errorf("position = %v, want (2,4)", l.Body.Position)
	}
	if l.ProperFrames() != 2 {
		t.Errorf("ProperFrames = %d, want 2", l.ProperFrames())
	}
}

func TestLeafDisappearRemoves(t *testing.T) {
	l := NewLeaf(1, 12)
	l.BeginDisappear(3)
	for i := 0; i < 4; i++ {
		l.Step()
	}
	if !l.Removed() || l.State() != anim.Removed {
		t.Errorf("leaf should be removed, state %s", l.State())
	}
}

func TestDrawDoesNotMutate(t *testing.T) {
	l := NewLeaf(1, 12)
	l.Body.SetVelocity(3, 3)
	l.BeginAppear(10)
	l.Step()

	pos, frames := l.Body.Position, l.ProperFrames()
	var rec render.Recorder
	l.Draw(&rec)
	l.Draw(&rec)

	if l.Body.Position != pos || l.ProperFrames() != frames {
		t.Error("Draw must not change simulation state")
	}
}

func TestCompositeAlphaCompositing(t *testing.T) {
	c := NewComposite(1)
	leaf := NewLeaf(2, 10)
	leaf.Paint = render.FillOnly(render.Gray(0))
	c.Add(leaf)

	c.BeginDisappear(10)
	for i := 0; i < 5; i++ {
		c.Step()
	}

	var rec render.Recorder
	c.Draw(&rec)
	if len(rec.Ops) != 1 {
		t.Fatalf("expected 1 op, got %d", len(rec.Ops))
	}
	want := render.Gray(0).Fade(c.Alpha() * leaf.Alpha() / 255)
	if got := rec.Ops[0].Style.Fill.A; got != want.A {
		t.Errorf("composited alpha = %d, want %d", got, want.A)
	}
	if leaf.State() != anim.Dormant {
		t.Errorf("child lifecycle must be independent, got %s", leaf.State())
	}
}

func TestCompositeMovableTranslates(t *testing.T) {
	c := NewComposite(1)
	leaf := NewLeaf(2, 10)
	leaf.Body.SetPosition(5, 0)
	c.Add(leaf)
	c.Body.SetPosition(0, 100)

	var rec render.Recorder
	c.Draw(&rec)
	if rec.Ops[0].Pos != vmath.V(5, 0) {
		t.Errorf("non-movable composite should not translate, got %v", rec.Ops[0].Pos)
	}

	rec.Reset()
	c.Movable = true
	c.Draw(&rec)
	c.Draw(&rec)
	if rec.Ops[0].Pos != vmath.V(5, 100) || rec.Ops[1].Pos != vmath.V(5, 100) {
		t.Errorf("movable composite should translate once per draw, got %v %v", rec.Ops[0].Pos, rec.Ops[1].Pos)
	}
}

func TestCompositeLeavesAndCenter(t *testing.T) {
	root := NewComposite(1)
	inner := NewComposite(2)
	a, b, d := NewLeaf(3, 1), NewLeaf(4, 1), NewLeaf(5, 1)
	a.Body.SetPosition(-10, 0)
	b.Body.SetPosition(10, 4)
	d.Body.SetPosition(0, -4)
	root.Add(a)
	inner.Add(b)
	inner.Add(d)
	root.Add(inner)

	leaves := root.Leaves()
	if len(leaves) != 3 || leaves[0] != a || leaves[1] != b || leaves[2] != d {
		t.Fatalf("unexpected leaves %v", leaves)
	}
	if c := root.Center(); math.Abs(c.X) > 1e-9 || math.Abs(c.Y) > 1e-9 {
		t.Errorf("Center = %v, want (0,0)", c)
	}
	if NewComposite(9).Center() != (vmath.Vec2{}) {
		t.Error("empty composite center should be zero")
	}
}
