package sim

import (
	"math"
	"testing"
)

func TestScale(t *testing.T) {
	ctx := NewSeeded(1280, 60, 1, nil)
	if ctx.Scale.UnitLength != 2 {
		t.Errorf("UnitLength = %v, want 2", ctx.Scale.UnitLength)
	}
	if math.Abs(ctx.Scale.UnitSpeed-2.0/60) > 1e-12 {
		t.Errorf("UnitSpeed = %v", ctx.Scale.UnitSpeed)
	}
	if ctx.Ticks(0.25) != 15 || ctx.Ticks(0.5) != 30 {
		t.Errorf("Ticks conversion wrong: %d %d", ctx.Ticks(0.25), ctx.Ticks(0.5))
	}
	g := ctx.Gravity()
	if g.X != 0 || math.Abs(g.Y-500*ctx.Scale.UnitSpeed/60) > 1e-12 {
		t.Errorf("Gravity = %v", g)
	}
}

func TestContextDefaults(t *testing.T) {
	ctx := NewContext(640, 0, nil, nil)
	if ctx.TickRate != DefaultTickRate {
		t.Errorf("TickRate = %v", ctx.TickRate)
	}
	if ctx.Logger == nil {
		t.Error("nil logger should fall back to a discard logger")
	}
}

func TestNextID(t *testing.T) {
	ctx := NewSeeded(640, 60, 1, nil)
	for want := uint64(1); want <= 5; want++ {
		if got := ctx.NextID(); got != want {
			t.Fatalf("NextID = %d, want %d", got, want)
		}
	}
}

func TestRandomHelpers(t *testing.T) {
	ctx := NewSeeded(640, 60, 42, nil)
	for i := 0; i < 1000; i++ {
		x := ctx.Between(-3, 5)
		if x < -3 || x >= 5 {
			t.Fatalf("Between out of range: %v", x)
		}
		if d := ctx.Direction(); math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Direction not unit length: %v", d)
		}
	}
}

func TestSeededDeterminism(t *testing.T) {
	a := NewSeeded(640, 60, 7, nil)
	b := NewSeeded(640, 60, 7, nil)
	for i := 0; i < 50; i++ {
		if a.Rand.Float64() != b.Rand.Float64() {
			t.Fatal("same seed produced different streams")
		}
	}
}
