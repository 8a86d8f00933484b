package anim

import (
	"math"
	"testing"
)

func TestLifecycleTransitions(t *testing.T) {
	var l Lifecycle
	if l.State() != Dormant {
		t.Fatalf("new lifecycle state = %s, want dormant", l.State())
	}
	if l.Alpha() != MaxAlpha {
		t.Errorf("dormant alpha = %f, want 255", l.Alpha())
	}

	l.BeginAppear(4)
	if l.State() != Appearing {
		t.Fatalf("state = %s, want appearing", l.State())
	}
	for i := 0; i < 5; i++ {
		l.Step()
	}
	if l.State() != Steady {
		t.Fatalf("state = %s, want steady", l.State())
	}

	l.BeginDisappear(4)
	if l.State() != Disappearing {
		t.Fatalf("state = %s, want disappearing", l.State())
	}
	for i := 0; i < 4; i++ {
		l.Step()
		if l.Removed() {
			t.Fatalf("removed too early at step %d", i)
		}
	}
	l.Step()
	if l.State() != Removed || !l.Removed() {
		t.Fatalf("state = %s, want removed", l.State())
	}

	l.BeginAppear(4)
	if l.State() != Removed {
		t.Error("removed is terminal; BeginAppear must not revive")
	}
}

func TestLifecycleZeroDurationCompletes(t *testing.T) {
	var l Lifecycle
	l.BeginAppear(0)
	l.Step()
	l.Step()
	if l.State() != Steady {
		t.Fatalf("state = %s, want steady", l.State())
	}

	l.BeginDisappear(0)
	if l.State() != Disappearing {
		t.Fatalf("state = %s, want disappearing", l.State())
	}
	l.Step()
	l.Step()
	if !l.Removed() {
		t.Fatalf("state = %s, want removed", l.State())
	}
}

func TestLifecycleAlphaCurves(t *testing.T) {
	var l Lifecycle
	l.BeginAppear(10)
	if a := l.Alpha(); a != 0 {
		t.Errorf("alpha at appear start = %f, want 0", a)
	}
	prev := l.Alpha()
	for i := 0; i < 10; i++ {
		l.Step()
		a := l.Alpha()
		if a < prev {
			t.Fatalf("appear alpha must not decrease: %f -> %f", prev, a)
		}
		prev = a
	}
	if math.Abs(prev-MaxAlpha) > 1e-9 {
		t.Errorf("alpha at appear completion = %f, want 255", prev)
	}

	l.Step()
	l.BeginDisappear(10)
	if a := l.Alpha(); a != MaxAlpha {
		t.Errorf("alpha at disappear start = %f, want 255", a)
	}
	for i := 0; i < 10; i++ {
		l.Step()
	}
	if a := l.Alpha(); math.Abs(a) > 1e-9 {
		t.Errorf("alpha at disappear completion = %f, want 0", a)
	}
}

func TestLifecycleRetriggerIgnored(t *testing.T) {
	var l Lifecycle
	l.BeginAppear(10)
	l.Step()
	l.Step()
	ratio := l.AppearingRatio()
	l.BeginAppear(10)
	if l.AppearingRatio() != ratio {
		t.Error("re-triggering an active appear animation must be ignored")
	}
}

func TestLifecycleProperFrames(t *testing.T) {
	var l Lifecycle
	for i := 0; i < 7; i++ {
		l.Step()
	}
	if l.ProperFrames() != 7 {
		t.Errorf("ProperFrames = %d, want 7", l.ProperFrames())
	}
}
