package visualizer

import (
	"math"
	"testing"

	"github.com/san-kum/dsanim/internal/physics"
	"github.com/san-kum/dsanim/internal/vmath"
)

func TestSetTargets(t *testing.T) {
	s := NewSet(testContext(fixedRand{}), vmath.Vec2{}, DefaultSetOptions())
	want := []vmath.Vec2{
		vmath.V(-20-26, -10+20+26),
		vmath.V(20+26, -10-20-26),
		vmath.V(0, -10),
	}
	for i, got := range s.Targets() {
		if got.Dist(want[i]) > 1e-9 {
			t.Errorf("target %d = %v, want %v", i, got, want[i])
		}
	}
}

func TestSetMembershipByTarget(t *testing.T) {
	tests := []struct {
		name   string
		target int
		inA    bool
		inB    bool
	}{
		{"A only", 0, true, false},
		{"B only", 1, false, true},
		{"lens", 2, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultSetOptions()
			opts.Capacity = 1
			// f = 0.6 admits into the empty set and then always fails the removal draw.
			s := NewSet(testContext(fixedRand{f: 0.6, n: tt.target}), vmath.Vec2{}, opts)
			for i := 0; i < 31; i++ {
				s.Step()
			}
			members := s.Members()
			if len(members) != 1 {
				t.Fatalf("expected one member, got %d", len(members))
			}
			l := members[0]
			if s.A.Has(l) != tt.inA || s.B.Has(l) != tt.inB {
				t.Errorf("membership A=%v B=%v, want A=%v B=%v", s.A.Has(l), s.B.Has(l), tt.inA, tt.inB)
			}
			if got := l.Body.Velocity.Length(); math.Abs(got-s.ctx.Speed(50)) > 1e-9 {
				t.Errorf("landing speed %v, want %v", got, s.ctx.Speed(50))
			}
		})
	}
}

func TestSetRegionsHoldMembers(t *testing.T) {
	opts := DefaultSetOptions()
	opts.Capacity = 1
	s := NewSet(testContext(fixedRand{f: 0.6}), vmath.Vec2{}, opts)
	for i := 0; i < 31; i++ {
		s.Step()
	}
	l := s.Members()[0]
	for i := 0; i < 200 && s.members.Has(l); i++ {
		s.Step()
		if s.A.Overlap(l) == physics.Outside {
			t.Fatalf("tick %d: member escaped region A", i)
		}
		if s.B.Overlap(l) == physics.Inside {
			t.Fatalf("tick %d: non-member inside region B", i)
		}
	}
}

func TestSetRemovalClearsMembership(t *testing.T) {
	opts := DefaultSetOptions()
	opts.Capacity = 1
	s := NewSet(testContext(fixedRand{n: 2}), vmath.Vec2{}, opts)
	for i := 0; i < 100 && s.Removing() == 0; i++ {
		s.Step()
	}
	if s.Removing() != 1 {
		t.Fatal("expected a removal once the set was full")
	}
	l := s.deleting.At(0)
	if s.A.Has(l) || s.B.Has(l) || s.members.Has(l) {
		t.Error("removed element still registered")
	}
	if l.Body.Velocity.Y >= 0 {
		t.Errorf("removed element should be thrown upward, got %v", l.Body.Velocity)
	}
}

func TestRegionJoin(t *testing.T) {
	r := NewRegion("A", vmath.Vec2{}, 100)
	inside, boundary, outside := newLeafAt(40, 10), newLeafAt(48, 10), newLeafAt(60, 10)
	if !r.Join(inside) || !r.Join(boundary) || r.Join(outside) {
		t.Error("Join should accept Inside and Boundary only")
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
	r.Delete(inside)
	if r.Has(inside) {
		t.Error("Delete did not remove membership")
	}
}
