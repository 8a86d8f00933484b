package visualizer

import (
	"github.com/san-kum/dsanim/internal/element"
	"github.com/san-kum/dsanim/internal/sim"
)

// fixedRand always returns the same draws. f = 0 forces every admission trial.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(n int) int   { return min(r.n, n-1) }

func testContext(r sim.Rand) *sim.Context { return sim.NewContext(640, 60, r, nil) }

type eventLog struct {
	events []Event
}

func (l *eventLog) OnEvent(e Event) { l.events = append(l.events, e) }

func (l *eventLog) ids(kind EventKind) []uint64 {
	var out []uint64
	for _, e := range l.events {
		if e.Kind == kind {
			out = append(out, e.ID)
		}
	}
	return out
}

func newLeafAt(x, size float64) *element.Leaf {
	l := element.NewLeaf(0, size)
	l.Body.SetPosition(x, 0)
	return l
}
