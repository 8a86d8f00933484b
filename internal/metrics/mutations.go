package metrics

import (
	"sync"

	"github.com/san-kum/dsanim/internal/sim"
	"github.com/san-kum/dsanim/internal/visualizer"
)

// Counts tallies the events of one structure.
type Counts struct {
	Spawned   int `json:"spawned"`
	Committed int `json:"committed"`
	Evicted   int `json:"evicted"`
}

// Mutations counts visualizer events. It is both a visualizer.Observer and a
// sim.Metric whose value is committed mutations per second of simulated time.
type Mutations struct {
	name     string
	tickRate float64

	mu     sync.Mutex
	counts map[string]*Counts
	frames int
}

func NewMutations(tickRate float64) *Mutations {
	if tickRate <= 0 {
		tickRate = sim.DefaultTickRate
	}
	return &Mutations{name: "mutations_per_sec", tickRate: tickRate, counts: make(map[string]*Counts)}
}

func (m *Mutations) OnEvent(e visualizer.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.counts[e.Structure]
	if !ok {
		c = &Counts{}
		m.counts[e.Structure] = c
	}
	switch e.Kind {
	case visualizer.Spawned:
		c.Spawned++
	case visualizer.Committed:
		c.Committed++
	case visualizer.Evicted:
		c.Evicted++
	}
}

func (m *Mutations) Name() string { return m.name }

func (m *Mutations) Observe(uint64, []sim.Visualizer) {
	m.mu.Lock()
	m.frames++
	m.mu.Unlock()
}

func (m *Mutations) Value() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.frames == 0 {
		return 0
	}
	total := 0
	for _, c := range m.counts {
		total += c.Committed + c.Evicted
	}
	return float64(total) * m.tickRate / float64(m.frames)
}

func (m *Mutations) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts = make(map[string]*Counts)
	m.frames = 0
}

// Counts returns a copy of the per-structure tallies.
func (m *Mutations) Counts() map[string]Counts {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]Counts, len(m.counts))
	for k, c := range m.counts {
		out[k] = *c
	}
	return out
}
