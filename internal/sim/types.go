package sim

import "github.com/san-kum/dsanim/internal/render"

// Visualizer is one animated structure driven by the host clock.
type Visualizer interface {
	Name() string
	Step()
	Draw(s render.Surface)

	// Settled is the number of committed members.
	Settled() int
	Capacity() int
}

// Metric aggregates per-tick samples over a run.
type Metric interface {
	Name() string
	Observe(frame uint64, vs []Visualizer)
	Value() float64
	Reset()
}

type Observer interface {
	OnTick(frame uint64, vs []Visualizer)
}

type Config struct {
	Ticks int
	Seed  uint64
}

type Result struct {
	Frames  uint64
	Settled map[string]int
	Metrics map[string]float64
}
