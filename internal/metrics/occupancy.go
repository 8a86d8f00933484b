package metrics

import (
	"slices"

	"github.com/san-kum/dsanim/internal/sim"
)

// Occupancy samples every structure's settled count each tick. Its value is the
// mean fill ratio (settled/capacity) over all structures and samples.
type Occupancy struct {
	name    string
	series  map[string][]float64
	frames  []uint64
	fill    float64
	samples int
}

func NewOccupancy() *Occupancy {
	return &Occupancy{name: "occupancy", series: make(map[string][]float64)}
}

func (o *Occupancy) Name() string { return o.name }

func (o *Occupancy) Observe(frame uint64, vs []sim.Visualizer) {
	o.frames = append(o.frames, frame)
	for _, v := range vs {
		n := v.Settled()
		o.series[v.Name()] = append(o.series[v.Name()], float64(n))
		if c := v.Capacity(); c > 0 {
			o.fill += float64(n) / float64(c)
			o.samples++
		}
	}
}

func (o *Occupancy) Value() float64 {
	if o.samples == 0 {
		return 0
	}
	return o.fill / float64(o.samples)
}

func (o *Occupancy) Reset() {
	o.series = make(map[string][]float64)
	o.frames = nil
	o.fill = 0
	o.samples = 0
}

// Frames returns the sampled frame numbers.
func (o *Occupancy) Frames() []uint64 { return o.frames }

// Series returns the settled counts of one structure, one per sampled frame.
func (o *Occupancy) Series(name string) []float64 { return o.series[name] }

// All returns every series keyed by structure name.
func (o *Occupancy) All() map[string][]float64 { return o.series }

func (o *Occupancy) Names() []string {
	names := make([]string, 0, len(o.series))
	for n := range o.series {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Mean returns the average settled count of one structure.
func (o *Occupancy) Mean(name string) float64 {
	s := o.series[name]
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range s {
		sum += x
	}
	return sum / float64(len(s))
}

// Peak returns the largest settled count of one structure.
func (o *Occupancy) Peak(name string) float64 {
	if s := o.series[name]; len(s) > 0 {
		return slices.Max(s)
	}
	return 0
}
