package visualizer_test

import (
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dsanim/internal/physics"
	"github.com/san-kum/dsanim/internal/sim"
	"github.com/san-kum/dsanim/internal/visualizer"
	"github.com/san-kum/dsanim/internal/vmath"
)

// forced makes every admission trial succeed; IntN always answers pick, clamped.
type forced struct{ pick int }

func (forced) Float64() float64 { return 0 }
func (f forced) IntN(n int) int { return min(f.pick, n-1) }

type recorder struct{ events []visualizer.Event }

func (r *recorder) OnEvent(e visualizer.Event) { r.events = append(r.events, e) }

func (r *recorder) ids(kind visualizer.EventKind) []uint64 {
	var out []uint64
	for _, e := range r.events {
		if e.Kind == kind {
			out = append(out, e.ID)
		}
	}
	return out
}

var _ = Describe("Stack", func() {
	var (
		stack *visualizer.Stack
		rec   *recorder
	)

	BeforeEach(func() {
		stack = visualizer.NewStack(sim.NewContext(640, 60, forced{}, nil), vmath.Vec2{}, visualizer.DefaultStackOptions())
		rec = &recorder{}
		stack.AddObserver(rec)
	})

	It("settles ten pushes before popping the last one", func() {
		maxSettled := 0
		for i := 0; i < 400 && len(rec.ids(visualizer.Evicted)) == 0; i++ {
			stack.Step()
			maxSettled = max(maxSettled, stack.Settled())
			Expect(stack.Settled() + stack.Inserting()).To(BeNumerically("<=", 10))
		}

		committed := rec.ids(visualizer.Committed)
		Expect(maxSettled).To(Equal(10))
		Expect(committed).To(HaveLen(10))
		Expect(rec.ids(visualizer.Spawned)).To(Equal(committed), "commits keep push order")
		Expect(rec.ids(visualizer.Evicted)).To(Equal([]uint64{committed[9]}))
	})

	It("never pops while a push is in flight", func() {
		for i := 0; i < 1000; i++ {
			inFlight := stack.Inserting()
			before := len(rec.ids(visualizer.Evicted))
			stack.Step()
			if len(rec.ids(visualizer.Evicted)) > before {
				Expect(inFlight).To(BeZero())
			}
		}
	})
})

var _ = Describe("Graph", func() {
	It("grows to the limit wiring each node to at most three others", func() {
		opts := visualizer.DefaultGraphOptions()
		opts.InitialNodes = 1
		g := visualizer.NewGraph(sim.NewContext(640, 60, forced{}, nil), vmath.Vec2{}, opts)
		rec := &recorder{}
		g.AddObserver(rec)
		layout := g.Layout()

		seen := 0
		for i := 0; i < 600; i++ {
			g.Step()
			Expect(layout.Len()).To(BeNumerically("<=", 8))
			Expect(layout.Len() + g.Inserting()).To(BeNumerically("<=", 8))

			committed := rec.ids(visualizer.Committed)
			for _, id := range committed[seen:] {
				for n := range layout.Nodes().All() {
					if n.ID != id {
						continue
					}
					neighbors := layout.Neighbors(n)
					Expect(len(neighbors)).To(BeNumerically("<=", 3))
					distinct := map[uint64]bool{}
					for _, m := range neighbors {
						Expect(m.ID).NotTo(Equal(id))
						distinct[m.ID] = true
					}
					Expect(distinct).To(HaveLen(len(neighbors)))
				}
			}
			seen = len(committed)

			for e := range layout.Edges().All() {
				Expect(layout.Nodes().Has(e.A)).To(BeTrue())
				Expect(layout.Nodes().Has(e.B)).To(BeTrue())
			}
		}
		Expect(seen).To(BeNumerically(">=", 7))
	})
})

var _ = Describe("Set", func() {
	It("registers a lens landing in both regions and keeps it there", func() {
		opts := visualizer.DefaultSetOptions()
		s := visualizer.NewSet(sim.NewContext(640, 60, forced{pick: 2}, nil), vmath.Vec2{}, opts)
		rec := &recorder{}
		s.AddObserver(rec)

		for i := 0; i < 600; i++ {
			s.Step()
			for _, l := range s.Members() {
				Expect(s.A.Has(l)).To(BeTrue())
				Expect(s.B.Has(l)).To(BeTrue())
				Expect(s.A.Overlap(l)).NotTo(Equal(physics.Outside))
				Expect(s.B.Overlap(l)).NotTo(Equal(physics.Outside))
			}
		}
		Expect(rec.ids(visualizer.Committed)).NotTo(BeEmpty())
	})
})

var _ = Describe("Scene", func() {
	DescribeTable("holds settled plus in-flight insertions within capacity",
		func(seed uint64) {
			ctx := sim.NewContext(640, 60, rand.New(rand.NewPCG(seed, seed+1)), nil)
			vs, err := visualizer.NewScene(ctx, 640, visualizer.DefaultOptions())
			Expect(err).NotTo(HaveOccurred())

			type inflight interface{ Inserting() int }
			for i := 0; i < 3000; i++ {
				for _, v := range vs {
					v.Step()
					Expect(v.Settled()+v.(inflight).Inserting()).To(BeNumerically("<=", v.Capacity()), v.Name())
				}
			}
		},
		Entry("seed 1", uint64(1)),
		Entry("seed 42", uint64(42)),
		Entry("seed 2024", uint64(2024)),
	)
})
