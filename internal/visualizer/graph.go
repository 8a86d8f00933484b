package visualizer

import (
	"math"

	"github.com/san-kum/dsanim/internal/element"
	"github.com/san-kum/dsanim/internal/graph"
	"github.com/san-kum/dsanim/internal/physics"
	"github.com/san-kum/dsanim/internal/render"
	"github.com/san-kum/dsanim/internal/sim"
	"github.com/san-kum/dsanim/internal/sprite"
	"github.com/san-kum/dsanim/internal/vmath"
)

type GraphOptions struct {
	Capacity   int
	Cadence    uint
	CenterY    float64
	Radius     float64
	Repulsion  float64
	RestLength float64
	Stiffness  float64
	Friction   float64
	// Degree is the most edges a new node gets, chosen without replacement.
	Degree int
	// MinNodes stops the isolated-node cascade.
	MinNodes       int
	ElementSize    float64
	AddTicks       uint
	AppearTicks    uint
	DisappearTicks uint
	RemovalChance  float64
	EjectSpeed     float64
	// InitialNodes are committed at construction, already wired.
	InitialNodes int
}

func DefaultGraphOptions() GraphOptions {
	return GraphOptions{
		Capacity:       8,
		Cadence:        15,
		CenterY:        -10,
		Radius:         100,
		Repulsion:      -0.2,
		RestLength:     70,
		Stiffness:      0.005,
		Friction:       0.1,
		Degree:         3,
		MinNodes:       3,
		ElementSize:    12,
		AddTicks:       30,
		AppearTicks:    30,
		DisappearTicks: 30,
		RemovalChance:  0.3,
		EjectSpeed:     200,
	}
}

// Graph grows a force-directed graph one node at a time. Each arriving node is
// wired to a few random existing nodes; removing a node also sheds any nodes the
// removal left isolated.
type Graph struct {
	base
	opts GraphOptions

	g      *graph.Graph
	target vmath.Vec2

	adding   *sprite.List[*element.Leaf]
	deleting *sprite.List[*element.Leaf]
}

func NewGraph(ctx *sim.Context, pos vmath.Vec2, opts GraphOptions) *Graph {
	center := vmath.V(0, ctx.Units(opts.CenterY))
	v := &Graph{
		base: newBase(ctx, "Graph", pos, Policy{
			Capacity:      opts.Capacity,
			Cadence:       opts.Cadence,
			RemovalChance: opts.RemovalChance,
			Alternate:     true,
		}),
		opts:     opts,
		g:        graph.New(physics.NewCircularArea(center, ctx.Units(opts.Radius)), opts.Repulsion),
		target:   center,
		adding:   sprite.NewList[*element.Leaf](),
		deleting: sprite.NewList[*element.Leaf](),
	}

	for i := 0; i < min(opts.InitialNodes, opts.Capacity); i++ {
		l := v.newNode()
		l.Body.Position = center.Add(ctx.Direction().Scale(ctx.Units(opts.RestLength) / 2))
		v.commit(l)
	}
	return v
}

func (v *Graph) Settled() int   { return v.g.Len() }
func (v *Graph) Inserting() int { return v.adding.Len() }
func (v *Graph) Removing() int  { return v.deleting.Len() }

// Layout exposes the underlying node/edge graph.
func (v *Graph) Layout() *graph.Graph { return v.g }

func (v *Graph) Step() {
	v.frame++
	v.g.Step()
	v.adding.Step()
	v.deleting.Step()

	g := v.ctx.Gravity()
	fall(v.adding, g)
	land(v.adding, v.opts.AddTicks, v.arrive)
	fall(v.deleting, g)

	v.sched.Tick(v, v.ctx.Rand)
}

func (v *Graph) Draw(surface render.Surface) {
	v.draw(surface, func(surface render.Surface) {
		v.g.Draw(surface)
		v.adding.Draw(surface)
		v.deleting.Draw(surface)
	})
}

func (v *Graph) newNode() *element.Leaf {
	return element.NewLeaf(v.ctx.NextID(), v.ctx.Units(v.opts.ElementSize))
}

func (v *Graph) insert() {
	ctx := v.ctx
	l := v.newNode()
	l.Body.SetPosition(ctx.Units(ctx.Between(-100, 0)), ctx.Units(ctx.Between(-170, -100)))
	l.Body.Launch(v.target, v.opts.AddTicks, ctx.Gravity())
	l.BeginAppear(v.opts.AppearTicks)
	v.adding.Push(l)
	v.emit(Spawned, l.ID)
}

func (v *Graph) arrive(l *element.Leaf) {
	l.Body.Position = v.target
	v.commit(l)
}

// commit gives the node a small random drift, friction and its edges.
func (v *Graph) commit(l *element.Leaf) {
	ctx := v.ctx
	l.Body.SetVelocity(ctx.Units(ctx.Between(-1, 1)), ctx.Units(ctx.Between(-1, 1)))
	l.Body.SetFriction(v.opts.Friction)

	adjacent := v.g.Nodes().RandomSubset(ctx.Rand, v.opts.Degree)
	v.g.AddNode(l)
	for _, n := range adjacent {
		v.g.Connect(l, n, ctx.Units(v.opts.RestLength), v.opts.Stiffness)
	}
	v.emit(Committed, l.ID)
}

func (v *Graph) remove() bool {
	n, ok := v.g.PopRandom(v.ctx.Rand)
	if !ok {
		return false
	}
	v.evict(n)
	v.cascade()
	return true
}

// cascade evicts isolated nodes until none are left or the graph is down to MinNodes.
// It works on snapshots, never on the live node set.
func (v *Graph) cascade() {
	for v.g.Len() > v.opts.MinNodes {
		isolated := v.g.Isolated()
		if len(isolated) == 0 {
			return
		}
		for _, n := range isolated {
			if v.g.Len() <= v.opts.MinNodes {
				return
			}
			v.g.DeleteNode(n)
			v.evict(n)
		}
	}
}

func (v *Graph) evict(n *element.Leaf) {
	angle := v.ctx.Between(math.Pi+math.Pi/4, math.Pi+3*math.Pi/4)
	n.Body.Velocity = n.Body.Velocity.Add(vmath.FromAngle(angle, v.ctx.Speed(v.opts.EjectSpeed)))
	n.Body.SetFriction(0)
	n.BeginDisappear(v.opts.DisappearTicks)
	v.deleting.Push(n)
	v.emit(Evicted, n.ID)
}
