package graph

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/san-kum/dsanim/internal/element"
	"github.com/san-kum/dsanim/internal/physics"
	"github.com/san-kum/dsanim/internal/vmath"
)

func newTestGraph() *Graph {
	return New(physics.NewCircularArea(vmath.V(0, -10), 100), -0.2)
}

func addNodes(g *Graph, n int) []*element.Leaf {
	out := make([]*element.Leaf, n)
	for i := range out {
		l := element.NewLeaf(uint64(i+1), 12)
		l.Body.SetPosition(float64(i*10-20), float64(i%3*7))
		g.AddNode(l)
		out[i] = l
	}
	return out
}

func TestConnectRequiresMembers(t *testing.T) {
	g := newTestGraph()
	nodes := addNodes(g, 2)
	stranger := element.NewLeaf(99, 12)

	if g.Connect(nodes[0], stranger, 70, 0.005) != nil {
		t.Error("Connect must refuse a non-member endpoint")
	}
	if g.Connect(nodes[0], nodes[0], 70, 0.005) != nil {
		t.Error("Connect must refuse self loops")
	}
	if g.Connect(nodes[0], nodes[1], 70, 0.005) == nil {
		t.Error("Connect between members failed")
	}
}

func TestDeleteNodeRemovesIncidentEdges(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	for trial := 0; trial < 20; trial++ {
		g := newTestGraph()
		nodes := addNodes(g, 8)
		for i, n := range nodes {
			for _, m := range g.nodes.RandomSubset(r, 3) {
				if m == n || i%2 == 0 {
					continue
				}
				g.Connect(n, m, 70, 0.005)
			}
		}

		victim := nodes[r.IntN(len(nodes))]
		incident := g.IncidentEdges(victim)
		g.DeleteNode(victim)

		for e := range g.edges.All() {
			if e.IncidentTo(victim) {
				t.Fatalf("trial %d: edge still references deleted node", trial)
			}
			if !g.nodes.Has(e.A) || !g.nodes.Has(e.B) {
				t.Fatalf("trial %d: dangling edge endpoint", trial)
			}
		}
		for _, e := range incident {
			if !e.Removed() {
				t.Errorf("trial %d: incident edge not marked removed", trial)
			}
		}
		if g.nodes.Has(victim) {
			t.Errorf("trial %d: node still present", trial)
		}
	}
}

func TestPopRandomKeepsIntegrity(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 9))
	g := newTestGraph()
	nodes := addNodes(g, 5)
	for i := 1; i < len(nodes); i++ {
		g.Connect(nodes[0], nodes[i], 70, 0.005)
	}

	for g.Len() > 0 {
		n, ok := g.PopRandom(r)
		if !ok {
			t.Fatal("PopRandom failed on non-empty graph")
		}
		for e := range g.edges.All() {
			if e.IncidentTo(n) {
				t.Fatal("edge references popped node")
			}
		}
	}
	if _, ok := g.PopRandom(r); ok {
		t.Error("PopRandom on empty graph should report false")
	}
}

func TestIsolated(t *testing.T) {
	g := newTestGraph()
	nodes := addNodes(g, 4)
	g.Connect(nodes[0], nodes[1], 70, 0.005)

	iso := g.Isolated()
	if len(iso) != 2 {
		t.Fatalf("expected 2 isolated nodes, got %d", len(iso))
	}
	for _, n := range iso {
		if n == nodes[0] || n == nodes[1] {
			t.Error("connected node reported isolated")
		}
	}
	if got := g.Neighbors(nodes[0]); len(got) != 1 || got[0] != nodes[1] {
		t.Errorf("Neighbors = %v", got)
	}
}

func TestEdgeSpringDirection(t *testing.T) {
	a, b := element.NewLeaf(1, 1), element.NewLeaf(2, 1)
	b.Body.SetPosition(100, 0)
	e := NewEdge(a, b, 70, 0.01)

	e.Step()
	if a.Body.Velocity.X <= 0 || b.Body.Velocity.X >= 0 {
		t.Errorf("stretched spring should pull together: %v %v", a.Body.Velocity, b.Body.Velocity)
	}

	a.Body.SetVelocity(0, 0)
	b.Body.SetVelocity(0, 0)
	b.Body.SetPosition(40, 0)
	e.Step()
	if a.Body.Velocity.X >= 0 || b.Body.Velocity.X <= 0 {
		t.Errorf("compressed spring should push apart: %v %v", a.Body.Velocity, b.Body.Velocity)
	}
}

func TestStepKeepsNodesInArea(t *testing.T) {
	g := newTestGraph()
	nodes := addNodes(g, 6)
	nodes[0].Body.SetPosition(500, 500)
	nodes[1].Body.SetVelocity(40, 0)
	for i := 1; i < len(nodes); i++ {
		g.Connect(nodes[0], nodes[i], 70, 0.005)
	}

	for tick := 0; tick < 120; tick++ {
		g.Step()
		for n := range g.nodes.All() {
			if g.Area.Overlap(n.Body) == physics.Outside {
				t.Fatalf("tick %d: node %d outside layout area", tick, n.ID)
			}
			if !n.Body.Position.IsFinite() {
				t.Fatalf("tick %d: non-finite position", tick)
			}
		}
	}
}

func TestRepulsionSpreadsNodes(t *testing.T) {
	g := newTestGraph()
	a, b := element.NewLeaf(1, 12), element.NewLeaf(2, 12)
	a.Body.SetPosition(-1, -10)
	b.Body.SetPosition(1, -10)
	g.AddNode(a)
	g.AddNode(b)

	before := a.Body.Position.Dist(b.Body.Position)
	for i := 0; i < 10; i++ {
		g.Step()
	}
	if after := a.Body.Position.Dist(b.Body.Position); after <= before {
		t.Errorf("repulsion should separate nodes: %f -> %f", before, after)
	}
	if math.Abs(a.Body.Position.Y-b.Body.Position.Y) > 1e-9 {
		t.Error("symmetric repulsion should keep nodes level")
	}
}

func TestToDOT(t *testing.T) {
	g := newTestGraph()
	nodes := addNodes(g, 3)
	g.Connect(nodes[0], nodes[2], 70, 0.005)

	dot := ToDOT(g, DOTOptions{})
	for _, want := range []string{"graph G {", "n1 [label=\"1\"]", "n1 -- n3;"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}

	pinned := ToDOT(g, DOTOptions{Pinned: true, Scale: 2})
	if !strings.Contains(pinned, "pos=\"-40.00,-0.00!\"") && !strings.Contains(pinned, "pos=\"-40.00,0.00!\"") {
		t.Errorf("pinned DOT missing scaled position:\n%s", pinned)
	}
}
