package graph

import (
	"github.com/san-kum/dsanim/internal/element"
	"github.com/san-kum/dsanim/internal/physics"
	"github.com/san-kum/dsanim/internal/render"
	"github.com/san-kum/dsanim/internal/sprite"
)

type Graph struct {
	nodes *sprite.Set[*element.Leaf]
	edges *sprite.Set[*Edge]

	// Area bounds the layout. Nodes are kept inside with zero restitution.
	Area physics.CircularArea
	// Repulsion is the (negative) attraction factor applied to every node pair.
	Repulsion float64
}

func New(area physics.CircularArea, repulsion float64) *Graph {
	return &Graph{
		nodes:     sprite.NewSet[*element.Leaf](),
		edges:     sprite.NewSet[*Edge](),
		Area:      area,
		Repulsion: repulsion,
	}
}

func (g *Graph) Nodes() *sprite.Set[*element.Leaf] { return g.nodes }
func (g *Graph) Edges() *sprite.Set[*Edge]         { return g.edges }
func (g *Graph) Len() int                          { return g.nodes.Len() }

func (g *Graph) AddNode(n *element.Leaf) bool { return g.nodes.Add(n) }

// Connect adds a spring between two distinct member nodes. It returns nil when
// either endpoint is not in the graph.
func (g *Graph) Connect(a, b *element.Leaf, restLength, stiffness float64) *Edge {
	if a == b || !g.nodes.Has(a) || !g.nodes.Has(b) {
		return nil
	}
	e := NewEdge(a, b, restLength, stiffness)
	g.edges.Add(e)
	return e
}

func (g *Graph) IncidentEdges(n *element.Leaf) []*Edge {
	var out []*Edge
	for e := range g.edges.All() {
		if e.IncidentTo(n) {
			out = append(out, e)
		}
	}
	return out
}

// Neighbors returns the nodes sharing an edge with n.
func (g *Graph) Neighbors(n *element.Leaf) []*element.Leaf {
	edges := g.IncidentEdges(n)
	out := make([]*element.Leaf, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.Other(n))
	}
	return out
}

// Isolated returns a snapshot of nodes without edges.
func (g *Graph) Isolated() []*element.Leaf {
	deg := make(map[*element.Leaf]int, g.nodes.Len())
	for e := range g.edges.All() {
		deg[e.A]++
		deg[e.B]++
	}
	var out []*element.Leaf
	for n := range g.nodes.All() {
		if deg[n] == 0 {
			out = append(out, n)
		}
	}
	return out
}

// DeleteNode removes n and every edge incident to it, edges first.
func (g *Graph) DeleteNode(n *element.Leaf) bool {
	if !g.nodes.Has(n) {
		return false
	}
	g.deleteIncidentEdges(n)
	return g.nodes.Delete(n)
}

// PopRandom removes a uniformly chosen node together with its edges.
func (g *Graph) PopRandom(r sprite.Source) (*element.Leaf, bool) {
	n, ok := g.nodes.Random(r)
	if !ok {
		return nil, false
	}
	g.DeleteNode(n)
	return n, true
}

func (g *Graph) deleteIncidentEdges(n *element.Leaf) {
	for _, e := range g.IncidentEdges(n) {
		e.removed = true
		g.edges.Delete(e)
	}
}

func (g *Graph) Step() {
	g.edges.Step()
	g.repel()
	g.nodes.Step()
	for n := range g.nodes.All() {
		g.Area.KeepIn(n.Body, 0)
	}
}

// repel applies the pairwise repulsion once per unordered node pair.
func (g *Graph) repel() {
	nodes := g.nodes.Members()
	for i := 0; i < len(nodes)-1; i++ {
		for j := i + 1; j < len(nodes); j++ {
			nodes[i].Body.Attract(nodes[j].Body, g.Repulsion)
		}
	}
}

// Draw renders edges beneath nodes.
func (g *Graph) Draw(s render.Surface) {
	g.edges.Draw(s)
	g.nodes.Draw(s)
}
