package graph

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"

	"github.com/san-kum/dsanim/internal/element"
)

// DOTOptions configures DOT export.
type DOTOptions struct {
	// Pinned emits each node's current layout position so neato/fdp keep it.
	Pinned bool
	// Scale converts layout units to points when Pinned is set.
	Scale float64
}

// ToDOT writes the current graph as an undirected Graphviz document.
// Nodes are sorted by ID so the output is stable for a given graph.
func ToDOT(g *Graph, opts DOTOptions) string {
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=\"#202020\", fontcolor=white, width=0.3, fixedsize=true];\n")
	buf.WriteString("  edge [color=\"#404040\"];\n")
	if opts.Pinned {
		buf.WriteString("  layout=neato;\n")
	}
	buf.WriteString("\n")

	nodes := g.nodes.Members()
	slices.SortFunc(nodes, func(a, b *element.Leaf) int { return cmp.Compare(a.ID, b.ID) })
	for _, n := range nodes {
		if opts.Pinned {
			p := n.Body.Position.Scale(scale)
			// DOT's y axis points up.
			fmt.Fprintf(&buf, "  %s [label=\"%d\", pos=\"%.2f,%.2f!\"];\n", nodeName(n), n.ID, p.X, -p.Y)
			continue
		}
		fmt.Fprintf(&buf, "  %s [label=\"%d\"];\n", nodeName(n), n.ID)
	}

	buf.WriteString("\n")
	edges := g.edges.Members()
	slices.SortFunc(edges, func(a, b *Edge) int {
		if c := cmp.Compare(a.A.ID, b.A.ID); c != 0 {
			return c
		}
		return cmp.Compare(a.B.ID, b.B.ID)
	})
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %s -- %s;\n", nodeName(e.A), nodeName(e.B))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeName(n *element.Leaf) string { return fmt.Sprintf("n%d", n.ID) }
