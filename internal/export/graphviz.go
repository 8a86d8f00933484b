package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/san-kum/dsanim/internal/graph"
)

var ErrEmptyGraph = errors.New("export: graph has no nodes")

// DOT returns the graph layout as DOT with every node pinned at its current
// position. scale converts layout units to points.
func DOT(g *graph.Graph, scale float64) string {
	return graph.ToDOT(g, graph.DOTOptions{Pinned: true, Scale: scale})
}

// GraphSVG renders the current graph layout to SVG through Graphviz. Node
// positions are kept, so the picture matches the animated frame.
func GraphSVG(ctx context.Context, g *graph.Graph, scale float64) ([]byte, error) {
	if g.Len() == 0 {
		return nil, ErrEmptyGraph
	}
	return RenderSVG(ctx, DOT(g, scale), graphviz.NEATO)
}

// RenderSVG renders a DOT document to SVG with the given layout engine.
func RenderSVG(ctx context.Context, dot string, layout graphviz.Layout) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(layout)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.-]+)\s+([0-9.-]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a plain
// viewBox so the SVG scales with its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %.2f %.2f" width="%.0f" height="%.0f">`,
		match[1], match[2], w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
