// Package graph implements a force-directed layout over visual elements.
//
// Nodes are leaf elements and edges are springs between them. Each tick the graph
//
//  1. applies every edge's spring impulse to its endpoints,
//  2. repels every unordered pair of nodes exactly once,
//  3. integrates the nodes,
//  4. pulls any node that drifted out back inside the layout circle without bouncing.
//
// Edges only reference nodes; the graph owns both. Removing a node always removes
// its incident edges first, so no edge ever points at a node outside the graph.
package graph
