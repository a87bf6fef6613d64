// SPDX-License-Identifier: MIT
// Package: lexigraph/dijkstra
//
// convert.go — unit-weight view of a sparse relation graph.

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lexigraph/sparse"
)

// FromSparse converts g into a Graph keyed by term, every present edge
// weighing 1, and returns the terms in rank order as the node list.
// Self-loops are kept; they never shorten a path.
func FromSparse(idx *sparse.TermIndex, g *sparse.Graph) (Graph, []string, error) {
	if idx.Len() != g.N() {
		return nil, nil, fmt.Errorf("%w: index has %d terms, graph %d vertices",
			sparse.ErrDimensionMismatch, idx.Len(), g.N())
	}
	nodes := idx.Terms()
	out := make(Graph, len(nodes))
	for r, term := range nodes {
		row := g.Row(r)
		links := make(map[string]int64, len(row))
		for _, c := range row {
			links[nodes[c]] = 1
		}
		out[term] = links
	}
	return out, nodes, nil
}
