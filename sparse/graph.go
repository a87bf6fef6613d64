// SPDX-License-Identifier: MIT
// Package: lexigraph/sparse
//
// graph.go — the sparse presence matrix.
//
// Storage:
//   - coords: the triples exactly as supplied (order and duplicates kept).
//   - rowPtr/colIdx: compressed rows; colIdx[rowPtr[r]:rowPtr[r+1]] holds the
//     distinct targets of r in ascending order. Only Present triples count.
//
// Determinism:
//   - The compressed view depends only on the set of present (row,col) pairs,
//     never on triple order.

package sparse

import (
	"fmt"
	"sort"
)

// Graph is an immutable N×N boolean adjacency structure stored sparsely.
type Graph struct {
	n      int
	coords []Coord
	rowPtr []int // len n+1
	colIdx []int // len EdgeCount()
}

// NewGraph validates coords against n and builds the row index.
//
// Implementation:
//   - Stage 1: reject n < 0 and any coordinate outside [0,n)×[0,n).
//   - Stage 2: bucket present targets per row (counting pass + fill pass).
//   - Stage 3: sort and de-duplicate each row in place.
//
// Errors:
//   - ErrOutOfRange for a negative n or a coordinate out of range.
//
// Complexity: O(n + M log M) time, O(n + M) space.
func NewGraph(n int, coords []Coord) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrOutOfRange, n)
	}
	for i, c := range coords {
		if c.Row < 0 || c.Row >= n || c.Col < 0 || c.Col >= n {
			return nil, fmt.Errorf("%w: coordinate #%d (%d,%d) outside %dx%d",
				ErrOutOfRange, i, c.Row, c.Col, n, n)
		}
	}

	stored := make([]Coord, len(coords))
	copy(stored, coords)

	// counting pass: raw bucket sizes (duplicates included)
	counts := make([]int, n+1)
	for _, c := range stored {
		if c.Present {
			counts[c.Row+1]++
		}
	}
	for r := 0; r < n; r++ {
		counts[r+1] += counts[r]
	}

	// fill pass
	raw := make([]int, counts[n])
	next := make([]int, n)
	copy(next, counts[:n])
	for _, c := range stored {
		if c.Present {
			raw[next[c.Row]] = c.Col
			next[c.Row]++
		}
	}

	// sort + dedup each row, compacting into colIdx
	rowPtr := make([]int, n+1)
	colIdx := make([]int, 0, len(raw))
	for r := 0; r < n; r++ {
		row := raw[counts[r]:counts[r+1]]
		sort.Ints(row)
		rowPtr[r] = len(colIdx)
		for i, c := range row {
			if i > 0 && row[i-1] == c {
				continue
			}
			colIdx = append(colIdx, c)
		}
	}
	rowPtr[n] = len(colIdx)

	return &Graph{n: n, coords: stored, rowPtr: rowPtr, colIdx: colIdx}, nil
}

// fromRows wraps an already sorted, de-duplicated row index. Used by
// composition, where coords are synthesised from the rows.
func fromRows(n int, rowPtr, colIdx []int) *Graph {
	coords := make([]Coord, 0, len(colIdx))
	for r := 0; r < n; r++ {
		for _, c := range colIdx[rowPtr[r]:rowPtr[r+1]] {
			coords = append(coords, Coord{Row: r, Col: c, Present: true})
		}
	}
	return &Graph{n: n, coords: coords, rowPtr: rowPtr, colIdx: colIdx}
}

// N returns the vertex count.
func (g *Graph) N() int { return g.n }

// NNZ returns the number of stored coordinate triples, duplicates and
// non-present triples included.
func (g *Graph) NNZ() int { return len(g.coords) }

// EdgeCount returns the number of distinct present edges.
func (g *Graph) EdgeCount() int { return len(g.colIdx) }

// Coords returns a copy of the stored triples in their original order.
func (g *Graph) Coords() []Coord {
	out := make([]Coord, len(g.coords))
	copy(out, g.coords)
	return out
}

// MaxCoord returns the largest row or column rank stored, or -1 when no
// triple is stored.
func (g *Graph) MaxCoord() int {
	m := -1
	for _, c := range g.coords {
		if c.Row > m {
			m = c.Row
		}
		if c.Col > m {
			m = c.Col
		}
	}
	return m
}

// Row returns the sorted distinct targets of rank r.
// The slice aliases internal storage and MUST NOT be modified.
// An invalid r yields nil.
func (g *Graph) Row(r int) []int {
	if r < 0 || r >= g.n {
		return nil
	}
	return g.colIdx[g.rowPtr[r]:g.rowPtr[r+1]:g.rowPtr[r+1]]
}

// OutDegree returns the number of distinct targets of rank r (its row sum).
// An invalid r yields 0.
func (g *Graph) OutDegree(r int) int {
	if r < 0 || r >= g.n {
		return 0
	}
	return g.rowPtr[r+1] - g.rowPtr[r]
}

// HasEdge reports whether the edge r→c is present.
func (g *Graph) HasEdge(r, c int) bool {
	row := g.Row(r)
	i := sort.SearchInts(row, c)
	return i < len(row) && row[i] == c
}

// Transpose returns the reversed relation (c→r for every r→c).
func (g *Graph) Transpose() *Graph {
	counts := make([]int, g.n+1)
	for _, c := range g.colIdx {
		counts[c+1]++
	}
	for r := 0; r < g.n; r++ {
		counts[r+1] += counts[r]
	}
	colIdx := make([]int, len(g.colIdx))
	next := make([]int, g.n)
	copy(next, counts[:g.n])
	// visiting source rows in ascending order keeps every target row sorted
	for r := 0; r < g.n; r++ {
		for _, c := range g.Row(r) {
			colIdx[next[c]] = r
			next[c]++
		}
	}
	return fromRows(g.n, counts, colIdx)
}

// IsSymmetric reports whether every present edge r→c has its reverse c→r.
// Self-loops are trivially symmetric.
func (g *Graph) IsSymmetric() bool {
	for r := 0; r < g.n; r++ {
		for _, c := range g.Row(r) {
			if !g.HasEdge(c, r) {
				return false
			}
		}
	}
	return true
}
