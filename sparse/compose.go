// SPDX-License-Identifier: MIT
// Package: lexigraph/sparse
//
// compose.go — boolean relation composition (a ∘ b) and powers.
//
// Canonical model:
//   - Edge A→B exists in Compose(a,b) iff ∃C: A→C in a and C→B in b.
//   - Row-wise (Gustavson) product: for each row A of a, union the rows of b
//     indexed by A's targets. A marker array stamped with the current row
//     replaces a per-row set, so no dense N×N buffer is ever allocated.
//
// Cost:
//   - Proportional to Σ_{A→C in a} deg_b(C), i.e. the number of edge pairs
//     combined, not to N². On a dense vocabulary the result densifies fast;
//     orders beyond 2–3 are not what this is for. WithEdgeBudget bounds it.

package sparse

import (
	"fmt"
	"sort"
)

// Compose returns the composition a ∘ b of two relations of the same size.
//
// Errors:
//   - ErrDimensionMismatch if a.N() != b.N().
//   - ErrEdgeBudget if the result exceeds WithEdgeBudget.
//   - ErrOptionViolation for invalid options.
func Compose(a, b *Graph, opts ...ComposeOption) (*Graph, error) {
	cfg := composeOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if a == nil || b == nil {
		return nil, ErrNilGraph
	}
	if a.n != b.n {
		return nil, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, a.n, b.n)
	}

	n := a.n
	rowPtr := make([]int, n+1)
	colIdx := make([]int, 0, len(a.colIdx))
	marker := make([]int, n) // marker[c] == r+1 ⇔ c already in row r
	start := 0

	for r := 0; r < n; r++ {
		rowPtr[r] = start
		for _, mid := range a.Row(r) {
			for _, c := range b.Row(mid) {
				if marker[c] == r+1 {
					continue
				}
				marker[c] = r + 1
				colIdx = append(colIdx, c)
			}
		}
		if cfg.edgeBudget > 0 && len(colIdx) > cfg.edgeBudget {
			return nil, fmt.Errorf("%w: more than %d edges after row %d", ErrEdgeBudget, cfg.edgeBudget, r)
		}
		sort.Ints(colIdx[start:])
		start = len(colIdx)
	}
	rowPtr[n] = start

	return fromRows(n, rowPtr, colIdx), nil
}

// Power returns g composed with itself k times (g¹ = g, g² = g∘g, …).
// k < 1 is ErrOptionViolation. The edge budget applies to every
// intermediate product.
func Power(g *Graph, k int, opts ...ComposeOption) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: power must be >= 1 (%d)", ErrOptionViolation, k)
	}
	cfg := composeOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	out := g
	for i := 1; i < k; i++ {
		next, err := Compose(out, g, opts...)
		if err != nil {
			return nil, fmt.Errorf("power %d: %w", i+1, err)
		}
		out = next
	}
	return out, nil
}
