// SPDX-License-Identifier: MIT
// Package: lexigraph/query
//
// engine.go — Engine construction, term resolution, shortest paths and
// relation composition.

package query

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lexigraph/bfs"
	"github.com/katalvlaran/lexigraph/sparse"
)

// Engine answers queries over one (TermIndex, Graph) pair.
type Engine struct {
	idx  *sparse.TermIndex
	g    *sparse.Graph
	opts Options
}

// New pairs idx with g.
//
// Errors:
//   - ErrNilGraph if idx or g is nil.
//   - ErrInconsistentGraph if g.N() != idx.Len().
//   - ErrOptionViolation for invalid options.
func New(idx *sparse.TermIndex, g *sparse.Graph, opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if idx == nil || g == nil {
		return nil, ErrNilGraph
	}
	if g.N() != idx.Len() {
		return nil, fmt.Errorf("%w: graph has %d vertices, index has %d terms",
			ErrInconsistentGraph, g.N(), idx.Len())
	}
	o.Logger.Debug("query engine ready", "terms", idx.Len(), "edges", g.EdgeCount(),
		"max_hops", o.MaxHops, "max_iterations", o.MaxIterations)

	return &Engine{idx: idx, g: g, opts: o}, nil
}

// Index returns the term index.
func (e *Engine) Index() *sparse.TermIndex { return e.idx }

// Graph returns the relation graph.
func (e *Engine) Graph() *sparse.Graph { return e.g }

// Lookup resolves term to its rank.
func (e *Engine) Lookup(term string) (int, error) {
	r, ok := e.idx.Lookup(term)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTerm, term)
	}
	return r, nil
}

func (e *Engine) observe(op string, start time.Time, err *error) {
	e.opts.Observer.ObserveQuery(op, *err, time.Since(start))
}

// ShortestPath returns the fewest-hop directed path from one term to another.
//
// Implementation:
//   - Stage 1: resolve both terms; from == to short-circuits to distance 0.
//   - Stage 2: capped BFS from the source with early exit on the target.
//   - Stage 3: rebuild the path from parent links.
//
// Errors:
//   - ErrUnknownTerm for either unknown term.
//   - ErrUnreachable if no path exists; joined with ErrHopLimit when the cap
//     truncated the frontier.
//   - ErrOptionViolation for invalid PathOptions.
func (e *Engine) ShortestPath(from, to string, opts ...PathOption) (p *Path, err error) {
	defer e.observe(OpShortestPath, time.Now(), &err)

	po := pathOptions{maxHops: e.opts.MaxHops}
	for _, opt := range opts {
		opt(&po)
	}
	if po.err != nil {
		return nil, po.err
	}

	src, err := e.Lookup(from)
	if err != nil {
		return nil, err
	}
	dst, err := e.Lookup(to)
	if err != nil {
		return nil, err
	}
	if src == dst {
		return &Path{Distance: 0, Ranks: []int{src}, Terms: []string{from}}, nil
	}

	res, err := bfs.BFS(e.g, src, bfs.WithMaxDepth(po.maxHops), bfs.WithTarget(dst))
	if err != nil {
		return nil, err
	}
	ranks, err := res.PathTo(dst)
	if err != nil {
		if res.Truncated {
			return nil, fmt.Errorf("%w: %w: %q to %q within %d hops",
				ErrUnreachable, ErrHopLimit, from, to, po.maxHops)
		}
		return nil, fmt.Errorf("%w: %q to %q", ErrUnreachable, from, to)
	}
	terms, err := e.idx.TermsOf(ranks)
	if err != nil {
		return nil, err
	}

	return &Path{Distance: len(ranks) - 1, Ranks: ranks, Terms: terms}, nil
}

// NextOrder returns g ∘ g under the engine's edge budget: A→B iff some C has
// A→C and C→B. Cost grows with the number of combined edge pairs; beyond
// order 2–3 on a dense vocabulary, expect ErrEdgeBudget or a long wait.
func (e *Engine) NextOrder(g *sparse.Graph) (out *sparse.Graph, err error) {
	defer e.observe(OpNextOrder, time.Now(), &err)
	if g == nil {
		return nil, ErrNilGraph
	}
	return sparse.Compose(g, g, sparse.WithEdgeBudget(e.opts.EdgeBudget))
}

// NthOrder returns the k-fold composition of g (k >= 1) under the engine's
// edge budget.
func (e *Engine) NthOrder(g *sparse.Graph, k int) (out *sparse.Graph, err error) {
	defer e.observe(OpNextOrder, time.Now(), &err)
	if g == nil {
		return nil, ErrNilGraph
	}
	out, err = sparse.Power(g, k, sparse.WithEdgeBudget(e.opts.EdgeBudget))
	if err != nil {
		return nil, err
	}
	e.opts.Logger.Debug("composed relation", "order", k, "edges", out.EdgeCount())
	return out, nil
}
