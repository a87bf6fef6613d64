// SPDX-License-Identifier: MIT
// Package: lexigraph/query
//
// degree.go — out-degree queries and distribution summaries.

package query

import (
	"sort"
	"time"
)

// Degree returns the number of distinct terms that term relates to.
func (e *Engine) Degree(term string) (d int, err error) {
	defer e.observe(OpDegree, time.Now(), &err)
	r, err := e.Lookup(term)
	if err != nil {
		return 0, err
	}
	return e.g.OutDegree(r), nil
}

// TermDegree is Degree with the resolved rank attached.
func (e *Engine) TermDegree(term string) (td TermDegree, err error) {
	defer e.observe(OpDegree, time.Now(), &err)
	r, err := e.Lookup(term)
	if err != nil {
		return TermDegree{}, err
	}
	return TermDegree{Rank: r, Term: term, Degree: e.g.OutDegree(r)}, nil
}

// Degrees returns the out-degree of every rank.
func (e *Engine) Degrees() []int {
	out := make([]int, e.g.N())
	for r := range out {
		out[r] = e.g.OutDegree(r)
	}
	return out
}

// DegreeStats summarises Degrees. An empty graph yields zero values.
func (e *Engine) DegreeStats() Stats {
	s := Stats{Terms: e.g.N(), Edges: e.g.EdgeCount()}
	if s.Terms == 0 {
		return s
	}
	s.Min = e.g.OutDegree(0)
	for r := 0; r < s.Terms; r++ {
		d := e.g.OutDegree(r)
		if d < s.Min {
			s.Min = d
		}
		if d > s.Max {
			s.Max = d
		}
		if d == 0 {
			s.Isolated++
		}
	}
	s.Mean = float64(s.Edges) / float64(s.Terms)
	return s
}

// Extremes returns up to n terms with the smallest non-zero degree and up to
// n with the largest degree. Ties are broken by ascending rank. n <= 0 yields
// empty results.
func (e *Engine) Extremes(n int) (lowest, highest []TermDegree) {
	if n <= 0 {
		return nil, nil
	}
	all := make([]TermDegree, 0, e.g.N())
	for r, term := range e.idx.Terms() {
		all = append(all, TermDegree{Rank: r, Term: term, Degree: e.g.OutDegree(r)})
	}

	// all is in rank order, so stable sorts keep the rank tie-break
	byDesc := make([]TermDegree, len(all))
	copy(byDesc, all)
	sort.SliceStable(byDesc, func(i, j int) bool { return byDesc[i].Degree > byDesc[j].Degree })
	highest = byDesc[:min(n, len(byDesc))]

	nonZero := all[:0:0]
	for _, td := range all {
		if td.Degree > 0 {
			nonZero = append(nonZero, td)
		}
	}
	sort.SliceStable(nonZero, func(i, j int) bool { return nonZero[i].Degree < nonZero[j].Degree })
	lowest = nonZero[:min(n, len(nonZero))]

	return lowest, highest
}

// Histogram returns h where h[d] counts the terms of out-degree d, for
// d in [0, max degree]. An empty graph yields nil.
func (e *Engine) Histogram() []int {
	if e.g.N() == 0 {
		return nil
	}
	degrees := e.Degrees()
	maxDeg := 0
	for _, d := range degrees {
		maxDeg = max(maxDeg, d)
	}
	h := make([]int, maxDeg+1)
	for _, d := range degrees {
		h[d]++
	}
	return h
}
