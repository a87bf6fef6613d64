// SPDX-License-Identifier: MIT
// Package: lexigraph/query
//
// closure.go — set expansion and fixed-order related terms.
//
// Both walk rows of the sparse graph with a marker slice; neither
// materialises a relation power.

package query

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Closure expands {term} one hop per round and records the set size after
// each round.
//
// Implementation:
//   - Stage 1: record (0,1) for the seed.
//   - Stage 2: each round unions the rows of the previous round's newcomers
//     (older members' targets are already in the set).
//   - Stage 3: stop after a round that adds nothing (recorded, Fixpoint)
//     or after maxIterations rounds.
//
// maxIterations == 0 uses the engine default; negative values are
// ErrOptionViolation.
func (e *Engine) Closure(term string, maxIterations int) (c *Closure, err error) {
	defer e.observe(OpClosure, time.Now(), &err)
	if maxIterations < 0 {
		return nil, fmt.Errorf("%w: max iterations cannot be negative (%d)", ErrOptionViolation, maxIterations)
	}
	if maxIterations == 0 {
		maxIterations = e.opts.MaxIterations
	}
	seed, err := e.Lookup(term)
	if err != nil {
		return nil, err
	}

	in := make([]bool, e.g.N())
	in[seed] = true
	members := []int{seed}
	frontier := []int{seed}
	c = &Closure{Steps: []Step{{Iteration: 0, Size: 1}}}

	for it := 1; it <= maxIterations; it++ {
		var next []int
		for _, r := range frontier {
			for _, t := range e.g.Row(r) {
				if !in[t] {
					in[t] = true
					next = append(next, t)
				}
			}
		}
		members = append(members, next...)
		c.Steps = append(c.Steps, Step{Iteration: it, Size: len(members)})
		if len(next) == 0 {
			c.Fixpoint = true
			break
		}
		frontier = next
	}

	sort.Ints(members)
	c.Members = members
	e.opts.Logger.Debug("closure", "term", term, "rounds", len(c.Steps)-1,
		"size", len(members), "fixpoint", c.Fixpoint)

	return c, nil
}

// Related returns the terms reachable from term by walks of exactly
// order+1 edges, sorted by rank. Order 0 is the direct related terms.
//
// The walk sets S_k form an eventually periodic sequence, so once a set
// repeats the answer for any larger order is read off the recorded cycle;
// any order up to math.MaxInt costs only the rounds until the first repeat.
func (e *Engine) Related(term string, order int) (terms []string, err error) {
	defer e.observe(OpRelated, time.Now(), &err)
	if order < 0 {
		return nil, fmt.Errorf("%w: order cannot be negative (%d)", ErrOptionViolation, order)
	}
	seed, err := e.Lookup(term)
	if err != nil {
		return nil, err
	}

	// stamp[t] == round marks t as already in the round's set
	stamp := make([]int, e.g.N())
	cur := []int{seed}
	history := [][]int{cur}
	seen := map[string]int{rankKey(cur): 0}

	// round counts walk length; round-1 == order avoids computing order+1
	for round := 1; ; round++ {
		cur = e.walkStep(cur, stamp, round)
		if round-1 == order {
			break
		}
		key := rankKey(cur)
		if first, ok := seen[key]; ok {
			// S_m == S_(first + (m-first) mod period) for m >= first
			period := round - first
			cur = history[first+((order-first)%period+1)%period]
			break
		}
		seen[key] = round
		history = append(history, cur)
	}

	return e.idx.TermsOf(cur)
}

// walkStep returns the sorted targets of every rank in cur.
func (e *Engine) walkStep(cur, stamp []int, round int) []int {
	next := make([]int, 0, len(cur))
	for _, r := range cur {
		for _, t := range e.g.Row(r) {
			if stamp[t] != round {
				stamp[t] = round
				next = append(next, t)
			}
		}
	}
	sort.Ints(next)
	return next
}

// rankKey encodes a sorted rank set as a map key.
func rankKey(ranks []int) string {
	b := make([]byte, 0, len(ranks)*4)
	for _, r := range ranks {
		b = strconv.AppendInt(b, int64(r), 10)
		b = append(b, ',')
	}
	return string(b)
}
