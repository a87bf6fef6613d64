// SPDX-License-Identifier: MIT
// Package: lexigraph/sparse
//
// index.go — TermIndex, the term ↔ rank bijection.

package sparse

import (
	"fmt"
	"sort"
)

// TermIndex maps every vocabulary term to a dense rank in [0,N) and back.
// Ranks follow sort.Strings order of the terms.
type TermIndex struct {
	terms []string       // rank → term, sorted ascending
	ranks map[string]int // term → rank
}

// NewTermIndex sorts a copy of terms and assigns ranks.
//
// Errors:
//   - ErrEmptyTerm if any term is "".
//   - ErrDuplicateTerm if a term occurs twice.
//
// Complexity: O(N log N) time, O(N) space.
func NewTermIndex(terms []string) (*TermIndex, error) {
	sorted := make([]string, len(terms))
	copy(sorted, terms) // never reorder the caller's slice
	sort.Strings(sorted)

	ranks := make(map[string]int, len(sorted))
	for i, t := range sorted {
		if t == "" {
			return nil, ErrEmptyTerm
		}
		// sorted input: a duplicate is always adjacent to its twin
		if i > 0 && sorted[i-1] == t {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTerm, t)
		}
		ranks[t] = i
	}

	return &TermIndex{terms: sorted, ranks: ranks}, nil
}

// Len returns N, the number of terms.
func (x *TermIndex) Len() int { return len(x.terms) }

// Lookup returns the rank of term and whether it belongs to the vocabulary.
func (x *TermIndex) Lookup(term string) (int, bool) {
	r, ok := x.ranks[term]
	return r, ok
}

// Term returns the term at rank r, or ErrOutOfRange.
func (x *TermIndex) Term(r int) (string, error) {
	if r < 0 || r >= len(x.terms) {
		return "", fmt.Errorf("%w: rank %d not in [0,%d)", ErrOutOfRange, r, len(x.terms))
	}
	return x.terms[r], nil
}

// Terms returns a copy of the terms in rank order.
func (x *TermIndex) Terms() []string {
	out := make([]string, len(x.terms))
	copy(out, x.terms)
	return out
}

// TermsOf maps a list of ranks to their terms. Any invalid rank yields
// ErrOutOfRange and no partial result.
func (x *TermIndex) TermsOf(ranks []int) ([]string, error) {
	out := make([]string, len(ranks))
	for i, r := range ranks {
		t, err := x.Term(r)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}
