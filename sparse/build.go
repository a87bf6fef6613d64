// SPDX-License-Identifier: MIT
// Package: lexigraph/sparse
//
// build.go — filtered relations → (TermIndex, Graph).
//
// Contract:
//   - Every term of rel receives a rank, including terms with no related names.
//   - One Present coordinate per related entry, emitted in ascending source
//     rank, then in the stored order of the related list.
//   - A related name outside the vocabulary is ErrUnknownTerm: the builder
//     never drops or renumbers silently.

package sparse

import "fmt"

// Build assigns ranks to rel's terms and emits the edge coordinates.
//
// Errors:
//   - ErrNilGraph if rel is nil.
//   - ErrEmptyTerm / ErrDuplicateTerm from NewTermIndex.
//   - ErrUnknownTerm if a related name is not itself a term.
//
// Complexity: O(N log N + M) time, O(N + M) space.
func Build(rel Relations) (*TermIndex, *Graph, error) {
	if rel == nil {
		return nil, nil, fmt.Errorf("build: %w", ErrNilGraph)
	}
	idx, err := NewTermIndex(rel.Terms())
	if err != nil {
		return nil, nil, fmt.Errorf("build: %w", err)
	}

	coords := make([]Coord, 0, idx.Len())
	for src, term := range idx.terms {
		for _, name := range rel.Related(term) {
			dst, ok := idx.ranks[name]
			if !ok {
				return nil, nil, fmt.Errorf("build: %q relates to %q: %w", term, name, ErrUnknownTerm)
			}
			coords = append(coords, Coord{Row: src, Col: dst, Present: true})
		}
	}

	g, err := NewGraph(idx.Len(), coords)
	if err != nil {
		return nil, nil, fmt.Errorf("build: %w", err)
	}

	return idx, g, nil
}
