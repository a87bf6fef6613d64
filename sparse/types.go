// SPDX-License-Identifier: MIT
// Package: lexigraph/sparse
//
// types.go — sentinel errors, coordinate type and composition options.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach context with fmt.Errorf("...: %w", ErrX).
//   - No panics on user input.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTerm indicates an empty string was offered as a vocabulary term.
	ErrEmptyTerm = errors.New("sparse: term is empty")

	// ErrDuplicateTerm indicates the same term appeared twice in a vocabulary,
	// which would break the term ↔ rank bijection.
	ErrDuplicateTerm = errors.New("sparse: duplicate term")

	// ErrUnknownTerm indicates a related name that is not a vocabulary term.
	// Build expects filtered input and reports rather than drops such names.
	ErrUnknownTerm = errors.New("sparse: unknown term")

	// ErrOutOfRange indicates a rank or coordinate outside [0,N).
	ErrOutOfRange = errors.New("sparse: rank out of range")

	// ErrDimensionMismatch indicates two graphs of different vertex counts.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrEdgeBudget indicates a composition produced more distinct edges
	// than the configured budget allows.
	ErrEdgeBudget = errors.New("sparse: edge budget exceeded")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("sparse: invalid option supplied")

	// ErrNilGraph indicates a nil graph or relation source.
	ErrNilGraph = errors.New("sparse: graph is nil")
)

// Coord is one stored coordinate triple of the adjacency structure:
// Row is the source rank, Col the target rank and Present the presence flag.
// Triples with Present == false are kept in Coords() but carry no edge.
type Coord struct {
	Row     int
	Col     int
	Present bool
}

// ComposeOption configures Compose and Power.
type ComposeOption func(*composeOptions)

// composeOptions holds the resolved composition settings.
type composeOptions struct {
	edgeBudget int // 0 = unlimited
	err        error
}

// WithEdgeBudget aborts a composition with ErrEdgeBudget as soon as the
// result holds more than n distinct edges.
//
//	n > 0:  budget of n edges
//	n == 0: explicit "no budget"
//	n < 0:  invalid → ErrOptionViolation
func WithEdgeBudget(n int) ComposeOption {
	return func(o *composeOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: edge budget cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.edgeBudget = n
	}
}

// Relations is the read-only view Build needs of a term → related-terms
// mapping. *loader.Relations satisfies it.
type Relations interface {
	// Terms returns every term of the mapping.
	Terms() []string
	// Related returns the related-term names of term, in stored order.
	Related(term string) []string
}
