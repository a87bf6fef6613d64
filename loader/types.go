// SPDX-License-Identifier: MIT
// Package: lexigraph/loader
//
// types.go — sentinel errors, options and the Relations container.

package loader

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

var (
	// ErrMalformedInput indicates the record stream violates the grammar,
	// e.g. a continuation before any term was introduced.
	ErrMalformedInput = errors.New("loader: malformed input")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("loader: invalid option supplied")
)

// Defaults of the grammalecte thesaurus layout.
const (
	DefaultDelimiter          = "|"
	DefaultContinuationMarker = "("
	DefaultSkipLines          = 1
)

// Option configures parsing via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Parse runs.
type Option func(*Options)

// Options holds the parsing parameters.
type Options struct {
	// Delimiter separates fields on both term and continuation lines.
	Delimiter string

	// ContinuationMarker is the prefix identifying continuation lines.
	ContinuationMarker string

	// SkipLines is the number of leading lines ignored (file header).
	SkipLines int

	// Logger receives diagnostics. Defaults to a discarding logger.
	Logger *log.Logger

	err error
}

// DefaultOptions returns the grammalecte layout with a silent logger.
func DefaultOptions() Options {
	return Options{
		Delimiter:          DefaultDelimiter,
		ContinuationMarker: DefaultContinuationMarker,
		SkipLines:          DefaultSkipLines,
		Logger:             log.New(io.Discard),
	}
}

// WithDelimiter sets the field delimiter; it must be non-empty.
func WithDelimiter(d string) Option {
	return func(o *Options) {
		if d == "" {
			o.err = fmt.Errorf("%w: delimiter is empty", ErrOptionViolation)
			return
		}
		o.Delimiter = d
	}
}

// WithContinuationMarker sets the continuation prefix; it must be non-empty.
func WithContinuationMarker(m string) Option {
	return func(o *Options) {
		if m == "" {
			o.err = fmt.Errorf("%w: continuation marker is empty", ErrOptionViolation)
			return
		}
		o.ContinuationMarker = m
	}
}

// WithSkipLines sets how many leading lines are ignored (>= 0).
func WithSkipLines(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: skip lines cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.SkipLines = n
	}
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// resolve applies opts over the defaults and validates the combination.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Delimiter == o.ContinuationMarker {
		return o, fmt.Errorf("%w: delimiter and continuation marker are both %q",
			ErrOptionViolation, o.Delimiter)
	}
	return o, nil
}

// Relations is an ordered term → related-names mapping.
// Terms keep the order of their first appearance in the input.
type Relations struct {
	order   []string
	related map[string][]string
}

// NewRelations returns an empty mapping.
func NewRelations() *Relations {
	return &Relations{related: make(map[string][]string)}
}

// Add introduces term if unseen and appends names to its list.
func (r *Relations) Add(term string, names ...string) {
	if _, ok := r.related[term]; !ok {
		r.order = append(r.order, term)
		r.related[term] = make([]string, 0, len(names))
	}
	r.related[term] = append(r.related[term], names...)
}

// Len returns the number of terms.
func (r *Relations) Len() int { return len(r.order) }

// Has reports whether term is a key of the mapping.
func (r *Relations) Has(term string) bool {
	_, ok := r.related[term]
	return ok
}

// Terms returns a copy of the terms in first-appearance order.
func (r *Relations) Terms() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Related returns a copy of term's related names (nil for unknown terms).
func (r *Relations) Related(term string) []string {
	if r == nil {
		return nil
	}
	names, ok := r.related[term]
	if !ok {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// RelationCount returns the total number of related-name entries.
func (r *Relations) RelationCount() int {
	total := 0
	for _, names := range r.related {
		total += len(names)
	}
	return total
}
