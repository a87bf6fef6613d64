// SPDX-License-Identifier: MIT
// Package: lexigraph/loader
//
// filter.go — consistency pass: drop related names that are not terms.

package loader

import (
	"io"

	"github.com/charmbracelet/log"
)

// Report lists, per term, the related names Filter dropped.
type Report struct {
	order     []string
	discarded map[string][]string
	total     int
}

// Terms returns the terms that lost at least one name, in input order.
func (r *Report) Terms() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Discarded returns the names dropped from term's list, in input order.
func (r *Report) Discarded(term string) []string {
	names := r.discarded[term]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Total returns the number of dropped entries over all terms.
func (r *Report) Total() int { return r.total }

// FilterOption configures Filter.
type FilterOption func(*filterOptions)

type filterOptions struct {
	logger *log.Logger
}

// WithFilterLogger logs every term that lost names at debug level.
func WithFilterLogger(l *log.Logger) FilterOption {
	return func(o *filterOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Filter returns a new mapping where every related list keeps only names
// that are keys of rel, in their original order (duplicates among survivors
// are kept). rel itself is not modified.
//
// Complexity: O(total relation entries).
func Filter(rel *Relations, opts ...FilterOption) (*Relations, *Report) {
	o := filterOptions{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}

	out := NewRelations()
	rep := &Report{discarded: make(map[string][]string)}

	for _, term := range rel.order {
		names := rel.related[term]
		kept := make([]string, 0, len(names))
		var dropped []string
		for _, n := range names {
			if rel.Has(n) {
				kept = append(kept, n)
				continue
			}
			dropped = append(dropped, n)
		}
		out.Add(term, kept...)

		if len(dropped) > 0 {
			rep.order = append(rep.order, term)
			rep.discarded[term] = dropped
			rep.total += len(dropped)
			o.logger.Debug("deleted entries", "term", term, "names", dropped)
		}
	}

	o.logger.Info("consistency filter done", "terms", out.Len(), "dropped", rep.total, "affected", len(rep.order))

	return out, rep
}
