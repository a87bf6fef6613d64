// SPDX-License-Identifier: MIT
// Package: lexigraph/query
//
// types.go — sentinel errors, engine options and result types.

package query

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// ErrUnknownTerm indicates a query term that is not in the vocabulary.
	ErrUnknownTerm = errors.New("query: unknown term")

	// ErrUnreachable indicates no path was found between two terms.
	ErrUnreachable = errors.New("query: unreachable")

	// ErrHopLimit accompanies ErrUnreachable when the hop cap cut the search
	// short; a longer path may still exist.
	ErrHopLimit = errors.New("query: hop limit reached")

	// ErrInconsistentGraph indicates a graph whose size differs from the
	// term index it is paired with.
	ErrInconsistentGraph = errors.New("query: graph does not match term index")

	// ErrNilGraph indicates a nil graph or term index.
	ErrNilGraph = errors.New("query: graph is nil")

	// ErrOptionViolation indicates an invalid option or argument value.
	ErrOptionViolation = errors.New("query: invalid option supplied")
)

const (
	// DefaultMaxHops bounds ShortestPath exploration.
	DefaultMaxHops = 100
	// DefaultMaxIterations bounds Closure expansion rounds.
	DefaultMaxIterations = 20
)

// Operation names reported to an Observer.
const (
	OpShortestPath = "shortest_path"
	OpDegree       = "degree"
	OpClosure      = "closure"
	OpRelated      = "related"
	OpNextOrder    = "next_order"
)

// Observer receives one call per completed engine operation. err is the
// operation's result error (nil on success). Implementations must be safe
// for concurrent use.
type Observer interface {
	ObserveQuery(op string, err error, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveQuery(string, error, time.Duration) {}

// Option configures an Engine.
type Option func(*Options)

// Options holds the resolved engine settings.
type Options struct {
	MaxHops       int // 0 = uncapped
	MaxIterations int
	EdgeBudget    int // 0 = unlimited
	Observer      Observer
	Logger        *log.Logger

	err error
}

// DefaultOptions returns the engine defaults: 100 hops, 20 closure rounds,
// no edge budget, no observer and a silent logger.
func DefaultOptions() Options {
	return Options{
		MaxHops:       DefaultMaxHops,
		MaxIterations: DefaultMaxIterations,
		Observer:      nopObserver{},
		Logger:        log.New(io.Discard),
	}
}

// WithMaxHops caps ShortestPath at n hops. 0 disables the cap; negative
// values are ErrOptionViolation.
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max hops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}

// WithMaxIterations sets the default Closure round limit (n >= 1).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max iterations must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithEdgeBudget bounds NextOrder/NthOrder results (0 = unlimited).
func WithEdgeBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: edge budget cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.EdgeBudget = n
	}
}

// WithObserver registers a per-operation hook, typically metrics.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// PathOption tunes a single ShortestPath call.
type PathOption func(*pathOptions)

type pathOptions struct {
	maxHops int
	err     error
}

// WithPathMaxHops overrides the engine hop cap for one call (0 = uncapped).
func WithPathMaxHops(n int) PathOption {
	return func(o *pathOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max hops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxHops = n
	}
}

// Path is a shortest path between two terms, endpoints included.
type Path struct {
	Distance int      `json:"distance" yaml:"distance"`
	Ranks    []int    `json:"ranks" yaml:"ranks"`
	Terms    []string `json:"terms" yaml:"terms"`
}

// Stats summarises the out-degree distribution.
type Stats struct {
	Terms    int     `json:"terms" yaml:"terms"`
	Edges    int     `json:"edges" yaml:"edges"`
	Min      int     `json:"min" yaml:"min"`
	Max      int     `json:"max" yaml:"max"`
	Mean     float64 `json:"mean" yaml:"mean"`
	Isolated int     `json:"isolated" yaml:"isolated"`
}

// TermDegree pairs a term with its out-degree.
type TermDegree struct {
	Rank   int    `json:"rank" yaml:"rank"`
	Term   string `json:"term" yaml:"term"`
	Degree int    `json:"degree" yaml:"degree"`
}

// Step is one closure observation: the set size after Iteration rounds.
type Step struct {
	Iteration int `json:"iteration" yaml:"iteration"`
	Size      int `json:"size" yaml:"size"`
}

// Closure is the outcome of a set expansion from a seed term.
//   - Steps: (0,1) for the seed, then one entry per round performed.
//   - Members: sorted ranks of the final set.
//   - Fixpoint: the last round added nothing.
type Closure struct {
	Steps    []Step `json:"steps" yaml:"steps"`
	Members  []int  `json:"members" yaml:"members"`
	Fixpoint bool   `json:"fixpoint" yaml:"fixpoint"`
}
