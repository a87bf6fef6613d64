// Package bfs provides tunable options and error definitions
// for breadth‐first search over a sparse.Graph.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start rank is outside [0,N).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a destination the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// noTarget marks "explore everything reachable".
const noTarget = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// OnVisit is called when visiting a rank. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(rank, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Target, if >= 0, stops the search as soon as this rank is discovered.
	Target int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no target (full exploration)
//   - no filtering (all neighbors allowed)
//   - no-op OnVisit hook
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		Target:         noTarget,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(rank, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithTarget stops the search once rank t is discovered. Its depth and
// parent chain are final at that moment. A negative t is ErrOptionViolation.
func WithTarget(t int) Option {
	return func(o *BFSOptions) {
		if t < 0 {
			o.err = fmt.Errorf("%w: target rank cannot be negative (%d)", ErrOptionViolation, t)
			return
		}
		o.Target = t
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Start: the start rank.
//   - Order: ranks visited, in visit sequence.
//   - Depth: per-rank distance (in edges) from Start, -1 if unreached.
//   - Parent: per-rank predecessor in the BFS tree, -1 for Start and unreached ranks.
//   - Truncated: MaxDepth prevented at least one unvisited rank from being enqueued.
type BFSResult struct {
	Start     int
	Order     []int
	Depth     []int
	Parent    []int
	Truncated bool
}

// Reached reports whether rank v was discovered.
func (r *BFSResult) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// PathTo reconstructs the rank path from the start to dest, inclusive.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to rank %d", ErrNoPath, dest)
	}
	// build reversed path; Depth bounds the walk so a corrupt Parent can't loop
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur != -1 && len(path) <= r.Depth[dest]; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
