// Package bfs provides breadth-first search over a sparse.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores ranks in increasing distance from a start rank,
// with optional hooks, depth limiting, neighbor filtering and early exit.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/lexigraph/sparse"
)

// queueItem pairs a rank with its BFS depth.
type queueItem struct {
	rank  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *sparse.Graph
	opts  BFSOptions
	queue []queueItem
	head  int
	found bool
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error
// (the partial result is returned alongside a hook error).
func BFS(g *sparse.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.N()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: rank %d outside [0,%d)", ErrStartVertexNotFound, start, n)
	}
	if o.Target >= n {
		return nil, fmt.Errorf("%w: target rank %d outside [0,%d)", ErrOptionViolation, o.Target, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, 16),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, 16),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	// Seed queue with start rank (no parent)
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks rank discovered at depth d, records its parent,
// and adds it to the queue. Discovering the target ends the search.
func (w *walker) enqueue(rank, d, parent int) {
	w.res.Depth[rank] = d
	w.res.Parent[rank] = parent
	w.queue = append(w.queue, queueItem{rank: rank, depth: d})
	if rank == w.opts.Target {
		w.found = true
	}
}

// loop processes the queue until empty, error, or target discovery.
func (w *walker) loop() error {
	for !w.found && w.head < len(w.queue) {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the next item.
func (w *walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++
	return item
}

// visit records the rank in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.rank)
	if err := w.opts.OnVisit(item.rank, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at rank %d: %w", item.rank, err)
	}
	return nil
}

// enqueueNeighbors walks the sorted row of item, applies filtering and
// MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	capped := w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth
	for _, nbr := range w.graph.Row(item.rank) {
		if w.res.Depth[nbr] >= 0 {
			continue
		}
		if !w.opts.FilterNeighbor(item.rank, nbr) {
			continue
		}
		if capped {
			w.res.Truncated = true
			return
		}
		w.enqueue(nbr, nextDepth, item.rank)
		if w.found {
			return
		}
	}
}
