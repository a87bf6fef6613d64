// Package bfs provides a hop-capped breadth-first search over a
// sparse.Graph, returning unweighted shortest-path distances, parent links
// and visit order, all indexed by rank.
//
// What
//
//   - Explore ranks in non-decreasing hop count from a start rank, following
//     directed edges only (row r → its targets).
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  per-rank hop count from start (-1 when unreached)
//   - Parent: per-rank predecessor in the BFS tree (-1 for start/unreached)
//   - Truncated: whether the depth cap cut off at least one unvisited rank
//   - Supports an OnVisit hook (may abort with an error) and neighbor filtering.
//   - Honors a MaxDepth cap (d>0) or explicit "no limit" (d==0).
//   - Optional early exit once a target rank is discovered.
//
// Why
//
//   - Unweighted shortest paths in O(V + E).
//   - The cap bounds work on dense relations deterministically; Truncated lets
//     callers tell "no path at all" from "no path within the cap".
//
// Determinism
//
//	sparse.Graph rows are sorted by rank, so neighbors are enqueued in
//	ascending rank and the visit order, depths and parents are reproducible.
//
// Complexity (V = ranks, E = distinct edges)
//
//   - Time:   O(V + E) worst case, less with a cap or an early-exit target
//   - Memory: O(V) for queue, Depth and Parent
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithMaxDepth(100),
//	    bfs.WithTarget(goal),
//	)
//	if err != nil { ... } // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, hook errors
//	path, err := res.PathTo(goal) // ErrNoPath when goal was not reached
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start rank is outside [0,N).
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo when the destination was not reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
