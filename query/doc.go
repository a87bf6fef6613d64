// Package query answers questions about a built relation graph: shortest
// paths, degrees, set closures, higher-order related terms and relation
// composition.
//
// An Engine pairs a sparse.TermIndex with the sparse.Graph built from it.
// Both are immutable, so an Engine is safe for concurrent use; every method
// is a pure function of its arguments.
//
// Terms are resolved through Lookup first. An unknown term yields an error
// wrapping ErrUnknownTerm that names the term; no method ever substitutes a
// default rank.
//
// # Shortest paths
//
//	p, err := eng.ShortestPath("chat", "tigre")
//	switch {
//	case errors.Is(err, query.ErrHopLimit): // nothing within the cap
//	case errors.Is(err, query.ErrUnreachable): // no path at all
//	}
//
// ErrHopLimit is always joined with ErrUnreachable, so callers that only test
// ErrUnreachable stay conservative.
//
// # Closure convention
//
// Step 0 is the seed alone (size 1); step k is the set size after k expansion
// rounds. Expansion stops after the first round that does not grow the set,
// and that round is recorded. For A→B→C, Closure(A, 3) is
// [(0,1) (1,2) (2,3) (3,3)].
//
// Related terms of order k are the terms reachable by walks of exactly k+1
// edges, i.e. the row of relation^(k+1).
package query
