// Package dijkstra provides a small reference implementation of Dijkstra's
// label-setting shortest-path algorithm over a name-keyed weighted graph.
//
// Overview:
//
//   - The graph is a plain map {node: {neighbor: weight}}; edges are directed,
//     an undirected graph simply lists both directions (see CheckSymmetry).
//   - The minimum tentative distance is selected by a linear scan over the
//     caller's node list, so the algorithm runs in O(V² + E) and ties are
//     broken by position in that list. No priority queue is involved.
//   - ShortestPath reconstructs the path from end back to start through
//     predecessor links and reports ErrUnreachable when end has none.
//
// When to use:
//
//   - As an oracle: FromSparse converts a sparse.Graph into unit weights so
//     that query.ShortestPath can be cross-checked on small inputs.
//   - For small hand-built graphs where readability beats speed.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyNodes:     the node list is empty.
//   - ErrDuplicateNode:  the node list names a node twice.
//   - ErrNodeNotFound:   start, end, a graph key or a neighbor is not in the node list.
//   - ErrNegativeWeight: some edge has a negative weight.
//   - ErrUnreachable:    end cannot be reached from start.
//
// Example:
//
//	g := dijkstra.Graph{
//	    "A": {"B": 1, "C": 5},
//	    "B": {"C": 2},
//	    "C": {},
//	}
//	res, err := dijkstra.ShortestPath(g, []string{"A", "B", "C"}, "A", "C")
//	// res.Path == [A B C], res.Distance == 3
package dijkstra
