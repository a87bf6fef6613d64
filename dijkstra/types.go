// Package dijkstra defines the graph model, result type and sentinel errors
// of the reference shortest-path algorithm.
package dijkstra

import "errors"

// Sentinel errors returned by ShortestPath.
var (
	// ErrEmptyNodes indicates an empty node list.
	ErrEmptyNodes = errors.New("dijkstra: node list is empty")

	// ErrDuplicateNode indicates a node listed more than once.
	ErrDuplicateNode = errors.New("dijkstra: duplicate node")

	// ErrNodeNotFound indicates a start, end, graph key or neighbor that is
	// missing from the node list.
	ErrNodeNotFound = errors.New("dijkstra: node not found")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates end has no predecessor chain back to start.
	ErrUnreachable = errors.New("dijkstra: end unreachable from start")
)

// Graph maps each node to its weighted neighbors: g[u][v] is the weight of u→v.
// A node without outgoing edges may be absent or map to an empty set.
type Graph map[string]map[string]int64

// Result is a shortest path from start to end, both inclusive.
// Distance is the sum of edge weights along Path.
type Result struct {
	Path     []string
	Distance int64
}
