// Package dijkstra implements Dijkstra's label-setting algorithm with a
// linear-scan minimum selection.
//
// Complexity:
//
//   - Time:  O(V² + E): V selections, each scanning the remaining nodes.
//   - Space: O(V) for distances, predecessors and the finalized set.
package dijkstra

import (
	"fmt"
	"math"
)

// CheckSymmetry reports whether g describes an undirected graph: every edge
// u→v of weight w has a reverse v→u of the same weight. A missing reverse
// node, a missing reverse edge or a different weight yields false.
func CheckSymmetry(g Graph) bool {
	for u, links := range g {
		for v, w := range links {
			back, ok := g[v][u]
			if !ok || back != w {
				return false
			}
		}
	}
	return true
}

// ShortestPath computes the minimum-weight path from start to end.
//
// Preconditions and validation (in order):
//  1. nodes must be non-empty (ErrEmptyNodes) and free of duplicates (ErrDuplicateNode).
//  2. start, end, every key of g and every neighbor must be in nodes (ErrNodeNotFound).
//  3. No edge may have a negative weight (ErrNegativeWeight).
//
// nodes is never modified; its order decides ties between equal distances.
func ShortestPath(g Graph, nodes []string, start, end string) (*Result, error) {
	// 1) Index the node list.
	if len(nodes) == 0 {
		return nil, ErrEmptyNodes
	}
	pos := make(map[string]int, len(nodes))
	for i, n := range nodes {
		if _, dup := pos[n]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n)
		}
		pos[n] = i
	}

	// 2) Validate endpoints and edges.
	if _, ok := pos[start]; !ok {
		return nil, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}
	if _, ok := pos[end]; !ok {
		return nil, fmt.Errorf("%w: end %q", ErrNodeNotFound, end)
	}
	for u, links := range g {
		if _, ok := pos[u]; !ok {
			return nil, fmt.Errorf("%w: graph node %q", ErrNodeNotFound, u)
		}
		for v, w := range links {
			if _, ok := pos[v]; !ok {
				return nil, fmt.Errorf("%w: neighbor %q of %q", ErrNodeNotFound, v, u)
			}
			if w < 0 {
				return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, v, w)
			}
		}
	}

	// 3) Run the label-setting loop.
	r := &runner{g: g, nodes: nodes, pos: pos}
	r.init(start)
	r.process()

	// 4) Rebuild the path backwards; a missing predecessor means unreachable.
	return r.path(start, end)
}

// runner holds the mutable state of one execution, indexed by node position.
type runner struct {
	g     Graph
	nodes []string
	pos   map[string]int
	dist  []int64 // math.MaxInt64 = not reached yet
	pred  []int   // -1 = none
	done  []bool
}

// init sets every distance to +∞ except start, and clears predecessors.
func (r *runner) init(start string) {
	n := len(r.nodes)
	r.dist = make([]int64, n)
	r.pred = make([]int, n)
	r.done = make([]bool, n)
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
		r.pred[i] = -1
	}
	r.dist[r.pos[start]] = 0
}

// process finalizes nodes in order of increasing tentative distance until
// none is left. Nodes still at +∞ are unreachable and need no relaxation,
// so the loop ends as soon as the minimum is +∞.
func (r *runner) process() {
	for {
		u := r.findMin()
		if u < 0 {
			return
		}
		r.done[u] = true
		r.relax(u)
	}
}

// findMin returns the unfinalized node of smallest finite distance, the
// first one in node order on ties, or -1.
func (r *runner) findMin() int {
	best := -1
	for i, d := range r.dist {
		if r.done[i] || d == math.MaxInt64 {
			continue
		}
		if best < 0 || d < r.dist[best] {
			best = i
		}
	}
	return best
}

// relax improves every neighbor reachable through u.
func (r *runner) relax(u int) {
	for name, w := range r.g[r.nodes[u]] {
		v := r.pos[name]
		if r.done[v] {
			continue
		}
		if nd := r.dist[u] + w; nd < r.dist[v] {
			r.dist[v] = nd
			r.pred[v] = u
		}
	}
}

// path follows predecessors from end to start and reverses the chain.
func (r *runner) path(start, end string) (*Result, error) {
	s, e := r.pos[start], r.pos[end]
	if e != s && r.pred[e] < 0 {
		return nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, end, start)
	}
	var rev []string
	for cur := e; cur != s; cur = r.pred[cur] {
		rev = append(rev, r.nodes[cur])
	}
	rev = append(rev, r.nodes[s])

	out := make([]string, len(rev))
	for i, n := range rev {
		out[len(rev)-1-i] = n
	}
	return &Result{Path: out, Distance: r.dist[e]}, nil
}
