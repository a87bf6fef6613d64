package sparse_test

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/lexigraph/sparse"
)

// mapRelations is a minimal sparse.Relations over a plain map.
type mapRelations map[string][]string

func (m mapRelations) Terms() []string {
	out := make([]string, 0, len(m))
	for t := range m {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (m mapRelations) Related(term string) []string { return m[term] }

// chainABC is the A→B→C vocabulary used across tests.
func chainABC() mapRelations {
	return mapRelations{"A": {"B"}, "B": {"C"}, "C": nil}
}

// randomCoords samples m present coordinates uniformly over n×n with a fixed seed.
func randomCoords(n, m int, seed int64) []sparse.Coord {
	rng := rand.New(rand.NewSource(seed))
	out := make([]sparse.Coord, m)
	for i := range out {
		out[i] = sparse.Coord{Row: rng.Intn(n), Col: rng.Intn(n), Present: true}
	}
	return out
}

// denseOf expands a graph into an n×n boolean table (reference model).
func denseOf(g *sparse.Graph) [][]bool {
	d := make([][]bool, g.N())
	for r := range d {
		d[r] = make([]bool, g.N())
		for _, c := range g.Row(r) {
			d[r][c] = true
		}
	}
	return d
}

// bruteCompose is the O(n³) boolean product used as an oracle.
func bruteCompose(a, b [][]bool) [][]bool {
	n := len(a)
	out := make([][]bool, n)
	for i := 0; i < n; i++ {
		out[i] = make([]bool, n)
		for k := 0; k < n; k++ {
			if !a[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if b[k][j] {
					out[i][j] = true
				}
			}
		}
	}
	return out
}
