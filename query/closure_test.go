package query_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lexigraph/query"
	"github.com/stretchr/testify/require"
)

// steps builds the expected closure steps from the sizes after each round.
func steps(sizes ...int) []query.Step {
	out := make([]query.Step, len(sizes))
	for i, n := range sizes {
		out[i] = query.Step{Iteration: i, Size: n}
	}
	return out
}

func TestClosure_Chain(t *testing.T) {
	t.Parallel()
	eng := chainABC(t)

	c, err := eng.Closure("A", 3)
	require.NoError(t, err)
	require.Equal(t, steps(1, 2, 3, 3), c.Steps)
	require.Equal(t, []int{0, 1, 2}, c.Members)
	require.True(t, c.Fixpoint)

	// cut before the fixpoint is observed
	c, err = eng.Closure("A", 2)
	require.NoError(t, err)
	require.Equal(t, steps(1, 2, 3), c.Steps)
	require.False(t, c.Fixpoint)

	// zero means the engine default
	c, err = eng.Closure("A", 0)
	require.NoError(t, err)
	require.Len(t, c.Steps, 4)

	_, err = eng.Closure("A", -1)
	require.ErrorIs(t, err, query.ErrOptionViolation)
	_, err = eng.Closure("Q", 1)
	require.ErrorIs(t, err, query.ErrUnknownTerm)
}

// TestClosure_Isolated: a term without relations reaches its fixpoint at once.
func TestClosure_Isolated(t *testing.T) {
	t.Parallel()
	eng := chainABC(t)
	for _, k := range []int{1, 2, 7} {
		c, err := eng.Closure("C", k)
		require.NoError(t, err)
		require.Equal(t, steps(1, 1), c.Steps)
		require.Equal(t, []int{2}, c.Members)
		require.True(t, c.Fixpoint)
	}
	d, err := eng.Degree("C")
	require.NoError(t, err)
	require.Zero(t, d)
}

func TestClosure_Cycle(t *testing.T) {
	t.Parallel()
	eng := engineOf(t, map[string][]string{"A": {"B"}, "B": {"A"}, "Z": {"A"}})
	c, err := eng.Closure("A", 5)
	require.NoError(t, err)
	require.Equal(t, steps(1, 2, 2), c.Steps)
	require.Equal(t, []int{0, 1}, c.Members)
}

// TestClosure_MatchesRelated: the closure after k rounds is the union of
// the related terms of orders 0..k-1 plus the seed.
func TestClosure_MatchesRelated(t *testing.T) {
	t.Parallel()
	eng := engineOf(t, randomTable(35, 60, 8))
	for _, term := range eng.Index().Terms()[:12] {
		for k := 1; k <= 3; k++ {
			c, err := eng.Closure(term, k)
			require.NoError(t, err)

			union := map[string]bool{term: true}
			for order := 0; order < k; order++ {
				rel, err := eng.Related(term, order)
				require.NoError(t, err)
				for _, r := range rel {
					union[r] = true
				}
			}
			got, err := eng.Index().TermsOf(c.Members)
			require.NoError(t, err)
			require.Len(t, got, len(union), "%s k=%d", term, k)
			for _, g := range got {
				require.True(t, union[g], "%s k=%d member %s", term, k, g)
			}
		}
	}
}

func TestRelated(t *testing.T) {
	t.Parallel()
	eng := chainABC(t)

	cases := []struct {
		term  string
		order int
		want  []string
	}{
		{"A", 0, []string{"B"}},
		{"A", 1, []string{"C"}},
		{"A", 2, []string{}},
		{"B", 0, []string{"C"}},
		{"C", 0, []string{}},
	}
	for _, tc := range cases {
		got, err := eng.Related(tc.term, tc.order)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%s order %d", tc.term, tc.order)
	}

	_, err := eng.Related("A", -1)
	require.ErrorIs(t, err, query.ErrOptionViolation)
	_, err = eng.Related("nope", 0)
	require.ErrorIs(t, err, query.ErrUnknownTerm)

	// walks may return to the seed
	cyc := engineOf(t, map[string][]string{"A": {"B"}, "B": {"A"}})
	got, err := cyc.Related("A", 1)
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, got)
}

// TestRelated_LargeOrders: orders far beyond the graph size resolve through
// the periodic walk sets, math.MaxInt included.
func TestRelated_LargeOrders(t *testing.T) {
	t.Parallel()

	// chain: every walk dies after two edges
	chain := chainABC(t)
	for _, order := range []int{2, 3, 1_000_000, math.MaxInt - 1, math.MaxInt} {
		got, err := chain.Related("A", order)
		require.NoError(t, err)
		require.Equal(t, []string{}, got, "order %d", order)
	}

	// two-cycle: odd walk lengths end on B, even on A
	pair := engineOf(t, map[string][]string{"A": {"B"}, "B": {"A"}})
	cases := []struct {
		order int
		want  []string
	}{
		{0, []string{"B"}},
		{1, []string{"A"}},
		{1_000_000, []string{"B"}},
		{1_000_001, []string{"A"}},
		{math.MaxInt - 1, []string{"B"}},
		{math.MaxInt, []string{"A"}},
	}
	for _, tc := range cases {
		got, err := pair.Related("A", tc.order)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "order %d", tc.order)
	}

	// a tail into a three-cycle agrees with plain stepping
	tri := engineOf(t, map[string][]string{
		"S": {"X"}, "X": {"Y"}, "Y": {"Z"}, "Z": {"X"},
	})
	for order := 0; order < 12; order++ {
		want, err := tri.Related("S", order%3+9)
		require.NoError(t, err)
		got, err := tri.Related("S", order+3_000_000)
		require.NoError(t, err)
		require.Equal(t, want, got, "order %d", order)
	}
}

// TestRelated_MatchesPower: order k equals row of relation^(k+1).
func TestRelated_MatchesPower(t *testing.T) {
	t.Parallel()
	eng := engineOf(t, randomTable(30, 55, 13))
	for order := 0; order <= 2; order++ {
		pow, err := eng.NthOrder(eng.Graph(), order+1)
		require.NoError(t, err)
		for r, term := range eng.Index().Terms() {
			got, err := eng.Related(term, order)
			require.NoError(t, err)
			want, err := eng.Index().TermsOf(pow.Row(r))
			require.NoError(t, err)
			require.Equal(t, want, got, "%s order %d", term, order)
		}
	}
}
