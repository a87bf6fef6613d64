package query_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/katalvlaran/lexigraph/loader"
	"github.com/katalvlaran/lexigraph/query"
	"github.com/katalvlaran/lexigraph/sparse"
	"github.com/stretchr/testify/require"
)

// engineOf builds an engine from a term → related-terms table.
func engineOf(t testing.TB, table map[string][]string, opts ...query.Option) *query.Engine {
	t.Helper()
	terms := make([]string, 0, len(table))
	for term := range table {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	rel := loader.NewRelations()
	for _, term := range terms {
		rel.Add(term, table[term]...)
	}
	idx, g, err := sparse.Build(rel)
	require.NoError(t, err)

	eng, err := query.New(idx, g, opts...)
	require.NoError(t, err)
	return eng
}

// chainABC is the A→B→C scenario.
func chainABC(t testing.TB, opts ...query.Option) *query.Engine {
	return engineOf(t, map[string][]string{"A": {"B"}, "B": {"C"}, "C": nil}, opts...)
}

// randomTable builds n terms "t000".. with m random relations.
func randomTable(n, m int, seed int64) map[string][]string {
	rng := rand.New(rand.NewSource(seed))
	name := func(i int) string { return fmt.Sprintf("t%03d", i) }
	table := make(map[string][]string, n)
	for i := 0; i < n; i++ {
		table[name(i)] = nil
	}
	for k := 0; k < m; k++ {
		src := name(rng.Intn(n))
		table[src] = append(table[src], name(rng.Intn(n)))
	}
	return table
}

// recorder is an Observer that keeps every call.
type recorder struct {
	ops  []string
	errs []error
}

func (r *recorder) ObserveQuery(op string, err error, _ time.Duration) {
	r.ops = append(r.ops, op)
	r.errs = append(r.errs, err)
}
