package query_test

import (
	"testing"

	"github.com/katalvlaran/lexigraph/query"
)

func BenchmarkShortestPath(b *testing.B) {
	eng := engineOf(b, randomTable(2000, 8000, 1))
	terms := eng.Index().Terms()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = eng.ShortestPath(terms[i%len(terms)], terms[(i*7+3)%len(terms)])
	}
}

func BenchmarkClosure(b *testing.B) {
	eng := engineOf(b, randomTable(2000, 8000, 1))
	terms := eng.Index().Terms()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = eng.Closure(terms[i%len(terms)], query.DefaultMaxIterations)
	}
}

func BenchmarkRelated_Order1(b *testing.B) {
	eng := engineOf(b, randomTable(2000, 8000, 1))
	terms := eng.Index().Terms()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = eng.Related(terms[i%len(terms)], 1)
	}
}
