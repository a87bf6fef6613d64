// Package sparse stores a term relation graph as a sparse boolean adjacency
// structure and turns a filtered term → related-terms mapping into one.
//
// What
//
//   - TermIndex: a bijection between terms and dense ranks in [0,N).
//     Ranks follow lexicographic (byte-wise) order of the terms, so the
//     same vocabulary always yields the same ranks.
//   - Graph: the N×N presence matrix, kept both as the raw coordinate
//     triples (row rank, column rank, presence flag) and as a compressed
//     row index (row pointers + sorted, de-duplicated column ranks) used
//     by every query.
//   - Build: sorts terms, assigns ranks, emits one coordinate per
//     (term, related term) pair.
//   - Compose / Power: boolean relation composition (the "next order"
//     graph), computed row by row without ever allocating a dense matrix.
//
// Duplicates
//
//	Build emits one coordinate per entry of a related list, so a list that
//	names the same term twice yields two identical triples. The row index
//	collapses them: presence semantics (HasEdge, Row, OutDegree) see a single
//	edge, while NNZ still reports the stored triple count. Numeric
//	accumulation over Coords() is therefore NOT meaningful.
//
// Lifecycle
//
//	A Graph and its TermIndex are immutable after construction. Accessors
//	hand out copies (Coords, Terms) or read-only views (Row) so that any
//	number of goroutines may query the same pair without locking.
//
// Complexity (N = terms, M = stored triples, E = distinct edges)
//
//   - NewTermIndex: O(N log N)
//   - NewGraph:     O(N + M log M) (per-row sort of column ranks)
//   - Row/OutDegree/HasEdge: O(1) / O(1) / O(log deg)
//   - Compose(a,b): O(N + Σ_{a→c} deg_b(c)), proportional to the number of
//     combined edge pairs; it grows quickly as the relation densifies.
//
// Errors
//
//   - ErrEmptyTerm, ErrDuplicateTerm  invalid vocabulary.
//   - ErrUnknownTerm                  a related name is not a vocabulary term.
//   - ErrOutOfRange                   a coordinate or rank outside [0,N).
//   - ErrDimensionMismatch            composing graphs of different sizes.
//   - ErrEdgeBudget                   composition exceeded WithEdgeBudget.
//   - ErrOptionViolation              invalid option value.
package sparse
