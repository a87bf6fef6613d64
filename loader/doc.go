// Package loader reads a raw thesaurus-style record stream into an ordered
// term → related-terms mapping and repairs it so that every related name is
// itself a term.
//
// Record grammar (defaults match the grammalecte thesaurus layout)
//
//	header line(s)                  skipped (WithSkipLines, default 1)
//	term|metadata                   introduces "term"; metadata is dropped
//	(tag)|name|name|...             continuation: names appended to the
//	                                most recently introduced term
//
// A continuation line is recognised by its leading marker (default "(");
// its first field (the marker field, typically a part-of-speech tag) is
// discarded. Blank lines are ignored. A continuation that appears before any
// term, or a term line with an empty name, is ErrMalformedInput and aborts
// the whole load: no partial mapping is ever returned.
//
// Consistency filter
//
//	Filter keeps, for every term, only the related names that are keys of the
//	mapping, preserving their order. Dropping is unconditional; the names
//	that were dropped are collected in a Report for diagnostics and, when a
//	logger is configured, logged at debug level. Filter is idempotent.
//
// Usage
//
//	rel, err := loader.Load("thes_fr.dat", loader.WithLogger(logger))
//	if err != nil { ... }                 // ErrMalformedInput, I/O errors
//	clean, report := loader.Filter(rel)
//	idx, g, err := sparse.Build(clean)
package loader
