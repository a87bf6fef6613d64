// SPDX-License-Identifier: MIT
// Package: lexigraph/artifact
//
// types.go — file layout, sentinel errors and options.
//
// An artifact is two companion files sharing a base path:
//
//	<base>.coo.zst  zstd stream: "LXGC" | version u8 | N u32 | count u64 |
//	                terms digest u64 |
//	                count × (row u32, col u32, present u8), little-endian
//	<base>.terms    UTF-8, one term per line, line i = rank i
//
// Rank meaning is only valid relative to the matching term list, so Load
// always reads and cross-checks both. The digest is the xxhash64 of the term
// file content and ties a coordinate file to the exact list it was saved with.

package artifact

import (
	"errors"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"
)

var (
	// ErrInconsistentArtifact indicates coordinate and term files that do
	// not describe the same vocabulary: header N or digest differs from the
	// term list, a coordinate is out of range, or the terms are not sorted
	// and unique.
	ErrInconsistentArtifact = errors.New("artifact: inconsistent artifact")

	// ErrCorrupt indicates an unreadable coordinate stream: bad magic,
	// unknown version, truncated payload or invalid presence byte.
	ErrCorrupt = errors.New("artifact: corrupt coordinate file")

	// ErrUnencodableTerm indicates a term the line-based term file cannot hold.
	ErrUnencodableTerm = errors.New("artifact: term cannot be encoded")

	// ErrNilGraph indicates a nil term index or graph passed to Save.
	ErrNilGraph = errors.New("artifact: graph is nil")
)

const (
	// CoordsExt is appended to the base path for the coordinate file.
	CoordsExt = ".coo.zst"
	// TermsExt is appended to the base path for the term list.
	TermsExt = ".terms"

	magic   = "LXGC"
	version = 2

	headerSize = len(magic) + 1 + 4 + 8 + 8
	tripleSize = 4 + 4 + 1

	// maxPrealloc caps the coordinate slice reserved from an untrusted count.
	maxPrealloc = 1 << 20
)

// Header is the fixed part of a coordinate stream.
type Header struct {
	// N is the vertex count, equal to the term count.
	N int
	// TermsDigest is TermsDigest of the companion term list.
	TermsDigest uint64
}

// CoordsPath returns the coordinate file path for base.
func CoordsPath(base string) string { return base + CoordsExt }

// TermsPath returns the term list path for base.
func TermsPath(base string) string { return base + TermsExt }

// Option configures Save and Load.
type Option func(*options)

type options struct {
	logger *log.Logger
}

func defaultOptions() options {
	return options{logger: log.New(io.Discard)}
}

// WithLogger reports file activity on l.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// TermsDigest hashes terms exactly as EncodeTerms lays them out.
func TermsDigest(terms []string) uint64 {
	d := xxhash.New()
	for _, t := range terms {
		_, _ = d.WriteString(t)
		_, _ = d.WriteString("\n")
	}
	return d.Sum64()
}
