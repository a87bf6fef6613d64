// SPDX-License-Identifier: MIT
// Package: lexigraph/loader
//
// loader.go — record stream → Relations.

package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single record line; long continuation lines of
// large thesauri exceed bufio's 64 KiB default.
const maxLineSize = 1 << 20

// Load opens path and parses it with Parse.
func Load(path string, opts ...Option) (*Relations, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %q: %w", path, err)
	}
	defer f.Close()

	rel, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rel, nil
}

// Parse reads every record of r into a Relations mapping.
//
// Implementation:
//   - Stage 1: resolve options (ErrOptionViolation).
//   - Stage 2: skip header lines, then classify each non-blank line as a
//     continuation (marker prefix) or a term line.
//   - Stage 3: on the first grammar violation return ErrMalformedInput with
//     the 1-based line number and nothing else.
//
// Complexity: O(total input size).
func Parse(r io.Reader, opts ...Option) (*Relations, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	rel := NewRelations()
	current := "" // most recently introduced term
	lineNo := 0

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		lineNo++
		if lineNo <= o.SkipLines {
			continue
		}
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, o.Delimiter)
		if strings.HasPrefix(line, o.ContinuationMarker) {
			if current == "" {
				return nil, fmt.Errorf("%w: line %d: continuation before any term", ErrMalformedInput, lineNo)
			}
			rel.Add(current, nonEmpty(fields[1:])...)
			continue
		}

		if fields[0] == "" {
			return nil, fmt.Errorf("%w: line %d: empty term name", ErrMalformedInput, lineNo)
		}
		current = fields[0]
		rel.Add(current)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read after line %d: %w", lineNo, err)
	}

	o.Logger.Info("parsed relation records", "lines", lineNo, "terms", rel.Len(), "relations", rel.RelationCount())

	return rel, nil
}

// nonEmpty drops empty names left by trailing or doubled delimiters.
func nonEmpty(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
