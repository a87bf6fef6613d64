// SPDX-License-Identifier: MIT
// Package: lexigraph/artifact
//
// artifact.go — persist and restore a (TermIndex, Graph) pair.

package artifact

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lexigraph/sparse"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"
)

// Save writes the coordinate file and the term list for base.
// Both files are first written to temporary siblings; only once both are
// complete are they renamed into place, so a failed write never touches the
// previous artifact. The coordinate header carries the digest of the term
// list, so Load still rejects a pair left mismatched by a failed rename.
//
// Errors:
//   - ErrNilGraph if idx or g is nil.
//   - ErrUnencodableTerm for a term containing a line break.
//   - sparse.ErrDimensionMismatch if g.N() != idx.Len().
//   - Any I/O error, wrapped with the failing path.
func Save(base string, idx *sparse.TermIndex, g *sparse.Graph, opts ...Option) (err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if idx == nil || g == nil {
		return ErrNilGraph
	}
	if g.N() != idx.Len() {
		return fmt.Errorf("artifact: %w: graph has %d vertices, index %d terms",
			sparse.ErrDimensionMismatch, g.N(), idx.Len())
	}
	terms := idx.Terms()
	for _, t := range terms {
		if strings.ContainsAny(t, "\r\n") {
			return fmt.Errorf("%w: %q contains a line break", ErrUnencodableTerm, t)
		}
	}

	coords := g.Coords()
	hdr := Header{N: g.N(), TermsDigest: TermsDigest(terms)}
	staged := make([]string, 0, 2)
	defer func() {
		if err != nil {
			for _, tmp := range staged {
				_ = os.Remove(tmp)
			}
		}
	}()

	tmp, err := writeTemp(CoordsPath(base), func(w io.Writer) error {
		return EncodeCoords(w, hdr, coords)
	})
	if err != nil {
		return err
	}
	staged = append(staged, tmp)
	tmp, err = writeTemp(TermsPath(base), func(w io.Writer) error {
		return EncodeTerms(w, terms)
	})
	if err != nil {
		return err
	}
	staged = append(staged, tmp)

	for i, path := range []string{CoordsPath(base), TermsPath(base)} {
		if err = os.Rename(staged[i], path); err != nil {
			return fmt.Errorf("artifact: rename %s: %w", path, err)
		}
	}

	o.logger.Info("artifact saved", "base", base, "terms", len(terms), "triples", len(coords))
	return nil
}

// writeTemp streams fill into a temp file next to path and returns its name.
// On failure the temp file is already removed.
func writeTemp(path string, fill func(io.Writer) error) (name string, err error) {
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, file+".tmp*")
	if err != nil {
		return "", fmt.Errorf("artifact: create %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = fill(bw); err != nil {
		return "", fmt.Errorf("artifact: write %s: %w", path, err)
	}
	if err = bw.Flush(); err != nil {
		return "", fmt.Errorf("artifact: write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("artifact: close %s: %w", path, err)
	}
	return tmp.Name(), nil
}

// Load reads both files of base concurrently and cross-checks them.
//
// Implementation:
//   - Stage 1: decode the coordinate stream and the term list in parallel.
//   - Stage 2: require header N == term count, a matching term digest,
//     every coordinate < term count and strictly increasing terms.
//   - Stage 3: rebuild the TermIndex and Graph; ranks are the line numbers.
//
// Errors:
//   - ErrCorrupt for an unreadable coordinate stream.
//   - ErrInconsistentArtifact when the two files disagree.
//   - Any I/O error, wrapped with the failing path.
func Load(base string, opts ...Option) (*sparse.TermIndex, *sparse.Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		hdr    Header
		coords []sparse.Coord
		terms  []string
		eg     errgroup.Group
	)
	eg.Go(func() error {
		f, err := os.Open(CoordsPath(base))
		if err != nil {
			return fmt.Errorf("artifact: %w", err)
		}
		defer f.Close()
		hdr, coords, err = DecodeCoords(bufio.NewReader(f))
		if err != nil {
			return fmt.Errorf("artifact: %s: %w", CoordsPath(base), err)
		}
		return nil
	})
	eg.Go(func() error {
		f, err := os.Open(TermsPath(base))
		if err != nil {
			return fmt.Errorf("artifact: %w", err)
		}
		defer f.Close()
		terms, err = DecodeTerms(f)
		if err != nil {
			return fmt.Errorf("artifact: %s: %w", TermsPath(base), err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	if err := validate(hdr, coords, terms); err != nil {
		return nil, nil, err
	}
	idx, err := sparse.NewTermIndex(terms)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInconsistentArtifact, err)
	}
	g, err := sparse.NewGraph(hdr.N, coords)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInconsistentArtifact, err)
	}

	o.logger.Info("artifact loaded", "base", base, "terms", idx.Len(),
		"triples", g.NNZ(), "edges", g.EdgeCount())
	return idx, g, nil
}

// validate never clamps: any disagreement is fatal.
func validate(hdr Header, coords []sparse.Coord, terms []string) error {
	if hdr.N != len(terms) {
		return fmt.Errorf("%w: header declares %d terms, term list has %d",
			ErrInconsistentArtifact, hdr.N, len(terms))
	}
	if d := TermsDigest(terms); d != hdr.TermsDigest {
		return fmt.Errorf("%w: term list digest %016x, coordinate file expects %016x",
			ErrInconsistentArtifact, d, hdr.TermsDigest)
	}
	for i, c := range coords {
		if c.Row >= len(terms) || c.Col >= len(terms) {
			return fmt.Errorf("%w: coordinate #%d (%d,%d) beyond %d terms",
				ErrInconsistentArtifact, i, c.Row, c.Col, len(terms))
		}
	}
	for i, t := range terms {
		if t == "" {
			return fmt.Errorf("%w: empty term at line %d", ErrInconsistentArtifact, i+1)
		}
		if i > 0 && terms[i-1] >= t {
			return fmt.Errorf("%w: terms not strictly increasing at line %d (%q after %q)",
				ErrInconsistentArtifact, i+1, t, terms[i-1])
		}
	}
	return nil
}

// EncodeCoords writes the zstd-compressed coordinate stream described by hdr.
func EncodeCoords(w io.Writer, hdr Header, coords []sparse.Coord) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	head := make([]byte, headerSize)
	copy(head, magic)
	head[len(magic)] = version
	binary.LittleEndian.PutUint32(head[len(magic)+1:], uint32(hdr.N))
	binary.LittleEndian.PutUint64(head[len(magic)+5:], uint64(len(coords)))
	binary.LittleEndian.PutUint64(head[len(magic)+13:], hdr.TermsDigest)
	if _, err = enc.Write(head); err != nil {
		_ = enc.Close()
		return err
	}

	var rec [tripleSize]byte
	for _, c := range coords {
		binary.LittleEndian.PutUint32(rec[0:], uint32(c.Row))
		binary.LittleEndian.PutUint32(rec[4:], uint32(c.Col))
		rec[8] = 0
		if c.Present {
			rec[8] = 1
		}
		if _, err = enc.Write(rec[:]); err != nil {
			_ = enc.Close()
			return err
		}
	}
	return enc.Close()
}

// DecodeCoords reads a stream written by EncodeCoords and returns its header
// with the triples in stored order. It checks the format only; checks
// against a term list belong to Load.
func DecodeCoords(r io.Reader) (Header, []sparse.Coord, error) {
	var none Header
	dec, err := zstd.NewReader(r)
	if err != nil {
		return none, nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	defer dec.Close()

	head := make([]byte, headerSize)
	if _, err = io.ReadFull(dec, head); err != nil {
		return none, nil, fmt.Errorf("%w: header: %w", ErrCorrupt, err)
	}
	if string(head[:len(magic)]) != magic {
		return none, nil, fmt.Errorf("%w: bad magic %q", ErrCorrupt, head[:len(magic)])
	}
	if v := head[len(magic)]; v != version {
		return none, nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, v)
	}
	hdr := Header{
		N:           int(binary.LittleEndian.Uint32(head[len(magic)+1:])),
		TermsDigest: binary.LittleEndian.Uint64(head[len(magic)+13:]),
	}
	count := binary.LittleEndian.Uint64(head[len(magic)+5:])

	coords := make([]sparse.Coord, 0, min(count, maxPrealloc))
	var rec [tripleSize]byte
	for i := uint64(0); i < count; i++ {
		if _, err = io.ReadFull(dec, rec[:]); err != nil {
			return none, nil, fmt.Errorf("%w: triple #%d of %d: %w", ErrCorrupt, i, count, err)
		}
		var present bool
		switch rec[8] {
		case 0:
		case 1:
			present = true
		default:
			return none, nil, fmt.Errorf("%w: triple #%d has presence byte %d", ErrCorrupt, i, rec[8])
		}
		coords = append(coords, sparse.Coord{
			Row:     int(binary.LittleEndian.Uint32(rec[0:])),
			Col:     int(binary.LittleEndian.Uint32(rec[4:])),
			Present: present,
		})
	}
	// trailing bytes mean the count lied
	if _, err = io.ReadFull(dec, rec[:1]); !errors.Is(err, io.EOF) {
		return none, nil, fmt.Errorf("%w: data after %d triples", ErrCorrupt, count)
	}

	return hdr, coords, nil
}

// EncodeTerms writes one term per line.
func EncodeTerms(w io.Writer, terms []string) error {
	for _, t := range terms {
		if _, err := io.WriteString(w, t+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// DecodeTerms reads one term per line; a trailing newline is optional.
func DecodeTerms(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var terms []string
	for sc.Scan() {
		terms = append(terms, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return terms, nil
}
