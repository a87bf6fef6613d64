package artifact_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/lexigraph/artifact"
	"github.com/katalvlaran/lexigraph/loader"
	"github.com/katalvlaran/lexigraph/sparse"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) (*sparse.TermIndex, *sparse.Graph) {
	t.Helper()
	rel := loader.NewRelations()
	rel.Add("manger", "dévorer", "avaler", "dévorer")
	rel.Add("avaler", "manger")
	rel.Add("dévorer", "manger")
	rel.Add("jeûner")
	idx, g, err := sparse.Build(rel)
	require.NoError(t, err)
	return idx, g
}

// writeRaw writes both files directly, bypassing Save's checks.
func writeRaw(t *testing.T, base string, n int, coords []sparse.Coord, terms []string) {
	t.Helper()
	var cbuf, tbuf bytes.Buffer
	hdr := artifact.Header{N: n, TermsDigest: artifact.TermsDigest(terms)}
	require.NoError(t, artifact.EncodeCoords(&cbuf, hdr, coords))
	require.NoError(t, artifact.EncodeTerms(&tbuf, terms))
	require.NoError(t, os.WriteFile(artifact.CoordsPath(base), cbuf.Bytes(), 0o600))
	require.NoError(t, os.WriteFile(artifact.TermsPath(base), tbuf.Bytes(), 0o600))
}

// zstdOf compresses raw bytes.
func zstdOf(t *testing.T, raw []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(raw, nil)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()
	idx, g := sample(t)
	base := filepath.Join(t.TempDir(), "thes")

	var buf bytes.Buffer
	logger := log.New(&buf)
	require.NoError(t, artifact.Save(base, idx, g, artifact.WithLogger(logger)))

	idx2, g2, err := artifact.Load(base, artifact.WithLogger(logger))
	require.NoError(t, err)

	require.Equal(t, idx.Terms(), idx2.Terms())
	require.Equal(t, g.N(), g2.N())
	// stored triples survive verbatim, duplicates included
	require.Equal(t, g.Coords(), g2.Coords())
	require.Equal(t, g.EdgeCount(), g2.EdgeCount())
	for r := 0; r < g.N(); r++ {
		require.Equal(t, g.Row(r), g2.Row(r))
	}

	require.Contains(t, buf.String(), "artifact saved")
	require.Contains(t, buf.String(), "artifact loaded")

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(base))
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestSaveLoad_Empty(t *testing.T) {
	t.Parallel()
	idx, err := sparse.NewTermIndex(nil)
	require.NoError(t, err)
	g, err := sparse.NewGraph(0, nil)
	require.NoError(t, err)
	base := filepath.Join(t.TempDir(), "empty")

	require.NoError(t, artifact.Save(base, idx, g))
	idx2, g2, err := artifact.Load(base)
	require.NoError(t, err)
	require.Zero(t, idx2.Len())
	require.Zero(t, g2.NNZ())
}

func TestSave_Rejects(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	idx, err := sparse.NewTermIndex([]string{"a", "b\nc"})
	require.NoError(t, err)
	g, err := sparse.NewGraph(2, nil)
	require.NoError(t, err)
	err = artifact.Save(filepath.Join(dir, "x"), idx, g)
	require.ErrorIs(t, err, artifact.ErrUnencodableTerm)

	g3, err := sparse.NewGraph(3, nil)
	require.NoError(t, err)
	err = artifact.Save(filepath.Join(dir, "y"), idx, g3)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	err = artifact.Save(filepath.Join(dir, "z"), nil, g)
	require.ErrorIs(t, err, artifact.ErrNilGraph)
	err = artifact.Save(filepath.Join(dir, "z"), idx, nil)
	require.ErrorIs(t, err, artifact.ErrNilGraph)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

// TestSave_FailedRenameCleansUp: when the term file cannot be renamed into
// place, Save fails and leaves no temp file behind.
func TestSave_FailedRenameCleansUp(t *testing.T) {
	t.Parallel()
	idx, g := sample(t)
	dir := t.TempDir()
	base := filepath.Join(dir, "thes")

	// a non-empty directory where the term file should go blocks the rename
	require.NoError(t, os.MkdirAll(filepath.Join(artifact.TermsPath(base), "sub"), 0o755))
	require.Error(t, artifact.Save(base, idx, g))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.NotContains(t, e.Name(), ".tmp")
	}
}

// TestLoad_StaleTermList: a coordinate file paired with a different term
// list of the same size is rejected by the digest.
func TestLoad_StaleTermList(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	build := func(terms ...string) (*sparse.TermIndex, *sparse.Graph) {
		rel := loader.NewRelations()
		for i, term := range terms {
			rel.Add(term, terms[(i+1)%len(terms)])
		}
		idx, g, err := sparse.Build(rel)
		require.NoError(t, err)
		return idx, g
	}
	oldIdx, oldG := build("a", "b", "c")
	newIdx, newG := build("x", "y", "z")

	base := filepath.Join(dir, "thes")
	other := filepath.Join(dir, "other")
	require.NoError(t, artifact.Save(base, oldIdx, oldG))
	require.NoError(t, artifact.Save(other, newIdx, newG))

	// new coordinates next to the old terms, as a half-finished replace leaves them
	raw, err := os.ReadFile(artifact.CoordsPath(other))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(artifact.CoordsPath(base), raw, 0o600))

	_, _, err = artifact.Load(base)
	require.ErrorIs(t, err, artifact.ErrInconsistentArtifact)
	require.ErrorContains(t, err, "digest")

	// the intact pair still loads
	idx, _, err := artifact.Load(other)
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y", "z"}, idx.Terms())
}

func TestLoad_Inconsistent(t *testing.T) {
	t.Parallel()
	present := func(r, c int) sparse.Coord { return sparse.Coord{Row: r, Col: c, Present: true} }

	cases := []struct {
		name   string
		n      int
		coords []sparse.Coord
		terms  []string
	}{
		{"header N below term count", 2, nil, []string{"a", "b", "c"}},
		{"header N above term count", 4, nil, []string{"a", "b", "c"}},
		{"coordinate beyond term list", 3, []sparse.Coord{present(0, 1), present(2, 3)}, []string{"a", "b", "c"}},
		{"row beyond term list", 3, []sparse.Coord{present(7, 0)}, []string{"a", "b", "c"}},
		{"unsorted terms", 3, nil, []string{"b", "a", "c"}},
		{"duplicate terms", 3, nil, []string{"a", "a", "c"}},
		{"empty term line", 3, nil, []string{"", "a", "c"}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			base := filepath.Join(t.TempDir(), "bad")
			writeRaw(t, base, tc.n, tc.coords, tc.terms)
			_, _, err := artifact.Load(base)
			require.ErrorIs(t, err, artifact.ErrInconsistentArtifact)
		})
	}
}

func TestLoad_Corrupt(t *testing.T) {
	t.Parallel()

	header := func(m string, v byte, n uint32, count uint64) []byte {
		b := append([]byte(m), v)
		b = binary.LittleEndian.AppendUint32(b, n)
		b = binary.LittleEndian.AppendUint64(b, count)
		return binary.LittleEndian.AppendUint64(b, artifact.TermsDigest([]string{"a"}))
	}
	triple := func(r, c uint32, p byte) []byte {
		b := binary.LittleEndian.AppendUint32(nil, r)
		b = binary.LittleEndian.AppendUint32(b, c)
		return append(b, p)
	}
	cat := func(parts ...[]byte) []byte { return bytes.Join(parts, nil) }

	cases := []struct {
		name string
		file []byte
	}{
		{"not zstd", []byte("definitely not a zstd frame")},
		{"empty stream", zstdOf(t, nil)},
		{"short header", zstdOf(t, []byte("LXGC\x02"))},
		{"bad magic", zstdOf(t, header("NOPE", 2, 1, 0))},
		{"unknown version", zstdOf(t, header("LXGC", 9, 1, 0))},
		{"truncated triples", zstdOf(t, cat(header("LXGC", 2, 1, 2), triple(0, 0, 1)))},
		{"bad presence byte", zstdOf(t, cat(header("LXGC", 2, 1, 1), triple(0, 0, 7)))},
		{"trailing data", zstdOf(t, cat(header("LXGC", 2, 1, 1), triple(0, 0, 1), []byte{0}))},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			base := filepath.Join(t.TempDir(), "bad")
			require.NoError(t, os.WriteFile(artifact.CoordsPath(base), tc.file, 0o600))
			require.NoError(t, os.WriteFile(artifact.TermsPath(base), []byte("a\n"), 0o600))
			_, _, err := artifact.Load(base)
			require.ErrorIs(t, err, artifact.ErrCorrupt)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	idx, g := sample(t)
	base := filepath.Join(t.TempDir(), "thes")
	require.NoError(t, artifact.Save(base, idx, g))
	require.NoError(t, os.Remove(artifact.TermsPath(base)))

	_, _, err := artifact.Load(base)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestCoords_NonPresentTriples: presence flags are kept as stored.
func TestCoords_NonPresentTriples(t *testing.T) {
	t.Parallel()
	in := []sparse.Coord{
		{Row: 1, Col: 0, Present: false},
		{Row: 0, Col: 1, Present: true},
	}
	var buf bytes.Buffer
	hdr := artifact.Header{N: 2, TermsDigest: artifact.TermsDigest([]string{"a", "b"})}
	require.NoError(t, artifact.EncodeCoords(&buf, hdr, in))

	got, out, err := artifact.DecodeCoords(&buf)
	require.NoError(t, err)
	require.Equal(t, hdr, got)
	require.Equal(t, in, out)
}
