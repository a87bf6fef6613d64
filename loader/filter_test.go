package loader_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/lexigraph/loader"
	"github.com/stretchr/testify/require"
)

func TestFilter_DropsUnknownNames(t *testing.T) {
	t.Parallel()
	rel, err := loader.Parse(strings.NewReader(thesaurus))
	require.NoError(t, err)

	clean, rep := loader.Filter(rel)

	require.Equal(t, rel.Terms(), clean.Terms())
	require.Equal(t, []string{"matou", "félin", "minet"}, clean.Related("chat"))
	require.Equal(t, []string{"chat"}, clean.Related("félin"))
	require.Equal(t, []string{"chat"}, clean.Related("matou"))

	require.Equal(t, []string{"chat", "félin"}, rep.Terms())
	require.Equal(t, []string{"greffier"}, rep.Discarded("chat"))
	require.Equal(t, []string{"tigre"}, rep.Discarded("félin"))
	require.Empty(t, rep.Discarded("minet"))
	require.Equal(t, 2, rep.Total())

	// the input mapping is untouched
	require.Equal(t, []string{"matou", "félin", "minet", "greffier"}, rel.Related("chat"))
}

// TestFilter_Idempotent: filtering filtered output changes nothing.
func TestFilter_Idempotent(t *testing.T) {
	t.Parallel()
	rel := loader.NewRelations()
	rel.Add("a", "b", "x", "b", "a")
	rel.Add("b", "y", "z")
	rel.Add("c")

	once, _ := loader.Filter(rel)
	twice, rep := loader.Filter(once)

	require.Zero(t, rep.Total())
	require.Empty(t, rep.Terms())
	for _, term := range once.Terms() {
		require.Equal(t, once.Related(term), twice.Related(term))
	}
	// survivors keep order and duplicates
	require.Equal(t, []string{"b", "b", "a"}, twice.Related("a"))
}

func TestFilter_LogsDiscarded(t *testing.T) {
	t.Parallel()
	rel := loader.NewRelations()
	rel.Add("a", "ghost")

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	_, rep := loader.Filter(rel, loader.WithFilterLogger(logger))
	require.Equal(t, 1, rep.Total())
	require.Contains(t, buf.String(), "deleted entries")
	require.Contains(t, buf.String(), "ghost")
}
