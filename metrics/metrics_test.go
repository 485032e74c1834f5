package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/doublets/ladder"
	"github.com/katalvlaran/doublets/lexicon"
	"github.com/katalvlaran/doublets/metrics"
)

func TestRecorder_CountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	lex := lexicon.New("cat", "cot", "cog", "dog", "emu")
	rec.SetLexiconWords(lex.Len())
	e := ladder.New(lex, ladder.WithObserver(rec))

	e.MinLadder("cat", "dog") // found
	e.MinLadder("cat", "emu") // none
	e.Ladder("cat", "dog")    // found
	_, err = e.Search("cat", "dog", ladder.DepthFirst, ladder.WithMaxExpansions(1))
	require.ErrorIs(t, err, ladder.ErrExpansionLimit)

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.SearchesTotal.WithLabelValues("bfs", metrics.OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.SearchesTotal.WithLabelValues("bfs", metrics.OutcomeNone)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.SearchesTotal.WithLabelValues("dfs", metrics.OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.SearchesTotal.WithLabelValues("dfs", metrics.OutcomeError)))
	assert.Equal(t, 5.0, testutil.ToFloat64(rec.LexiconWords))

	const want = `
# HELP doublets_lexicon_words Number of words in the loaded lexicon
# TYPE doublets_lexicon_words gauge
doublets_lexicon_words 5
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "doublets_lexicon_words"))
	assert.Equal(t, 2, testutil.CollectAndCount(rec.Expansions))
}

func TestRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	_, err = metrics.NewRecorder(reg)
	assert.Error(t, err)
}

func TestRecorder_NilResult(t *testing.T) {
	rec, err := metrics.NewRecorder(prometheus.NewRegistry())
	require.NoError(t, err)

	rec.ObserveSearch(nil, nil)
	assert.Zero(t, testutil.CollectAndCount(rec.SearchesTotal))
}
