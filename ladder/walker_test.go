package ladder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/doublets/hamming"
	"github.com/katalvlaran/doublets/lexicon"
)

func TestWalker_FloodIgnoresLimits(t *testing.T) {
	lex := lexicon.New("cat", "cot", "cog", "dog", "xyz")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := DefaultSearchOptions()
	o.Ctx = ctx
	o.MaxExpansions = 1
	w := walkerOver(hamming.NewScanner(lex), &queue{}, BreadthFirst, o, 0)
	w.flood("cat")

	assert.Len(t, w.visited, 4)
	assert.NotContains(t, w.visited, "xyz")
	assert.Equal(t, 4, w.res.Expanded)
	assert.Equal(t, 4, w.res.Discovered)
	assert.Empty(t, w.parent["cat"])
}

func TestWalker_RunHonorsContext(t *testing.T) {
	lex := lexicon.New("cat", "cot", "cog", "dog")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := DefaultSearchOptions()
	o.Ctx = ctx
	w := walkerOver(hamming.NewScanner(lex), &queue{}, BreadthFirst, o, 0)
	w.target("dog")

	assert.ErrorIs(t, w.run("cat"), context.Canceled)
	assert.Empty(t, w.res.Path)
}
