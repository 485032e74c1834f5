package ladder_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/doublets/ladder"
	"github.com/katalvlaran/doublets/lexicon"
)

func TestIsWordLadder(t *testing.T) {
	lex := lexicon.New("cat", "cot", "cog", "dog")

	cases := []struct {
		name string
		seq  []string
		want bool
	}{
		{"empty", []string{}, false},
		{"nil", nil, false},
		{"single member", []string{"cat"}, true},
		{"single non-member", []string{"cut"}, false},
		{"full ladder", []string{"cat", "cot", "cog", "dog"}, true},
		{"distance two", []string{"cat", "cot", "dog"}, false},
		{"repeated word", []string{"cat", "cat"}, false},
		{"length mismatch", []string{"cat", "cats"}, false},
		{"edge ok, member missing", []string{"cat", "cut"}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ladder.IsWordLadder(lex, tc.seq), tc.name)
	}
}

func TestIsWordLadder_Reverse(t *testing.T) {
	lex := lexicon.New("cat", "cot", "cog", "dog")
	seq := []string{"cat", "cot", "cog", "dog"}
	rev := slices.Clone(seq)
	slices.Reverse(rev)

	assert.True(t, ladder.IsWordLadder(lex, seq))
	assert.True(t, ladder.IsWordLadder(lex, rev))
}

func TestIsWordLadder_NilDictionary(t *testing.T) {
	assert.False(t, ladder.IsWordLadder(nil, []string{"cat"}))

	var lex *lexicon.Lexicon
	assert.False(t, ladder.IsWordLadder(lex, []string{"cat"}))
}
