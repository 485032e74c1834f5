package ladder_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/doublets/hamming"
	"github.com/katalvlaran/doublets/ladder"
	"github.com/katalvlaran/doublets/lexicon"
)

// gridLexicon returns every four-letter word over a 12-letter alphabet
// (20736 words), a densely connected graph with diameter 4.
func gridLexicon() *lexicon.Lexicon {
	const alphabet = "abcdefghijkl"
	words := make([]string, 0, 20736)
	for _, a := range alphabet {
		for _, b := range alphabet {
			for _, c := range alphabet {
				for _, d := range alphabet {
					words = append(words, fmt.Sprintf("%c%c%c%c", a, b, c, d))
				}
			}
		}
	}

	return lexicon.New(words...)
}

func benchmarkSearch(b *testing.B, s ladder.Strategy, indexed bool) {
	lex := gridLexicon()
	var opts []ladder.EngineOption
	if indexed {
		idx, err := hamming.NewIndex(context.Background(), lex)
		if err != nil {
			b.Fatal(err)
		}
		opts = append(opts, ladder.WithFinder(idx))
	}
	e := ladder.New(lex, opts...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Search("abcd", "lkji", s)
	}
}

func BenchmarkMinLadder_Scanner(b *testing.B) { benchmarkSearch(b, ladder.BreadthFirst, false) }
func BenchmarkMinLadder_Index(b *testing.B)   { benchmarkSearch(b, ladder.BreadthFirst, true) }
func BenchmarkLadder_Scanner(b *testing.B)    { benchmarkSearch(b, ladder.DepthFirst, false) }
func BenchmarkLadder_Index(b *testing.B)      { benchmarkSearch(b, ladder.DepthFirst, true) }
