package ladder_test

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/doublets/hamming"
	"github.com/katalvlaran/doublets/ladder"
	"github.com/katalvlaran/doublets/lexicon"
)

// sparseLexicon keeps roughly a third of all three-letter words over a small
// alphabet, chosen with a fixed seed so failures are reproducible.
func sparseLexicon() *lexicon.Lexicon {
	const alphabet = "abcdeo"
	r := rand.New(rand.NewSource(42))
	var words []string
	for _, a := range alphabet {
		for _, b := range alphabet {
			for _, c := range alphabet {
				if r.Intn(3) == 0 {
					words = append(words, fmt.Sprintf("%c%c%c", a, b, c))
				}
			}
		}
	}

	return lexicon.New(words...)
}

// distances computes exact hop counts from start with a plain BFS over the
// same neighbor relation, independent of the engine's walker.
func distances(f hamming.Finder, start string) map[string]int {
	dist := map[string]int{start: 0}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range f.Neighbors(cur) {
			if _, ok := dist[n]; !ok {
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}

	return dist
}

// TestLadderProperties checks, for every ordered pair of words:
//   - both searches agree on whether a ladder exists,
//   - returned ladders are valid, start at start and end at end,
//   - the breadth-first ladder is never longer than the depth-first one and
//     has exactly the true shortest length,
//   - reversed ladders are valid,
//   - repeated calls are identical.
func TestLadderProperties(t *testing.T) {
	lex := sparseLexicon()
	require.Greater(t, lex.Len(), 30)

	idx, err := hamming.NewIndex(context.Background(), lex)
	require.NoError(t, err)
	scan := ladder.New(lex)
	indexed := ladder.New(lex, ladder.WithFinder(idx))

	words := lex.Words()
	for _, start := range words {
		dist := distances(hamming.NewScanner(lex), start)
		for _, end := range words {
			anyL := scan.Ladder(start, end)
			minL := scan.MinLadder(start, end)

			d, reachable := dist[end]
			require.Equal(t, reachable, len(anyL) > 0, "%s→%s dfs reachability", start, end)
			require.Equal(t, reachable, len(minL) > 0, "%s→%s bfs reachability", start, end)
			if !reachable {
				continue
			}

			for _, l := range [][]string{anyL, minL} {
				require.True(t, ladder.IsWordLadder(lex, l), "%s→%s invalid %v", start, end, l)
				require.Equal(t, start, l[0])
				require.Equal(t, end, l[len(l)-1])
				rev := slices.Clone(l)
				slices.Reverse(rev)
				require.True(t, ladder.IsWordLadder(lex, rev))
			}
			require.LessOrEqual(t, len(minL), len(anyL))
			require.Equal(t, d+1, len(minL), "%s→%s not minimal", start, end)

			require.Equal(t, anyL, scan.Ladder(start, end), "dfs idempotence")
			require.Equal(t, minL, scan.MinLadder(start, end), "bfs idempotence")
			require.Equal(t, anyL, indexed.Ladder(start, end), "finders disagree (dfs)")
			require.Equal(t, minL, indexed.MinLadder(start, end), "finders disagree (bfs)")
		}
	}
}
