package ladder

import "github.com/katalvlaran/doublets/hamming"

// Dictionary answers membership queries. *lexicon.Lexicon satisfies it.
type Dictionary interface {
	Contains(w string) bool
}

// IsWordLadder reports whether seq is a valid ladder over dict: non-empty,
// every adjacent pair at Hamming distance exactly 1, every word a member.
// A single member word is a valid ladder.
func IsWordLadder(dict Dictionary, seq []string) bool {
	if len(seq) == 0 {
		return false
	}
	for i := 1; i < len(seq); i++ {
		if hamming.Distance(seq[i-1], seq[i]) != 1 {
			return false
		}
	}
	if dict == nil {
		return false
	}
	for _, w := range seq {
		if !dict.Contains(w) {
			return false
		}
	}

	return true
}
