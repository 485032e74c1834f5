package lexicon

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

// Lexicon is an immutable, sorted set of lowercase words.
//
// words holds every word once, ascending. byLen partitions the same words by
// rune length; each partition keeps ascending order. A nil *Lexicon behaves
// as the empty set.
type Lexicon struct {
	words   []string
	byLen   map[int][]string
	lengths []int
}

// New builds a Lexicon from words. Each word is lowercased; empty words are
// dropped and duplicates collapse into one entry.
// Complexity: O(n log n).
func New(words ...string) *Lexicon {
	return FromSeq(slices.Values(words))
}

// FromSeq builds a Lexicon from an iterator of raw tokens, applying the same
// normalization as New.
func FromSeq(seq iter.Seq[string]) *Lexicon {
	var words []string
	for w := range seq {
		if w = normalize(w); w != "" {
			words = append(words, w)
		}
	}
	slices.Sort(words)
	words = slices.Compact(words)

	lex := &Lexicon{
		words: words,
		byLen: make(map[int][]string),
	}
	// words is sorted, so appending keeps every partition sorted too
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		if _, ok := lex.byLen[n]; !ok {
			lex.lengths = append(lex.lengths, n)
		}
		lex.byLen[n] = append(lex.byLen[n], w)
	}
	slices.Sort(lex.lengths)

	return lex
}

// normalize lowercases a token. It is the only transformation applied at
// ingestion.
func normalize(w string) string {
	return strings.ToLower(w)
}

// Contains reports whether w is a member. The query is not normalized:
// "Cat" is never a member because every stored word is lowercase.
// Complexity: O(log n · |w|).
func (l *Lexicon) Contains(w string) bool {
	if l == nil {
		return false
	}
	_, found := slices.BinarySearch(l.words, w)

	return found
}

// Len returns the number of distinct words.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}

	return len(l.words)
}

// All yields every word in ascending order.
func (l *Lexicon) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if l == nil {
			return
		}
		for _, w := range l.words {
			if !yield(w) {
				return
			}
		}
	}
}

// Words returns a copy of all words in ascending order.
func (l *Lexicon) Words() []string {
	if l == nil {
		return []string{}
	}

	return slices.Clone(l.words)
}

// OfLength returns the ascending words whose rune length is n.
// The slice is shared with the Lexicon and must be treated as read-only.
func (l *Lexicon) OfLength(n int) []string {
	if l == nil {
		return nil
	}

	return l.byLen[n]
}

// Lengths returns the distinct rune lengths present, ascending.
func (l *Lexicon) Lengths() []int {
	if l == nil {
		return nil
	}

	return slices.Clone(l.lengths)
}
