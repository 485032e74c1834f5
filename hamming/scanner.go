package hamming

import "unicode/utf8"

// Scanner finds neighbors by scanning every source word of the query's length.
type Scanner struct {
	src Source
}

// NewScanner returns a Scanner over src.
func NewScanner(src Source) *Scanner {
	return &Scanner{src: src}
}

// Neighbors returns the words at distance 1 from w, ascending.
// Complexity: O(n_len · |w|), where n_len is the number of words of length |w|.
func (s *Scanner) Neighbors(w string) []string {
	out := []string{}
	if s == nil || s.src == nil {
		return out
	}
	for _, cand := range s.src.OfLength(utf8.RuneCountInString(w)) {
		if adjacent(cand, w) {
			out = append(out, cand)
		}
	}

	return out
}
