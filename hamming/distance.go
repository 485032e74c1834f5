package hamming

import "unicode/utf8"

// Undefined is returned by Distance for words of different length.
const Undefined = -1

// Distance returns the number of positions at which a and b differ, or
// Undefined when their rune lengths differ.
// Complexity: O(|a| + |b|).
func Distance(a, b string) int {
	if len(a) == len(b) && isASCII(a) && isASCII(b) {
		d := 0
		for i := 0; i < len(a); i++ {
			if a[i] != b[i] {
				d++
			}
		}

		return d
	}

	if utf8.RuneCountInString(a) != utf8.RuneCountInString(b) {
		return Undefined
	}
	d := 0
	for len(a) > 0 {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			d++
		}
		a, b = a[na:], b[nb:]
	}

	return d
}

// adjacent reports whether a and b are exactly one substitution apart.
// It stops at the second mismatch, which is what makes scanning cheap.
func adjacent(a, b string) bool {
	if len(a) == len(b) && isASCII(a) && isASCII(b) {
		diff := 0
		for i := 0; i < len(a); i++ {
			if a[i] != b[i] {
				if diff++; diff > 1 {
					return false
				}
			}
		}

		return diff == 1
	}

	return Distance(a, b) == 1
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}
