// Package lexicon provides the immutable, ordered word set that backs every
// word-ladder query, together with the line-oriented loader that fills it.
//
// What
//
//   - A Lexicon is a sorted set of non-empty, lowercase, unique words.
//   - Contains answers membership in O(log n) by binary search.
//   - All and Words enumerate the set in ascending order; that order is the
//     tie-breaking contract for neighbor enumeration and therefore for which
//     ladder a search returns.
//   - OfLength exposes the same sorted order partitioned by rune length, so
//     neighbor finders only ever look at words that can be one edit away.
//
// Lifecycle
//
//	A Lexicon is built exactly once (New, FromSeq or Load) and is read-only
//	afterwards. There is no mutation surface, so concurrent readers need no
//	locking.
//
// Loader
//
//	Load consumes a text stream line by line. For every line carrying at least
//	one non-whitespace token, the first whitespace-delimited token is
//	lowercased and stored; remaining tokens on the line are ignored and blank
//	lines are skipped. A read failure is reported as ErrRead and is meant to be
//	fatal for the host program.
//
// Usage
//
//	lex, err := lexicon.Load(f, lexicon.WithLogger(log))
//	if err != nil {
//		log.Fatal(err)
//	}
//	lex.Contains("cat") // true
//	lex.Len()           // number of distinct words
//
// Errors
//
//   - ErrRead             if the underlying reader fails.
//   - ErrOptionViolation  if a LoadOption is invalid (e.g. non-positive line limit).
package lexicon
