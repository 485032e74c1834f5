// Package hamming computes Hamming distances between words and enumerates the
// neighbors of a word: the lexicon words exactly one substitution away.
//
// The word graph is implicit. Nodes are lexicon words, and an undirected edge
// joins two words of equal length that differ in exactly one position. Nothing
// here materializes that graph; a Finder answers "who is adjacent to w" on
// demand.
//
// Finders
//
//   - Scanner: linear scan over the words of the same length, keeping those at
//     distance 1. O(n_len · |w|) per query, no preprocessing.
//   - Index: single-wildcard pattern index. Every word is filed under |w|
//     buckets keyed by (position, word without that rune). A query merges the
//     |w| buckets it falls into. Roughly O(|w| · b) per query, where b is the
//     mean bucket size. Built once, partitions in parallel.
//
// Determinism
//
//	Both finders return neighbors in ascending lexicon order, so they are
//	interchangeable: a search yields the same ladder with either one.
//
// Distances are measured in runes. Words of different rune length have no
// defined distance; Distance reports Undefined (-1) instead of failing.
package hamming
