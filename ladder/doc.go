// Package ladder searches the implicit word graph for word ladders: sequences
// of lexicon words in which each consecutive pair differs in exactly one
// position.
//
// What
//
//   - Engine.Ladder returns any ladder (depth-first, LIFO frontier).
//   - Engine.MinLadder returns a ladder with the fewest words (breadth-first,
//     FIFO frontier).
//   - Engine.Search exposes both strategies with functional options:
//     cancellation, an expansion ceiling and discovery/expansion hooks.
//   - Engine.Component lists every word reachable from a start word.
//   - IsWordLadder validates a candidate sequence against a lexicon.
//
// Shared frame
//
//	Both strategies run the same walker and differ only in the frontier it
//	is given. The start word is marked visited before anything else. Each
//	expansion pops one word and asks the neighbor Finder for its neighbors in
//	ascending order. Every unvisited neighbor is marked visited, gets its
//	predecessor recorded and is pushed, all at once. The walk stops the moment
//	the end word is discovered. Predecessors are recorded exactly once per
//	word, so the predecessor map is a tree rooted at start, and Reconstruct
//	walks it back from end.
//
//	Visited is monotonic: the depth-first flavor never unmarks a word on
//	backtrack. It finds a ladder, not necessarily the one a recursive
//	backtracking trace would produce. Breadth-first marks a word when it is
//	first discovered, which is at its shortest distance, so its ladder is
//	minimal.
//
// Edge cases
//
//   - start == end: both searches return [start], member or not.
//   - start not a member: its neighbors are still expanded.
//   - end not a member, or of another length: never discovered; the result
//     is the empty ladder.
//
// Determinism
//
//	Neighbors arrive in ascending lexicon order, so the same lexicon and the
//	same (start, end) always yield the same ladder.
//
// Complexity (V = words reachable from start, L = word length)
//
//   - Time:   O(V) expansions, each one neighbor query (O(n_len · L) scanning).
//   - Memory: O(V) for the frontier, visited set and predecessor map.
//
// Errors (Search only; Ladder and MinLadder never fail)
//
//   - ErrUnknownStrategy   for a Strategy other than DepthFirst/BreadthFirst.
//   - ErrOptionViolation   for an invalid SearchOption.
//   - ErrExpansionLimit    when WithMaxExpansions is exceeded.
//   - ctx.Err()            when the context is done.
//   - wrapped OnExpand hook errors.
package ladder
