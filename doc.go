// Package doublets finds word ladders: sequences of dictionary words in which
// each consecutive pair differs in exactly one letter position.
//
//	cat -> cot -> cog -> dog
//
// The word graph is never built. Nodes are dictionary words and edges join
// equal-length words at Hamming distance 1; neighbors are computed on demand.
//
// Everything is organized under a few subpackages:
//
//	lexicon/  immutable sorted word set and the first-token-per-line loader
//	hamming/  Hamming distance and neighbor finders (linear scan, wildcard index)
//	ladder/   depth-first and breadth-first ladder search, path reconstruction, validation
//	metrics/  Prometheus collectors fed by ladder.Observer
//
// Quick start:
//
//	lex, _ := lexicon.Load(f)
//	e := ladder.New(lex)
//	e.MinLadder("cat", "dog") // [cat cot cog dog]
//	e.Ladder("cat", "dog")    // some ladder, found depth-first
//
// The cmd/doublets program wraps the same engine for one-shot queries over a
// dictionary file.
package doublets
