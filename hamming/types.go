package hamming

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrOptionViolation is returned when an invalid IndexOption is supplied.
var ErrOptionViolation = errors.New("hamming: invalid option supplied")

// Finder enumerates the neighbors of a word: every lexicon word at Hamming
// distance exactly 1, in ascending order. The query word need not be a member.
type Finder interface {
	Neighbors(w string) []string
}

// Source is the read-only view of a word set that finders are built over.
// *lexicon.Lexicon satisfies it.
type Source interface {
	// OfLength returns the ascending words of rune length n.
	OfLength(n int) []string
	// Lengths returns the distinct rune lengths present, ascending.
	Lengths() []int
}

// IndexOption configures NewIndex.
type IndexOption func(*IndexOptions)

// IndexOptions holds parameters for building an Index.
type IndexOptions struct {
	// Workers bounds how many length partitions are indexed concurrently.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultIndexOptions returns IndexOptions with one worker per CPU.
func DefaultIndexOptions() IndexOptions {
	return IndexOptions{Workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers sets the build concurrency.
//
//	n >= 1: at most n partitions in flight
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) IndexOption {
	return func(o *IndexOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
