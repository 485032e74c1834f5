package ladder

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for ladder searches.
var (
	// ErrUnknownStrategy is returned by Search for an unsupported Strategy.
	ErrUnknownStrategy = errors.New("ladder: unknown strategy")

	// ErrOptionViolation is returned when an invalid SearchOption is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")

	// ErrExpansionLimit is returned when a search exceeds WithMaxExpansions.
	ErrExpansionLimit = errors.New("ladder: expansion limit reached")
)

// Strategy selects the frontier discipline of a search.
type Strategy int

const (
	// DepthFirst uses a LIFO frontier and returns any ladder.
	DepthFirst Strategy = iota
	// BreadthFirst uses a FIFO frontier and returns a minimum ladder.
	BreadthFirst
)

// String returns "dfs", "bfs" or "unknown".
func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	default:
		return "unknown"
	}
}

// SearchOption configures a single Search call.
type SearchOption func(*SearchOptions)

// SearchOptions holds per-search parameters and hooks.
type SearchOptions struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once
	// that many words have been expanded without reaching end.
	// 0 disables the limit.
	MaxExpansions int

	// OnDiscover is called when word is first marked visited, with the word
	// it was reached from. It is not called for the start word.
	OnDiscover func(word, from string)

	// OnExpand is called when word is popped from the frontier, before its
	// neighbors are enumerated. A non-nil error aborts the search.
	OnExpand func(word string) error

	// internal error recorded during option parsing
	err error
}

// DefaultSearchOptions returns SearchOptions with a background context,
// no expansion limit and no-op hooks.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnDiscover:    func(string, string) {},
		OnExpand:      func(string) error { return nil },
	}
}

// WithContext sets the context used for cancellation. nil is ignored.
func WithContext(ctx context.Context) SearchOption {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of expanded words.
//
//	n > 0:  abort with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) SearchOption {
	return func(o *SearchOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnDiscover registers a discovery hook.
func WithOnDiscover(fn func(word, from string)) SearchOption {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnExpand registers an expansion hook; returning an error stops the search.
func WithOnExpand(fn func(word string) error) SearchOption {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of a single search.
type Result struct {
	// Path is the ladder from start to end, or empty when none exists.
	Path []string

	// Strategy is the frontier discipline that produced Path.
	Strategy Strategy

	// Expanded counts words popped from the frontier.
	Expanded int

	// Discovered counts words marked visited, start included.
	Discovered int

	// Elapsed is the wall time of the search.
	Elapsed time.Duration
}

// Found reports whether the search produced a ladder.
func (r *Result) Found() bool {
	return r != nil && len(r.Path) > 0
}

// Observer receives the outcome of every search run through an Engine.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveSearch(res *Result, err error)
}
