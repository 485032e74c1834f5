package hamming

import (
	"context"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// pattern identifies a bucket: the word with the rune at pos removed.
type pattern struct {
	pos  int
	rest string
}

// Index is a single-wildcard pattern index. It is immutable after NewIndex
// returns and safe for concurrent use.
type Index struct {
	buckets map[pattern][]string
	words   int
}

// NewIndex builds an Index over src. Length partitions are independent, so
// they are processed concurrently and merged once all of them finish.
//
// Errors:
//   - ErrOptionViolation for an invalid option.
//   - ctx.Err() if ctx is cancelled before the build completes.
func NewIndex(ctx context.Context, src Source, opts ...IndexOption) (*Index, error) {
	o := DefaultIndexOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	idx := &Index{buckets: make(map[pattern][]string)}
	if src == nil {
		return idx, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for _, n := range src.Lengths() {
		words := src.OfLength(n)
		g.Go(func() error {
			part, err := indexPartition(gctx, words)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			// partitions never share a key: rest rune counts differ
			for k, v := range part {
				idx.buckets[k] = v
			}
			idx.words += len(words)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return idx, nil
}

// indexPartition files every word of one length under each of its patterns.
// words is ascending, so every bucket ends up ascending as well.
func indexPartition(ctx context.Context, words []string) (map[pattern][]string, error) {
	part := make(map[pattern][]string)
	for i, w := range words {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		for _, p := range patterns(w) {
			part[p] = append(part[p], w)
		}
	}

	return part, nil
}

// patterns returns the |w| wildcard patterns of w. Invalid bytes are keyed as
// U+FFFD, the rune Distance decodes them to.
func patterns(w string) []pattern {
	w = canonical(w)
	out := make([]pattern, 0, len(w))
	for i, pos := 0, 0; i < len(w); pos++ {
		_, size := utf8.DecodeRuneInString(w[i:])
		out = append(out, pattern{pos: pos, rest: w[:i] + w[i+size:]})
		i += size
	}

	return out
}

// canonical re-encodes every invalid byte of w as U+FFFD, keeping one rune
// per byte so positions stay aligned with Distance.
func canonical(w string) string {
	if utf8.ValidString(w) {
		return w
	}
	var b strings.Builder
	b.Grow(len(w) + 2)
	for _, r := range w {
		b.WriteRune(r)
	}

	return b.String()
}

// Len returns the number of indexed words.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}

	return x.words
}

// Neighbors returns the words at distance 1 from w, ascending.
//
// A neighbor differs from w at exactly one position, so it lives in exactly
// one of w's buckets; merging the buckets therefore never duplicates.
func (x *Index) Neighbors(w string) []string {
	out := []string{}
	if x == nil {
		return out
	}
	for _, p := range patterns(w) {
		for _, cand := range x.buckets[p] {
			if adjacent(cand, w) {
				out = append(out, cand)
			}
		}
	}
	slices.Sort(out)

	return out
}
