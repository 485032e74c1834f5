package ladder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/doublets/hamming"
)

// walker encapsulates the mutable state of one search. It lives for a single
// call and is dropped on every return path.
type walker struct {
	finder   hamming.Finder
	opts     SearchOptions
	ctx      context.Context
	frontier frontier
	visited  map[string]struct{}
	parent   map[string]string
	res      *Result

	end    string
	hasEnd bool // false when exploring a whole component
}

func newWalker(f hamming.Finder, s Strategy, o SearchOptions, capHint int) (*walker, error) {
	fr, err := s.newFrontier(capHint)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", err, int(s))
	}

	return walkerOver(f, fr, s, o, capHint), nil
}

func walkerOver(f hamming.Finder, fr frontier, s Strategy, o SearchOptions, capHint int) *walker {
	return &walker{
		finder:   f,
		opts:     o,
		ctx:      o.Ctx,
		frontier: fr,
		visited:  make(map[string]struct{}, capHint),
		parent:   make(map[string]string, capHint),
		res:      &Result{Path: []string{}, Strategy: s},
	}
}

// target sets the word whose discovery ends the walk.
func (w *walker) target(end string) {
	w.end = end
	w.hasEnd = true
}

// run seeds the frontier with start and drives it until end is discovered or
// the frontier is empty.
func (w *walker) run(start string) error {
	w.seed(start)
	if w.hasEnd && start == w.end {
		w.res.Path = Reconstruct(w.parent, w.end)
		return nil
	}

	for w.frontier.len() > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		if w.opts.MaxExpansions > 0 && w.res.Expanded >= w.opts.MaxExpansions {
			return fmt.Errorf("%w: %d expansions", ErrExpansionLimit, w.res.Expanded)
		}

		cur := w.frontier.pop()
		w.res.Expanded++
		if err := w.opts.OnExpand(cur); err != nil {
			return fmt.Errorf("ladder: OnExpand error at %q: %w", cur, err)
		}

		if w.expand(cur) {
			w.res.Path = Reconstruct(w.parent, w.end)
			return nil
		}
	}

	return nil
}

// flood visits everything reachable from start. It ignores the context and
// the expansion limit, so it cannot fail.
func (w *walker) flood(start string) {
	w.seed(start)
	for w.frontier.len() > 0 {
		cur := w.frontier.pop()
		w.res.Expanded++
		w.expand(cur)
	}
}

func (w *walker) seed(start string) {
	w.visited[start] = struct{}{}
	w.res.Discovered++
	w.frontier.push(start)
}

// expand discovers the unvisited neighbors of cur and reports whether end
// was among them. Discovery stops right after end.
func (w *walker) expand(cur string) bool {
	for _, nbr := range w.finder.Neighbors(cur) {
		if _, seen := w.visited[nbr]; seen {
			continue
		}
		w.visited[nbr] = struct{}{}
		w.parent[nbr] = cur
		w.res.Discovered++
		w.opts.OnDiscover(nbr, cur)
		w.frontier.push(nbr)

		if w.hasEnd && nbr == w.end {
			return true
		}
	}

	return false
}
