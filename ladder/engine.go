package ladder

import (
	"io"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/doublets/hamming"
	"github.com/katalvlaran/doublets/lexicon"
)

// Engine answers word-ladder queries over one immutable Lexicon.
// It holds no mutable state, so a single Engine may serve concurrent callers.
type Engine struct {
	lex      *lexicon.Lexicon
	finder   hamming.Finder
	log      logrus.FieldLogger
	observer Observer
}

// EngineOption configures an Engine at construction.
type EngineOption func(*Engine)

// WithFinder replaces the default linear-scan neighbor finder, typically with
// a hamming.Index built over the same lexicon. nil is ignored.
func WithFinder(f hamming.Finder) EngineOption {
	return func(e *Engine) {
		if f != nil {
			e.finder = f
		}
	}
}

// WithLogger sets the logger that receives one Debug entry per search.
// nil is ignored.
func WithLogger(l logrus.FieldLogger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithObserver registers an Observer notified after every search.
func WithObserver(obs Observer) EngineOption {
	return func(e *Engine) {
		e.observer = obs
	}
}

// New returns an Engine over lex. A nil lex is treated as the empty lexicon.
func New(lex *lexicon.Lexicon, opts ...EngineOption) *Engine {
	if lex == nil {
		lex = lexicon.New()
	}
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	e := &Engine{
		lex:    lex,
		finder: hamming.NewScanner(lex),
		log:    quiet,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Lexicon returns the engine's word set.
func (e *Engine) Lexicon() *lexicon.Lexicon { return e.lex }

// Hamming returns the Hamming distance of a and b, or hamming.Undefined (-1)
// when their lengths differ.
func (e *Engine) Hamming(a, b string) int { return hamming.Distance(a, b) }

// Neighbors returns the lexicon words at distance 1 from w, ascending.
// w need not be a member.
func (e *Engine) Neighbors(w string) []string { return e.finder.Neighbors(w) }

// IsWord reports lexicon membership.
func (e *Engine) IsWord(w string) bool { return e.lex.Contains(w) }

// WordCount returns the lexicon size.
func (e *Engine) WordCount() int { return e.lex.Len() }

// IsWordLadder validates seq against the engine's lexicon.
func (e *Engine) IsWordLadder(seq []string) bool { return IsWordLadder(e.lex, seq) }

// Ladder returns a ladder from start to end found depth-first, or an empty
// slice when none exists. It never fails.
func (e *Engine) Ladder(start, end string) []string {
	return e.pathOrEmpty(e.Search(start, end, DepthFirst))
}

// MinLadder returns a minimum-length ladder from start to end found
// breadth-first, or an empty slice when none exists. It never fails.
func (e *Engine) MinLadder(start, end string) []string {
	return e.pathOrEmpty(e.Search(start, end, BreadthFirst))
}

func (e *Engine) pathOrEmpty(res *Result, err error) []string {
	if err != nil || res == nil {
		return []string{}
	}

	return res.Path
}

// Search runs one search from start to end with strategy s.
// On error the partial Result (counters, empty Path) is still returned.
func (e *Engine) Search(start, end string, s Strategy, opts ...SearchOption) (*Result, error) {
	o := DefaultSearchOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w, err := newWalker(e.finder, s, o, e.capHint(start))
	if err != nil {
		return nil, err
	}
	w.target(end)

	began := time.Now()
	err = w.run(start)
	w.res.Elapsed = time.Since(began)
	if err != nil {
		w.res.Path = []string{}
	}
	e.report(start, end, w.res, err)

	return w.res, err
}

// Component returns every word reachable from start, start included,
// in ascending order.
func (e *Engine) Component(start string) []string {
	hint := e.capHint(start)
	w := walkerOver(e.finder, &queue{items: make([]string, 0, hint)}, BreadthFirst, DefaultSearchOptions(), hint)
	w.flood(start)

	out := make([]string, 0, len(w.visited))
	for word := range w.visited {
		out = append(out, word)
	}
	slices.Sort(out)

	return out
}

// capHint sizes per-search maps by the number of words that could possibly
// be reached: those sharing start's length.
func (e *Engine) capHint(start string) int {
	n := len(e.lex.OfLength(utf8.RuneCountInString(start)))

	return min(n+1, 1<<12)
}

func (e *Engine) report(start, end string, res *Result, err error) {
	fields := logrus.Fields{
		"strategy":   res.Strategy.String(),
		"start":      start,
		"end":        end,
		"length":     len(res.Path),
		"expanded":   res.Expanded,
		"discovered": res.Discovered,
		"elapsed":    res.Elapsed,
	}
	if err != nil {
		e.log.WithFields(fields).WithError(err).Debug("ladder search aborted")
	} else {
		e.log.WithFields(fields).Debug("ladder search finished")
	}
	if e.observer != nil {
		e.observer.ObserveSearch(res, err)
	}
}
