// Package metrics defines Prometheus metrics for ladder searches.
//
// A Recorder implements ladder.Observer; pass it to ladder.WithObserver and
// every search is counted by strategy and outcome.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/doublets/ladder"
)

// Search outcomes used as the "outcome" label.
const (
	OutcomeFound = "found"
	OutcomeNone  = "none"
	OutcomeError = "error"
)

// Recorder holds the collectors registered by NewRecorder.
type Recorder struct {
	SearchesTotal  *prometheus.CounterVec
	Expansions     *prometheus.HistogramVec
	SearchDuration *prometheus.HistogramVec
	LexiconWords   prometheus.Gauge
}

var _ ladder.Observer = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doublets_searches_total",
				Help: "Total ladder searches by strategy and outcome",
			},
			[]string{"strategy", "outcome"},
		),
		Expansions: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "doublets_search_expansions",
				Help:    "Words expanded per ladder search",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"strategy"},
		),
		SearchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "doublets_search_duration_seconds",
				Help:    "Ladder search duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"strategy"},
		),
		LexiconWords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "doublets_lexicon_words",
				Help: "Number of words in the loaded lexicon",
			},
		),
	}

	for _, c := range []prometheus.Collector{r.SearchesTotal, r.Expansions, r.SearchDuration, r.LexiconWords} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
	}

	return r, nil
}

// ObserveSearch records one search outcome.
func (r *Recorder) ObserveSearch(res *ladder.Result, err error) {
	if res == nil {
		return
	}
	strategy := res.Strategy.String()

	outcome := OutcomeNone
	switch {
	case err != nil:
		outcome = OutcomeError
	case res.Found():
		outcome = OutcomeFound
	}

	r.SearchesTotal.WithLabelValues(strategy, outcome).Inc()
	r.Expansions.WithLabelValues(strategy).Observe(float64(res.Expanded))
	r.SearchDuration.WithLabelValues(strategy).Observe(res.Elapsed.Seconds())
}

// SetLexiconWords publishes the lexicon size.
func (r *Recorder) SetLexiconWords(n int) {
	r.LexiconWords.Set(float64(n))
}
