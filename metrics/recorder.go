// Package metrics exports search activity as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pdrpinto/search"
)

// Recorder is a search.Observer backed by Prometheus collectors.
type Recorder struct {
	Searches       *prometheus.CounterVec
	Expansions     *prometheus.CounterVec
	Pushes         *prometheus.CounterVec
	Discards       *prometheus.CounterVec
	SolutionLength *prometheus.HistogramVec
	Duration       *prometheus.HistogramVec
}

var _ search.Observer = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them on registerer.
// A nil registerer leaves them unregistered.
func NewRecorder(registerer prometheus.Registerer) *Recorder {
	recorder := &Recorder{
		Searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_runs_total",
				Help: "Completed searches by strategy and outcome",
			},
			[]string{"strategy", "outcome"},
		),
		Expansions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_expansions_total",
				Help: "States passed to Successors",
			},
			[]string{"strategy"},
		),
		Pushes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_frontier_pushes_total",
				Help: "Entries pushed onto the frontier",
			},
			[]string{"strategy"},
		),
		Discards: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_stale_discards_total",
				Help: "Popped entries dropped because their state was already expanded",
			},
			[]string{"strategy"},
		),
		SolutionLength: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "search_solution_actions",
				Help:    "Number of actions in returned solutions",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"strategy"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "search_duration_seconds",
				Help:    "Wall time of a search call",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"strategy"},
		),
	}
	if registerer != nil {
		registerer.MustRegister(
			recorder.Searches,
			recorder.Expansions,
			recorder.Pushes,
			recorder.Discards,
			recorder.SolutionLength,
			recorder.Duration,
		)
	}
	return recorder
}

func (r *Recorder) OnExpansion(event search.ExpansionEvent) {
	strategy := event.Strategy.String()
	r.Expansions.WithLabelValues(strategy).Inc()
	r.Pushes.WithLabelValues(strategy).Add(float64(event.Pushed))
}

func (r *Recorder) OnCompletion(event search.CompletionEvent) {
	strategy := event.Strategy.String()
	outcome := "exhausted"
	if event.Found {
		outcome = "found"
		r.SolutionLength.WithLabelValues(strategy).Observe(float64(event.PathLength))
	}
	r.Searches.WithLabelValues(strategy, outcome).Inc()
	r.Discards.WithLabelValues(strategy).Add(float64(event.Stats.Discarded))
	r.Duration.WithLabelValues(strategy).Observe(event.Elapsed.Seconds())
}
