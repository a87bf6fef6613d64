// SPDX-License-Identifier: MIT
// Package metrics exposes engine activity as Prometheus collectors.
//
// A Recorder registers on a caller-supplied Registerer, never the global
// default, so several recorders (one per test, say) can coexist. It
// implements query.Observer.
package metrics

import (
	"errors"
	"time"

	"github.com/katalvlaran/lexigraph/query"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lexigraph"

// Outcome label values.
const (
	OutcomeOK          = "ok"
	OutcomeUnknownTerm = "unknown_term"
	OutcomeUnreachable = "unreachable"
	OutcomeHopLimit    = "hop_limit"
	OutcomeInvalid     = "invalid"
	OutcomeError       = "error"
)

// Recorder holds the lexigraph collectors.
type Recorder struct {
	queries   *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	terms     prometheus.Gauge
	edges     prometheus.Gauge
	discarded prometheus.Counter
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Engine operations by operation and outcome",
		}, []string{"op", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Engine operation latency in seconds",
			Buckets:   []float64{1e-6, 1e-5, 1e-4, 1e-3, 0.01, 0.1, 1, 10},
		}, []string{"op"}),
		terms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_terms",
			Help:      "Terms in the loaded vocabulary",
		}),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Distinct relation edges in the loaded graph",
		}),
		discarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discarded_relations_total",
			Help:      "Related names dropped by the consistency filter",
		}),
	}
	for _, c := range []prometheus.Collector{r.queries, r.duration, r.terms, r.edges, r.discarded} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveQuery implements query.Observer.
func (r *Recorder) ObserveQuery(op string, err error, elapsed time.Duration) {
	r.queries.WithLabelValues(op, Outcome(err)).Inc()
	r.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// SetGraph records the size of the graph being served.
func (r *Recorder) SetGraph(terms, edges int) {
	r.terms.Set(float64(terms))
	r.edges.Set(float64(edges))
}

// AddDiscarded counts relations dropped while filtering.
func (r *Recorder) AddDiscarded(n int) {
	r.discarded.Add(float64(n))
}

// Outcome maps an engine error to its outcome label. ErrHopLimit is checked
// before ErrUnreachable because it always comes joined with it.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, query.ErrUnknownTerm):
		return OutcomeUnknownTerm
	case errors.Is(err, query.ErrHopLimit):
		return OutcomeHopLimit
	case errors.Is(err, query.ErrUnreachable):
		return OutcomeUnreachable
	case errors.Is(err, query.ErrOptionViolation):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}

var _ query.Observer = (*Recorder)(nil)
