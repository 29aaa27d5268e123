// Package metrics exposes Prometheus instruments for the evaluation core.
// All methods are safe to call on a nil *Metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics groups the counters and histograms of the evaluation core.
type Metrics struct {
	// Record transitions by operation (applicability, state, update, ...) and outcome.
	Transitions *prometheus.CounterVec

	// Suggestion lifecycle events by kind and action (recorded, applied, ignored).
	Suggestions *prometheus.CounterVec

	// Version restores by outcome (ok, warning, blocked, error).
	Restores *prometheus.CounterVec

	// Number of records per accepted bulk update.
	BulkSize prometheus.Histogram

	// Latency of list and export queries.
	QueryLatency *prometheus.HistogramVec

	// Proof URL cache lookups by result (hit, miss).
	URLCache *prometheus.CounterVec
}

// New registers every instrument on reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Transitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "compliance_evaluation_transitions_total",
			Help: "Evaluation record transitions by operation and outcome",
		}, []string{"operation", "outcome"}),

		Suggestions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "compliance_suggestions_total",
			Help: "Suggestion lifecycle events by kind and action",
		}, []string{"kind", "action"}),

		Restores: f.NewCounterVec(prometheus.CounterOpts{
			Name: "compliance_version_restores_total",
			Help: "Article version restores by outcome",
		}, []string{"outcome"}),

		BulkSize: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "compliance_bulk_update_records",
			Help:    "Number of records per bulk update",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),

		QueryLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "compliance_query_duration_seconds",
			Help:    "Duration of evaluation list and export queries",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"operation"}),

		URLCache: f.NewCounterVec(prometheus.CounterOpts{
			Name: "compliance_proof_url_cache_total",
			Help: "Proof access URL cache lookups by result",
		}, []string{"result"}),
	}
}

// IncTransition records one record transition.
func (m *Metrics) IncTransition(operation, outcome string) {
	if m != nil {
		m.Transitions.WithLabelValues(operation, outcome).Inc()
	}
}

// IncSuggestion records a suggestion lifecycle event.
func (m *Metrics) IncSuggestion(kind, action string) {
	if m != nil {
		m.Suggestions.WithLabelValues(kind, action).Inc()
	}
}

// IncRestore records a restore outcome.
func (m *Metrics) IncRestore(outcome string) {
	if m != nil {
		m.Restores.WithLabelValues(outcome).Inc()
	}
}

// ObserveBulk records the size of an accepted bulk update.
func (m *Metrics) ObserveBulk(records int) {
	if m != nil {
		m.BulkSize.Observe(float64(records))
	}
}

// ObserveQuery records a query duration.
func (m *Metrics) ObserveQuery(operation string, d time.Duration) {
	if m != nil {
		m.QueryLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// IncURLCache records a cache hit or miss.
func (m *Metrics) IncURLCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.URLCache.WithLabelValues(result).Inc()
}

// Outcome maps an error to an outcome label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
