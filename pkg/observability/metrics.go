// Package observability exposes prometheus metrics for machine runs, bound to
// the engine's lifecycle hooks.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/turingtools/tapir/pkg/domain"
)

// Metrics aggregates run counters for one machine instance.
type Metrics struct {
	steps    prometheus.Counter
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
}

// New creates the metric set and registers it with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tapir_steps_total",
			Help: "Total number of executed transitions",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tapir_runs_total",
			Help: "Completed runs by verdict",
		}, []string{"verdict"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tapir_run_duration_seconds",
			Help:    "Wall-clock duration of runs",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.steps, m.runs, m.duration)
	return m
}

// Hooks returns engine hooks feeding this metric set. The closures hold no
// per-run state (the engine carries its own start time into HaltEvent), so a
// single hook set may be shared by engines running concurrently.
func (m *Metrics) Hooks() domain.RunHooks {
	return domain.RunHooks{
		OnStep: func(_ context.Context, _ *domain.StepEvent) {
			m.steps.Inc()
		},
		OnHalt: func(_ context.Context, e *domain.HaltEvent) {
			verdict := "rejected"
			if e.Accepted {
				verdict = "accepted"
			}
			m.runs.WithLabelValues(verdict).Inc()
			m.duration.Observe(e.Duration.Seconds())
		},
	}
}

// ObserveError counts a failed run (unknown symbol, incomplete table, budget).
func (m *Metrics) ObserveError() {
	m.runs.WithLabelValues("error").Inc()
}
