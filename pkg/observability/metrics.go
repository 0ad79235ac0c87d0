package observability

import (
	"context"

	"github.com/aretw0/computor/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by the engine hooks.
type Metrics struct {
	Solved   *prometheus.CounterVec
	Failed   *prometheus.CounterVec
	CacheHit prometheus.Counter
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg skips registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Solved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "computor_equations_solved_total",
				Help: "Equations solved, by polynomial degree and outcome",
			},
			[]string{"degree", "outcome"},
		),
		Failed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "computor_equations_failed_total",
				Help: "Equations rejected, by error code",
			},
			[]string{"code"},
		),
		CacheHit: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "computor_cache_hits_total",
			Help: "Reports served from the cache",
		}),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "computor_solve_duration_seconds",
				Help:    "Time spent parsing and solving one equation",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"result"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Solved, m.Failed, m.CacheHit, m.Duration)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSolved: func(_ context.Context, e *domain.SolveEvent) {
			if e.Report != nil {
				m.Solved.WithLabelValues(degreeLabel(e.Report.Degree), string(e.Report.Solution.Outcome)).Inc()
			}
			m.Duration.WithLabelValues("solved").Observe(e.Duration.Seconds())
		},
		OnFailed: func(_ context.Context, e *domain.SolveEvent) {
			m.Failed.WithLabelValues(domain.ErrorCode(e.Err)).Inc()
			m.Duration.WithLabelValues("failed").Observe(e.Duration.Seconds())
		},
		OnCached: func(_ context.Context, _ *domain.SolveEvent) {
			m.CacheHit.Inc()
		},
	}
}

func degreeLabel(d int) string {
	switch d {
	case 0:
		return "0"
	case 1:
		return "1"
	case 2:
		return "2"
	}
	return "other"
}
