// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus instruments for relaxation sessions.
//
// Instruments are registered on a caller-supplied Registerer rather than the
// global default, so several engines (or tests) can coexist in one process.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels of SessionsTotal.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics groups the session instruments.
type Metrics struct {
	// SessionsTotal counts finished sessions by kernel and outcome.
	SessionsTotal *prometheus.CounterVec

	// DegenerateVerticesTotal counts vertices reverted for near-zero unlocked mass.
	DegenerateVerticesTotal prometheus.Counter

	// VerticesSmoothedTotal counts target vertices written back.
	VerticesSmoothedTotal prometheus.Counter

	// SessionDuration observes wall time of successful sessions by kernel.
	SessionDuration *prometheus.HistogramVec
}

// New creates the instruments and registers them on reg.
// A nil reg leaves them unregistered.
// Returns the registration error, e.g. prometheus.AlreadyRegisteredError.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		SessionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skinrelax_sessions_total",
				Help: "Total number of relaxation sessions, by kernel and outcome",
			},
			[]string{"kernel", "outcome"},
		),
		DegenerateVerticesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "skinrelax_degenerate_vertices_total",
				Help: "Vertices reverted because their unlocked mass was near zero",
			},
		),
		VerticesSmoothedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "skinrelax_vertices_smoothed_total",
				Help: "Target vertices written back by successful sessions",
			},
		),
		SessionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skinrelax_session_duration_seconds",
				Help:    "Wall time of successful relaxation sessions",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"kernel"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.SessionsTotal, m.DegenerateVerticesTotal, m.VerticesSmoothedTotal, m.SessionDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveSuccess records one successful session. Safe on a nil *Metrics.
func (m *Metrics) ObserveSuccess(kernel string, targets, degenerate int, d time.Duration) {
	if m == nil {
		return
	}
	m.SessionsTotal.WithLabelValues(kernel, OutcomeOK).Inc()
	m.VerticesSmoothedTotal.Add(float64(targets))
	m.DegenerateVerticesTotal.Add(float64(degenerate))
	m.SessionDuration.WithLabelValues(kernel).Observe(d.Seconds())
}

// ObserveFailure records one aborted session. Safe on a nil *Metrics.
func (m *Metrics) ObserveFailure(kernel string) {
	if m == nil {
		return
	}
	m.SessionsTotal.WithLabelValues(kernel, OutcomeError).Inc()
}
