// Package metrics exposes Prometheus instrumentation for the inquiry
// admission pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AdmissionDecisions counts admission outcomes by result
	// (admitted, rate_limited, queue_full).
	AdmissionDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loyal_admission_decisions_total",
			Help: "Admission decisions by outcome",
		},
		[]string{"outcome"},
	)

	// QueueDepth tracks the number of sessions waiting for dispatch.
	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "loyal_admission_queue_depth",
			Help: "Sessions currently queued for dispatch",
		},
	)

	// InFlight tracks sessions currently executing against the backend.
	InFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "loyal_dispatch_in_flight",
			Help: "Sessions in dispatching or streaming state",
		},
	)

	// SessionsCompleted counts terminal session states
	// (completed, failed, cancelled).
	SessionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loyal_sessions_terminal_total",
			Help: "Sessions reaching a terminal state, by state",
		},
		[]string{"state"},
	)

	// ChunksRelayed counts output chunks forwarded to clients.
	ChunksRelayed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loyal_output_chunks_total",
			Help: "Output chunks relayed to clients",
		},
	)

	// DispatchLatency observes time from enqueue to first backend chunk.
	DispatchLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "loyal_dispatch_latency_seconds",
			Help:    "Time from admission to first output chunk",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
	)

	// RateBuckets tracks live rate limiter buckets (memory bound check).
	RateBuckets = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "loyal_rate_limiter_buckets",
			Help: "Rate limiter buckets currently resident",
		},
	)
)
