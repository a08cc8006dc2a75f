package planner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Evaluations counts evaluated scenarios by source (computed, cache).
	Evaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_planner_evaluations_total",
			Help: "Total number of evaluated scenarios by source",
		},
		[]string{"source"},
	)

	// BatchDuration tracks how long EvaluateAll takes.
	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "queue_planner_batch_duration_seconds",
			Help:    "Duration of batch scenario evaluations",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		},
	)

	// SizingServers records the server counts chosen by MinServers.
	SizingServers = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "queue_planner_sizing_servers",
			Help:    "Server counts chosen by capacity sizing",
			Buckets: prometheus.ExponentialBuckets(1, 2, 11),
		},
	)
)

const (
	sourceComputed = "computed"
	sourceCache    = "cache"
)
