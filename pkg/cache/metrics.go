package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks summary cache hits
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_cache_hits_total",
			Help: "Total number of summary cache hits",
		},
	)

	// CacheMisses tracks summary cache misses
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_cache_misses_total",
			Help: "Total number of summary cache misses",
		},
	)

	// CacheErrors tracks cache operation errors
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_cache_errors_total",
			Help: "Total number of cache operation errors",
		},
		[]string{"operation"}, // "get", "set", "delete", "ping"
	)

	// CacheRetries tracks retried Redis calls
	CacheRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_cache_retries_total",
			Help: "Total number of retried Redis calls by operation",
		},
		[]string{"operation"},
	)

	// CacheRetryBackoff tracks the backoff slept before a retry
	CacheRetryBackoff = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "queue_cache_retry_backoff_seconds",
			Help:    "Backoff duration before retrying a Redis call",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2},
		},
		[]string{"operation"},
	)
)
