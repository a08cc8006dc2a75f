// Package metrics provides the Prometheus registry and HTTP handler for
// queue-metrics. Metrics are defined in their respective packages (queue,
// cache, planner) to keep packages independent.
//
// This package documents every exported metric.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the default Prometheus registry.
// All metrics are registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Gatherer is the registry exposed by Handler.
var Gatherer = prometheus.DefaultGatherer

// Handler returns the HTTP handler serving all registered metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Gatherer, promhttp.HandlerOpts{})
}

// Metrics Documentation
//
// Model Metrics (pkg/queue):
//   - queue_recalculations_total{model, outcome} (Counter): Lq/P0 recalculations;
//     outcome is finite, infinite (unstable queue) or undefined (invalid parameters)
//
// Cache Metrics (pkg/cache):
//   - queue_cache_hits_total (Counter): Summary cache hits
//   - queue_cache_misses_total (Counter): Summary cache misses
//   - queue_cache_errors_total{operation} (Counter): Cache operation errors
//   - queue_cache_retries_total{operation} (Counter): Retried Redis calls
//   - queue_cache_retry_backoff_seconds{operation} (Histogram): Backoff before a retry
//
// Planner Metrics (pkg/planner):
//   - queue_planner_evaluations_total{source} (Counter): Evaluated scenarios by source (computed, cache)
//   - queue_planner_batch_duration_seconds (Histogram): Duration of batch evaluations
//   - queue_planner_sizing_servers (Histogram): Server counts chosen by MinServers
//
// Example Prometheus Queries:
//
//   # Share of unstable scenarios
//   sum(rate(queue_recalculations_total{outcome="infinite"}[5m])) /
//   sum(rate(queue_recalculations_total[5m]))
//
//   # Cache Hit Rate
//   sum(rate(queue_cache_hits_total[5m])) /
//   (sum(rate(queue_cache_hits_total[5m])) + sum(rate(queue_cache_misses_total[5m])))
//
//   # P95 batch duration
//   histogram_quantile(0.95, rate(queue_planner_batch_duration_seconds_bucket[5m]))
