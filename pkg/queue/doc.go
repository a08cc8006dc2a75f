// Package queue computes steady-state performance metrics for classic
// queueing models: M/M/1, M/D/1, M/G/1, M/M/c and M/M/c with
// non-preemptive priority classes.
//
// Every model shares one engine. Parameters are set through setters which
// mark the cached metrics stale; the first read of a derived metric
// recomputes Lq and P0 together and clears the flag.
//
// # Basic Usage
//
//	m := queue.NewMM1(4, 5)
//	m.Ro() // 0.8
//	m.Lq() // 3.2
//	m.W()  // 1.0
//
//	// Mutating a parameter invalidates the cached metrics
//	m.SetMu(8)
//	m.Lq() // recomputed on this read
//
// # Multi-Server and Priority Models
//
//	mmc := queue.NewMMc(4, 5, 2)
//	mmc.P0() // 0.4286 (Erlang-C)
//
//	p := queue.NewMMcPriority([]float64{2, 2}, 5, 1)
//	p.WqK(1) // waiting time of the highest-priority class
//	p.WqK(2)
//
// # Invalid and Unstable Parameters
//
// Domain errors are never returned. Every metric is one of:
//
//   - a finite number
//   - +Inf when the parameters are valid but the queue is unstable (ro >= 1)
//   - NaN when a parameter is undefined (non-positive rate, bad server count)
//
// Both sentinels propagate through all derived metrics. Use Metric.State to
// classify a value.
//
// # Concurrency
//
// A model is not safe for concurrent use. Reads can trigger a recalculation,
// so guard an instance with a mutex or keep it owned by one goroutine.
//
// # Metrics
//
// Each real recalculation increments
// queue_recalculations_total{model, outcome}.
package queue
