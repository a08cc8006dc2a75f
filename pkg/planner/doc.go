// Package planner evaluates batches of queueing scenarios and sizes
// multi-server queues.
//
// Batches run on a bounded worker pool. Every scenario gets its own model
// instance, so no model is ever shared between goroutines. An optional
// Store (cache.Manager satisfies it) is consulted before a scenario is
// computed and written after.
//
// Example usage:
//
//	evaluator := planner.NewEvaluator(cacheManager, planner.DefaultConfig())
//	results, err := evaluator.EvaluateAll(ctx, scenarios)
//
//	sizing, err := planner.MinServers(lamda, mu, targetWq, 100)
//
// EvaluateAll:
//   - Spawns a worker pool (default 8 workers)
//   - Keeps results in input order
//   - Reports per-scenario failures in Result.Err
//   - Returns partial results when the context is cancelled
package planner
