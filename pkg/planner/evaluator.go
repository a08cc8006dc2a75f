package planner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Sternrassler/queue-metrics/pkg/cache"
	"github.com/Sternrassler/queue-metrics/pkg/queue"
	"github.com/rs/zerolog/log"
)

// Config holds evaluator configuration
type Config struct {
	// MaxConcurrency is the number of scenarios evaluated in parallel
	MaxConcurrency int
}

// DefaultConfig returns the default evaluator configuration
func DefaultConfig() Config {
	return Config{
		MaxConcurrency: 8,
	}
}

// Store persists scenario summaries between evaluations.
type Store interface {
	Lookup(ctx context.Context, s queue.Scenario) (queue.Summary, error)
	Save(ctx context.Context, s queue.Scenario, summary queue.Summary) error
}

// Result is the outcome of evaluating one scenario.
type Result struct {
	// Index is the position of the scenario in the input batch
	Index    int
	Scenario queue.Scenario
	Summary  queue.Summary
	// Cached reports whether Summary came from the store
	Cached bool
	Err    error
}

// Evaluator computes scenario summaries, optionally backed by a Store.
type Evaluator struct {
	store  Store
	config Config
}

// NewEvaluator creates a new evaluator. store may be nil.
func NewEvaluator(store Store, config Config) *Evaluator {
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = DefaultConfig().MaxConcurrency
	}

	return &Evaluator{
		store:  store,
		config: config,
	}
}

// Evaluate computes the summary of a single scenario.
func (e *Evaluator) Evaluate(ctx context.Context, s queue.Scenario) Result {
	return e.evaluate(ctx, 0, s)
}

func (e *Evaluator) evaluate(ctx context.Context, index int, s queue.Scenario) Result {
	result := Result{Index: index, Scenario: s}

	if e.store != nil {
		summary, err := e.store.Lookup(ctx, s)
		switch {
		case err == nil:
			Evaluations.WithLabelValues(sourceCache).Inc()
			result.Summary = summary
			result.Cached = true
			return result
		case !errors.Is(err, cache.ErrCacheMiss):
			log.Warn().Err(err).Str("model", string(s.Model)).Msg("Store lookup failed, computing")
		}
	}

	m, err := queue.New(s)
	if err != nil {
		result.Err = err
		return result
	}
	result.Summary = queue.Summarize(m)
	Evaluations.WithLabelValues(sourceComputed).Inc()

	if e.store != nil {
		if err := e.store.Save(ctx, s, result.Summary); err != nil {
			log.Warn().Err(err).Str("model", string(s.Model)).Msg("Store save failed")
		}
	}

	return result
}

// EvaluateAll evaluates scenarios in parallel using a worker pool.
// Results are returned in input order. If ctx is cancelled, the scenarios
// evaluated so far are returned together with the context error; the rest
// carry that error in Result.Err.
func (e *Evaluator) EvaluateAll(ctx context.Context, scenarios []queue.Scenario) ([]Result, error) {
	start := time.Now()
	defer func() { BatchDuration.Observe(time.Since(start).Seconds()) }()

	results := make([]Result, len(scenarios))
	if len(scenarios) == 0 {
		return results, nil
	}

	workers := e.config.MaxConcurrency
	if workers > len(scenarios) {
		workers = len(scenarios)
	}

	log.Debug().
		Int("scenarios", len(scenarios)).
		Int("workers", workers).
		Msg("Starting batch evaluation")

	jobs := make(chan int, len(scenarios))
	for i := range scenarios {
		jobs <- i
	}
	close(jobs)

	done := make([]bool, len(scenarios))
	out := make(chan Result, len(scenarios))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go e.worker(ctx, scenarios, jobs, out, &wg, i)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	evaluated := 0
	for r := range out {
		results[r.Index] = r
		done[r.Index] = true
		evaluated++
	}

	if err := ctx.Err(); err != nil && evaluated < len(scenarios) {
		for i, ok := range done {
			if !ok {
				results[i] = Result{Index: i, Scenario: scenarios[i], Err: err}
			}
		}
		log.Warn().
			Err(err).
			Int("evaluated", evaluated).
			Int("total", len(scenarios)).
			Msg("Batch cancelled - returning partial results")
		return results, fmt.Errorf("batch cancelled (partial data: %d/%d scenarios): %w", evaluated, len(scenarios), err)
	}

	log.Debug().
		Int("scenarios", evaluated).
		Dur("duration", time.Since(start)).
		Msg("Batch evaluation complete")

	return results, nil
}

// worker evaluates scenarios from the job queue
func (e *Evaluator) worker(ctx context.Context, scenarios []queue.Scenario, jobs <-chan int, out chan<- Result, wg *sync.WaitGroup, workerID int) {
	defer wg.Done()
	processed := 0

	for i := range jobs {
		select {
		case <-ctx.Done():
			log.Debug().
				Int("worker_id", workerID).
				Int("processed", processed).
				Msg("Worker stopping (context cancelled)")
			return
		default:
		}

		out <- e.evaluate(ctx, i, scenarios[i])
		processed++
	}
}
