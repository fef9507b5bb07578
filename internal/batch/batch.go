// Package batch runs independent jobs on a pool of worker goroutines and
// collects their results in input order.
package batch

import (
	"context"
	"runtime"
	"sync"
)

// Config holds configuration for a batch run.
type Config struct {
	// NumWorkers is the number of worker goroutines.
	// Default: runtime.NumCPU()
	NumWorkers int
}

func (c *Config) applyDefaults() {
	if c.NumWorkers <= 0 {
		c.NumWorkers = runtime.NumCPU()
	}
}

// Result is the outcome of one job.
type Result[T any] struct {
	Index int // position of the job's input
	Value T
	Err   error
}

type job[S any] struct {
	index int
	item  S
}

// Run calls fn for every item using cfg.NumWorkers goroutines and returns
// one result per item, in input order. Failures of fn are reported in the
// item's result and do not stop the run.
//
// When ctx is cancelled no new jobs start and items that never ran carry
// ctx.Err(). Run returns ctx.Err() if ctx is done when the run ends.
func Run[S, T any](ctx context.Context, items []S, cfg Config, fn func(context.Context, S) (T, error)) ([]Result[T], error) {
	cfg.applyDefaults()
	if cfg.NumWorkers > len(items) && len(items) > 0 {
		cfg.NumWorkers = len(items)
	}

	// queues hold two jobs per worker
	jobs := make(chan job[S], 2*cfg.NumWorkers)
	results := make(chan Result[T], 2*cfg.NumWorkers)
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < cfg.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, jobs, results, fn)
		}()
	}

	// Start feeder
	go func() {
		defer close(jobs)
		for i, item := range items {
			select {
			case jobs <- job[S]{index: i, item: item}:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Close results once every worker has exited
	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]Result[T], len(items))
	done := make([]bool, len(items))
	for r := range results {
		out[r.Index] = r
		done[r.Index] = true
	}

	err := ctx.Err()
	for i := range out {
		if !done[i] {
			out[i] = Result[T]{Index: i, Err: err}
		}
	}
	return out, err
}

// worker runs jobs until the queue closes or ctx is cancelled.
func worker[S, T any](ctx context.Context, jobs <-chan job[S], results chan<- Result[T], fn func(context.Context, S) (T, error)) {
	for j := range jobs {
		select {
		case <-ctx.Done():
			results <- Result[T]{Index: j.index, Err: ctx.Err()}
			continue
		default:
		}

		v, err := fn(ctx, j.item)
		results <- Result[T]{Index: j.index, Value: v, Err: err}
	}
}
