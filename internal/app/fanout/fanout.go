// Package fanout runs a function over a batch of items with a fixed upper
// bound on concurrent goroutines. The notification dispatcher uses it to
// deliver one event's messages in parallel without letting a large team
// open an unbounded number of outbound connections.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers goroutines at a
// time and returns the results in input order.
//
// An item still waiting for a worker slot when ctx is done records
// ctx.Err() and fn is not called for it. Items already running are left to
// finish; fn must watch ctx itself if it can block.
//
// Run blocks until every item is accounted for. An empty batch returns an
// empty non-nil slice. maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	maxWorkers = max(maxWorkers, 1)

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		}()
	}

	wg.Wait()
	return results
}

// Each is Run for functions that only report an error. The returned slice
// has one entry per item, nil on success.
func Each[T any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) error) []error {
	results := Run(ctx, maxWorkers, items, func(ctx context.Context, it T) (struct{}, error) {
		return struct{}{}, fn(ctx, it)
	})

	errs := make([]error, len(results))
	for i, r := range results {
		errs[i] = r.Err
	}
	return errs
}
