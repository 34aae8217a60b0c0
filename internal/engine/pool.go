package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dm/ise-go/internal/client"
)

// Worker counts. MaxWorkers matches the client's connection ceiling.
const (
	DefaultFetchWorkers  = 10
	DefaultDeleteWorkers = 20
	MaxWorkers           = client.MaxConnectionsLimit
)

// ClampWorkers returns def for n <= 0 and caps n at MaxWorkers.
func ClampWorkers(n, def int) int {
	if n <= 0 {
		n = def
	}
	if n > MaxWorkers {
		n = MaxWorkers
	}
	return n
}

type job[T any] struct {
	index int
	item  T
}

// runPool feeds items through a queue of capacity 2*workers to a fixed set
// of workers. fn returns an error only when the whole batch must stop;
// the first such error cancels the rest and is returned. A cancelled ctx
// abandons the queue and returns ctx's error.
func runPool[T any](ctx context.Context, workers int, items []T, fn func(ctx context.Context, index int, item T) error) error {
	if len(items) == 0 {
		return ctx.Err()
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	g, gctx := errgroup.WithContext(ctx)
	queue := make(chan job[T], 2*workers)

	g.Go(func() error {
		defer close(queue)
		for i, it := range items {
			select {
			case queue <- job[T]{index: i, item: it}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for j := range queue {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(gctx, j.index, j.item); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
