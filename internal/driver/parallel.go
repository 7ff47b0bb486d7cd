package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// runParallel calls fn for every file with at most jobs calls in flight.
// Each call owns index i of any result slice, so no locking is needed for
// per-file results. The first error cancels the rest.
func runParallel(ctx context.Context, files []string, jobs int, fn func(ctx context.Context, i int, path string) error) error {
	if len(files) == 0 {
		return nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			return fn(gctx, i, path)
		})
	}
	return g.Wait()
}
