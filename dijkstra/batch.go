package dijkstra

import (
	"cmp"
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/shortpath/core"
)

// ShortestPathsFrom runs ShortestPaths once per distinct source, at most
// Options.Concurrency runs at a time, sharing g read-only. Every run owns its
// own tables.
//
// The first failing run cancels the rest and its error is returned with a
// nil map. Cancelling ctx stops runs that have not started yet and returns
// ctx's error.
//
// Complexity: O(S · (V + A) log V) total work for S sources.
func ShortestPathsFrom[N cmp.Ordered](ctx context.Context, g *core.Graph[N], sources []N, opts ...Option) (map[N]*Result[N], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	var (
		mu  sync.Mutex
		out = make(map[N]*Result[N], len(sources))
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Concurrency)

	seen := make(map[N]struct{}, len(sources))
	for _, src := range sources {
		if _, dup := seen[src]; dup {
			continue
		}
		seen[src] = struct{}{}

		src := src // per-iteration copy (go directive < 1.22)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := ShortestPaths(g, src, opts...)
			if err != nil {
				return err
			}
			mu.Lock()
			out[src] = res
			mu.Unlock()

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
