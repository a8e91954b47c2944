package parallel

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/bfs"
	"github.com/katalvlaran/graphina/core"
)

// BFS runs bfs.BFS from every source in sources concurrently, one
// worker per source (capped by the configured worker count), and
// returns each source's *bfs.Result keyed by source. A failure from any
// single source aborts the remaining in-flight runs and is returned as
// a single wrapped error naming the offending source.
func BFS[A any, W core.Number](g *core.Graph[A, W], sources []core.NodeID, opts ...Option) (map[core.NodeID]*bfs.Result, *graphina.GraphError) {
	const op = "parallel.BFS"
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	results := make([]*bfs.Result, len(sources))
	grp, ctx := errgroup.WithContext(o.ctx)
	grp.SetLimit(o.workers)

	for i, s := range sources {
		i, s := i, s
		grp.Go(func() error {
			res, err := bfs.BFS(g, s, bfs.WithContext(ctx))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		if gerr, ok := err.(*graphina.GraphError); ok {
			return nil, graphina.Wrap(gerr.Kind, op, gerr)
		}
		return nil, graphina.Wrap(graphina.KindInvalidArgument, op, err)
	}

	out := make(map[core.NodeID]*bfs.Result, len(sources))
	for i, s := range sources {
		out[s] = results[i]
	}
	return out, nil
}
