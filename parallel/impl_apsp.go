package parallel

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/dijkstra"
)

// APSP computes all-pairs shortest paths by fanning a per-source
// dijkstra.Dijkstra run out across workers — the embarrassingly
// parallel half of Johnson's algorithm, without Johnson's reweighting
// step (callers with negative weights should reweight first, same as a
// direct dijkstra.Dijkstra call would require).
func APSP[A any, W core.Number](g *core.Graph[A, W], opts ...Option) (*core.NodeMap[*dijkstra.Result[W]], *graphina.GraphError) {
	const op = "parallel.APSP"
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ids := g.NodeIDs()
	results := make([]*dijkstra.Result[W], len(ids))

	grp, ctx := errgroup.WithContext(o.ctx)
	grp.SetLimit(o.workers)
	for i, s := range ids {
		i, s := i, s
		grp.Go(func() error {
			res, err := dijkstra.Dijkstra[A, W](g, s, dijkstra.WithContext[W](ctx))
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

	out := core.NewNodeMap[*dijkstra.Result[W]](len(ids))
	for i, s := range ids {
		out.Set(s, results[i])
	}
	return out, nil
}
