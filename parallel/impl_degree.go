package parallel

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphina/core"
)

// Degree computes each live node's degree centrality the same way
// centrality.Degree does, partitioning the node list across workers.
// Each worker only ever reads g and writes its own chunk of a
// pre-sized slice, so the join after errgroup.Wait is a plain copy,
// never a merge.
func Degree[A any, W core.Number](g *core.Graph[A, W], opts ...Option) *core.NodeMap[int] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ids := g.NodeIDs()
	n := len(ids)
	values := make([]int, n)

	grp, _ := errgroup.WithContext(o.ctx)
	for _, r := range chunk(n, o.workers) {
		r := r
		grp.Go(func() error {
			for i := r[0]; i < r[1]; i++ {
				values[i] = g.Degree(ids[i])
			}
			return nil
		})
	}
	_ = grp.Wait() // no worker here returns an error

	result := core.NewNodeMap[int](n)
	for i, id := range ids {
		result.Set(id, values[i])
	}
	return result
}
