package builder

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// Star builds a star topology with n vertices: one hub and n-1 leaves,
// with spokes hub->leaf[i] for each leaf. On directed graphs the
// reverse spoke leaf[i]->hub is also added, since core only mirrors
// undirected edges automatically. Requires n >= MinStarNodes.
func Star[A any, W core.Number](n int, gopts []core.GraphOption, opts ...Option[A, W]) (*core.Graph[A, W], *StarResult, *graphina.GraphError) {
	if err := validateMin(methodStar, n, MinStarNodes); err != nil {
		return nil, nil, err
	}

	cfg := newConfig(opts...)
	g := core.NewGraphWithCapacity[A, W](n, n-1, gopts...)

	center := g.AddNode(cfg.nodeFn(0))
	leaves := make([]core.NodeID, n-1)
	for i := 1; i < n; i++ {
		leaf := g.AddNode(cfg.nodeFn(i))
		leaves[i-1] = leaf

		w := cfg.weightFn(cfg.rng)
		if _, err := g.AddEdge(center, leaf, w); err != nil {
			return nil, nil, err
		}
		if g.IsDirected() {
			if _, err := g.AddEdge(leaf, center, w); err != nil {
				return nil, nil, err
			}
		}
	}

	return g, &StarResult{Center: center, Leaves: leaves}, nil
}
