package builder

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// Path builds a simple path P_n: vertices 0..n-1 connected
// (i-1) -> i for i=1..n-1. Requires n >= MinPathNodes.
func Path[A any, W core.Number](n int, gopts []core.GraphOption, opts ...Option[A, W]) (*core.Graph[A, W], []core.NodeID, *graphina.GraphError) {
	if err := validateMin(methodPath, n, MinPathNodes); err != nil {
		return nil, nil, err
	}

	cfg := newConfig(opts...)
	g := core.NewGraphWithCapacity[A, W](n, n-1, gopts...)
	ids := addNodes(g, cfg, n)

	for i := 1; i < n; i++ {
		w := cfg.weightFn(cfg.rng)
		if _, err := g.AddEdge(ids[i-1], ids[i], w); err != nil {
			return nil, nil, err
		}
	}

	return g, ids, nil
}
