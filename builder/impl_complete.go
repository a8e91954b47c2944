package builder

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// Complete builds the complete simple graph K_n: every unordered pair
// {i,j}, i<j, connected once, mirrored j->i only on directed graphs.
// Requires n >= 1.
func Complete[A any, W core.Number](n int, gopts []core.GraphOption, opts ...Option[A, W]) (*core.Graph[A, W], []core.NodeID, *graphina.GraphError) {
	if err := validateMin(methodComplete, n, 1); err != nil {
		return nil, nil, err
	}

	cfg := newConfig(opts...)
	g := core.NewGraphWithCapacity[A, W](n, n*(n-1)/2, gopts...)
	ids := addNodes(g, cfg, n)

	for i := 0; i < n; i++ {
		u := ids[i]
		for j := i + 1; j < n; j++ {
			v := ids[j]
			w := cfg.weightFn(cfg.rng)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return nil, nil, err
			}
			if g.IsDirected() {
				if _, err := g.AddEdge(v, u, w); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	return g, ids, nil
}
