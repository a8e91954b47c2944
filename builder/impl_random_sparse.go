package builder

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// RandomSparse samples an Erdos-Renyi-style graph over n vertices,
// including each admissible edge independently with probability p.
// Directed graphs consider every ordered pair (self-loops only when
// the graph allows them); undirected graphs consider unordered pairs
// {i,j}, i<j. A nil rng is only valid for the degenerate p=0 (no
// edges) and p=1 (all edges) cases; any other p requires a source via
// WithRand/WithSeed. Requires n >= 1 and p in [0,1].
func RandomSparse[A any, W core.Number](n int, p float64, gopts []core.GraphOption, opts ...Option[A, W]) (*core.Graph[A, W], []core.NodeID, *graphina.GraphError) {
	if err := validateMin(methodRandomSparse, n, 1); err != nil {
		return nil, nil, err
	}
	if err := validateProbability(methodRandomSparse, p); err != nil {
		return nil, nil, err
	}
	cfg := newConfig(opts...)
	if p > 0 && p < 1 && cfg.rng == nil {
		return nil, nil, graphina.NewInvalidArgument(methodRandomSparse, "rng", "required for 0 < p < 1 (use WithRand/WithSeed)")
	}
	g := core.NewGraphWithCapacity[A, W](n, 0, gopts...)
	ids := addNodes(g, cfg, n)

	include := func() bool {
		if cfg.rng == nil {
			return p == 1.0
		}
		return cfg.rng.Float64() <= p
	}

	if g.IsDirected() {
		for i := 0; i < n; i++ {
			u := ids[i]
			for j := 0; j < n; j++ {
				if i == j && !g.AllowsLoops() {
					continue
				}
				if !include() {
					continue
				}
				w := cfg.weightFn(cfg.rng)
				if _, err := g.AddEdge(u, ids[j], w); err != nil {
					return nil, nil, err
				}
			}
		}
	} else {
		for i := 0; i < n; i++ {
			u := ids[i]
			for j := i + 1; j < n; j++ {
				if !include() {
					continue
				}
				w := cfg.weightFn(cfg.rng)
				if _, err := g.AddEdge(u, ids[j], w); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	return g, ids, nil
}
