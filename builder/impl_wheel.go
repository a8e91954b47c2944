package builder

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// Wheel builds W_n = C_(n-1) + hub: an outer ring of n-1 vertices plus
// one hub connected to every rim vertex. Requires n >= MinWheelNodes
// (the outer ring alone must satisfy MinCycleNodes).
func Wheel[A any, W core.Number](n int, gopts []core.GraphOption, opts ...Option[A, W]) (*core.Graph[A, W], *WheelResult, *graphina.GraphError) {
	if err := validateMin(methodWheel, n, MinWheelNodes); err != nil {
		return nil, nil, err
	}

	cfg := newConfig(opts...)
	g := core.NewGraphWithCapacity[A, W](n, 2*(n-1), gopts...)

	rim := addNodes(g, cfg, n-1)
	if err := ringEdges(g, cfg, rim); err != nil {
		return nil, nil, err
	}

	center := g.AddNode(cfg.nodeFn(n - 1))
	for _, v := range rim {
		w := cfg.weightFn(cfg.rng)
		if _, err := g.AddEdge(center, v, w); err != nil {
			return nil, nil, err
		}
		if g.IsDirected() {
			if _, err := g.AddEdge(v, center, w); err != nil {
				return nil, nil, err
			}
		}
	}

	return g, &WheelResult{Center: center, Rim: rim}, nil
}
