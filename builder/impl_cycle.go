package builder

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// Cycle builds an n-vertex simple ring C_n: vertices 0..n-1 connected
// i -> (i+1)%n. Requires n >= MinCycleNodes.
func Cycle[A any, W core.Number](n int, gopts []core.GraphOption, opts ...Option[A, W]) (*core.Graph[A, W], []core.NodeID, *graphina.GraphError) {
	if err := validateMin(methodCycle, n, MinCycleNodes); err != nil {
		return nil, nil, err
	}

	cfg := newConfig(opts...)
	g := core.NewGraphWithCapacity[A, W](n, n, gopts...)
	ids := addNodes(g, cfg, n)
	if err := ringEdges(g, cfg, ids); err != nil {
		return nil, nil, err
	}

	return g, ids, nil
}

// addNodes inserts n nodes via cfg.nodeFn in ascending index order and
// returns their freshly minted NodeIDs.
func addNodes[A any, W core.Number](g *core.Graph[A, W], cfg *config[A, W], n int) []core.NodeID {
	ids := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		ids[i] = g.AddNode(cfg.nodeFn(i))
	}
	return ids
}

// ringEdges connects ids[i] -> ids[(i+1)%len(ids)] for every i, closing
// the ring. Shared by Cycle and Wheel's outer rim.
func ringEdges[A any, W core.Number](g *core.Graph[A, W], cfg *config[A, W], ids []core.NodeID) *graphina.GraphError {
	n := len(ids)
	for i := 0; i < n; i++ {
		w := cfg.weightFn(cfg.rng)
		if _, err := g.AddEdge(ids[i], ids[(i+1)%n], w); err != nil {
			return err
		}
	}
	return nil
}
