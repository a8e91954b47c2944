package builder

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// CompleteBipartite builds K_{n1,n2}: every left vertex connects to
// every right vertex, mirrored only on directed graphs. Node payloads
// for the left partition are generated at indices 0..n1-1 and the
// right partition at indices n1..n1+n2-1. Requires n1,n2 >= MinPartitionSize.
func CompleteBipartite[A any, W core.Number](n1, n2 int, gopts []core.GraphOption, opts ...Option[A, W]) (*core.Graph[A, W], *BipartiteResult, *graphina.GraphError) {
	if err := validatePartition(methodCompleteBipartite, n1, n2); err != nil {
		return nil, nil, err
	}

	cfg := newConfig(opts...)
	g := core.NewGraphWithCapacity[A, W](n1+n2, n1*n2, gopts...)

	left := make([]core.NodeID, n1)
	for i := 0; i < n1; i++ {
		left[i] = g.AddNode(cfg.nodeFn(i))
	}
	right := make([]core.NodeID, n2)
	for j := 0; j < n2; j++ {
		right[j] = g.AddNode(cfg.nodeFn(n1 + j))
	}

	for i := 0; i < n1; i++ {
		u := left[i]
		for j := 0; j < n2; j++ {
			v := right[j]
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

	return g, &BipartiteResult{Left: left, Right: right}, nil
}
