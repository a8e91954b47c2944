package builder

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// RandomRegular builds an undirected d-regular simple graph over n
// vertices via stub matching: it pairs n*d stubs after a shuffle and
// validates the pairing against the graph's loop/multi-edge policy
// before mutating the graph, reshuffling up to maxStubMatchingAttempts
// times on an invalid pairing. Only undirected graphs are supported.
// Requires n >= 1, 0 <= d < n, and n*d even; a non-nil rng is
// mandatory.
func RandomRegular[A any, W core.Number](n, d int, gopts []core.GraphOption, opts ...Option[A, W]) (*core.Graph[A, W], []core.NodeID, *graphina.GraphError) {
	cfg := newConfig(opts...)
	g := core.NewGraphWithCapacity[A, W](n, n*d/2, gopts...)

	if g.IsDirected() {
		return nil, nil, graphina.NewInvalidGraph(methodRandomRegular, "only undirected graphs are supported")
	}
	if err := validateMin(methodRandomRegular, n, 1); err != nil {
		return nil, nil, err
	}
	if d < 0 || d >= n {
		return nil, nil, graphina.NewInvalidArgument(methodRandomRegular, "d", "must be in [0, n)")
	}
	if (n*d)%2 != 0 {
		return nil, nil, graphina.NewInvalidArgument(methodRandomRegular, "n,d", "n*d must be even")
	}
	if cfg.rng == nil {
		return nil, nil, graphina.NewInvalidArgument(methodRandomRegular, "rng", "required (use WithRand/WithSeed)")
	}

	ids := addNodes(g, cfg, n)

	stubCount := n * d
	if stubCount == 0 {
		return g, ids, nil
	}
	stubs := make([]int, 0, stubCount)
	for i := 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, i)
		}
	}

	allowLoops := g.AllowsLoops()
	allowMulti := g.AllowsMultiEdges()
	rng := cfg.rng

	for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
		rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		valid := true
		var seen map[[2]int]struct{}
		if !allowMulti {
			seen = make(map[[2]int]struct{}, stubCount/2)
		}
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if !allowLoops && u == v {
				valid = false
				break
			}
			if !allowMulti {
				if u > v {
					u, v = v, u
				}
				key := [2]int{u, v}
				if _, dup := seen[key]; dup {
					valid = false
					break
				}
				seen[key] = struct{}{}
			}
		}
		if !valid {
			continue
		}

		for i := 0; i < stubCount; i += 2 {
			u, v := ids[stubs[i]], ids[stubs[i+1]]
			w := cfg.weightFn(rng)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return nil, nil, err
			}
		}

		return g, ids, nil
	}

	return nil, nil, graphina.NewConvergenceFailed(methodRandomRegular, maxStubMatchingAttempts, "stub matching could not satisfy graph mode constraints")
}
