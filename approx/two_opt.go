package approx

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// TwoOpt improves a closed tour via deterministic first-improvement
// 2-opt: repeatedly finds a pair of edges (a,b) and (c,d) whose removal
// and reconnection as (a,c) and (b,d) — reversing the segment between
// them — strictly shortens the tour by more than the configured
// epsilon, applies the first such move found, and restarts scanning
// from the beginning. Stops at a local optimum or after WithMaxIters
// accepted moves.
//
// tour must be a closed cycle (tour[0] == tour[len(tour)-1]) over every
// live node of g exactly once, such as one returned by NearestNeighbor.
//
// Complexity: O(iterations * n^2) time, O(1) extra space per move.
func TwoOpt[A any, W core.Number](g *core.Graph[A, W], tour []core.NodeID, opts ...Option) (*TourResult[W], *graphina.GraphError) {
	const op = "approx.TwoOpt"

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(tour) < 4 {
		cost, err := tourCost(op, g, tour)
		if err != nil {
			return nil, err
		}
		return &TourResult[W]{Tour: tour, Cost: cost}, nil
	}

	cur := make([]core.NodeID, len(tour))
	copy(cur, tour)
	n := len(cur) - 1 // number of distinct nodes; cur[n] == cur[0]

	cost, err := tourCost(op, g, cur)
	if err != nil {
		return nil, err
	}

	accepted := 0
	for {
		improved := false
		for i := 1; i <= n-2 && !improved; i++ {
			a, b := cur[i-1], cur[i]
			wab, ok := edgeWeight(g, a, b)
			if !ok {
				return nil, graphina.NewInvalidGraph(op, "tour requires an edge between every consecutive pair of nodes")
			}
			for k := i + 1; k <= n-1; k++ {
				c, d := cur[k], cur[k+1]
				wcd, ok := edgeWeight(g, c, d)
				if !ok {
					return nil, graphina.NewInvalidGraph(op, "tour requires an edge between every consecutive pair of nodes")
				}
				wac, ok1 := edgeWeight(g, a, c)
				wbd, ok2 := edgeWeight(g, b, d)
				if !ok1 || !ok2 {
					continue
				}
				delta := float64(wac+wbd) - float64(wab+wcd)
				if delta < -o.eps {
					reverse(cur, i, k)
					cost = cost - wab - wcd + wac + wbd
					accepted++
					improved = true
					break
				}
			}
		}
		if !improved {
			break
		}
		if o.maxIters > 0 && accepted >= o.maxIters {
			break
		}
	}

	return &TourResult[W]{Tour: cur, Cost: cost}, nil
}

// reverse reverses tour[i..k] in place, inclusive.
func reverse(tour []core.NodeID, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
