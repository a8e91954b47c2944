package approx

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// Option configures a heuristic run.
type Option func(*options)

type options struct {
	maxIters int
	eps      float64
}

func defaultOptions() options {
	return options{maxIters: 0, eps: 1e-9}
}

// WithMaxIters caps the number of accepted 2-opt moves; zero (the
// default) means run until a local optimum is reached.
func WithMaxIters(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIters = n
		}
	}
}

// WithEpsilon sets the minimum strictly-improving delta a 2-opt move
// must show to be accepted, guarding against floating-point churn
// around zero-improvement swaps.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		if eps >= 0 {
			o.eps = eps
		}
	}
}

// TourResult holds a closed Hamiltonian tour: Tour[0] == Tour[len(Tour)-1],
// every other node appears exactly once, and Cost is the sum of
// consecutive edge weights along it.
type TourResult[W core.Number] struct {
	Tour []core.NodeID
	Cost W
}

// edgeWeight returns the weight of some edge between a and b, the
// minimum among parallel edges if more than one exists.
func edgeWeight[A any, W core.Number](g *core.Graph[A, W], a, b core.NodeID) (W, bool) {
	eids := g.FindEdges(a, b)
	if len(eids) == 0 {
		return *new(W), false
	}
	best, ok := g.EdgeWeight(eids[0])
	for _, eid := range eids[1:] {
		if w, has := g.EdgeWeight(eid); has && w < best {
			best = w
		}
	}
	return best, ok
}

// tourCost sums consecutive edge weights along a closed tour, failing
// with KindInvalidGraph if any consecutive pair lacks an edge — the
// graph these heuristics operate on must be complete.
func tourCost[A any, W core.Number](op string, g *core.Graph[A, W], tour []core.NodeID) (W, *graphina.GraphError) {
	var total W
	for i := 0; i+1 < len(tour); i++ {
		w, ok := edgeWeight(g, tour[i], tour[i+1])
		if !ok {
			return total, graphina.NewInvalidGraph(op, "tour requires an edge between every consecutive pair of nodes")
		}
		total += w
	}
	return total, nil
}
