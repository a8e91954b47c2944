package support

import "github.com/katalvlaran/graphina/core"

// RelaxPair is one directed relaxation candidate derived from a graph
// edge: an edge (u, v, w) always yields u->v; an undirected edge also
// yields v->u, since relaxation-based engines treat every edge as a
// pair of directed arcs regardless of the graph's own directedness.
type RelaxPair[W core.Number] struct {
	From, To core.NodeID
	Weight   W
}

// BuildRelaxPairs flattens a Graph's edges into directed relaxation
// candidates, shared by Bellman-Ford's relaxation passes and Johnson's
// potential computation.
func BuildRelaxPairs[A any, W core.Number](g *core.Graph[A, W]) []RelaxPair[W] {
	views := g.Edges()
	directed := g.IsDirected()
	pairs := make([]RelaxPair[W], 0, len(views)*2)
	for _, e := range views {
		pairs = append(pairs, RelaxPair[W]{From: e.From, To: e.To, Weight: e.Weight})
		if !directed && e.From != e.To {
			pairs = append(pairs, RelaxPair[W]{From: e.To, To: e.From, Weight: e.Weight})
		}
	}

	return pairs
}
