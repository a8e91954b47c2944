package approx

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// NearestNeighbor builds a Hamiltonian cycle by repeatedly walking to
// the closest unvisited node, starting from start, then closing the
// cycle back to start. It gives no approximation guarantee on its own
// (pathological instances can make it arbitrarily bad) but is a cheap,
// deterministic seed tour for TwoOpt to refine.
//
// Preconditions: g must be undirected, carry no negative weights, and
// have an edge between every pair of distinct live nodes (a complete
// graph) — any missing edge produces KindInvalidGraph.
//
// Complexity: O(n^2) time, O(n) space.
func NearestNeighbor[A any, W core.Number](g *core.Graph[A, W], start core.NodeID) (*TourResult[W], *graphina.GraphError) {
	const op = "approx.NearestNeighbor"

	if g.IsDirected() {
		return nil, graphina.NewInvalidGraph(op, "requires an undirected graph")
	}
	if !g.ContainsNode(start) {
		return nil, graphina.NewNodeNotFound(op, start)
	}

	ids := g.NodeIDs()
	n := len(ids)
	if n < 2 {
		return &TourResult[W]{Tour: []core.NodeID{start, start}}, nil
	}

	visited := make(map[core.NodeID]bool, n)
	visited[start] = true
	tour := make([]core.NodeID, 0, n+1)
	tour = append(tour, start)

	cur := start
	for len(tour) < n {
		var best core.NodeID
		var bestW W
		found := false
		for _, cand := range ids {
			if visited[cand] {
				continue
			}
			w, ok := edgeWeight(g, cur, cand)
			if !ok {
				continue
			}
			if !found || w < bestW {
				best, bestW, found = cand, w, true
			}
		}
		if !found {
			return nil, graphina.NewInvalidGraph(op, "graph is not complete; nearest-neighbor construction got stuck")
		}
		visited[best] = true
		tour = append(tour, best)
		cur = best
	}
	tour = append(tour, start)

	cost, err := tourCost(op, g, tour)
	if err != nil {
		return nil, err
	}
	return &TourResult[W]{Tour: tour, Cost: cost}, nil
}
