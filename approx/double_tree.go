package approx

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/mst"
)

// DoubleTree approximates the symmetric, metric Travelling Salesman
// Problem without matching: compute a minimum spanning tree, walk it in
// DFS preorder (visiting each tree edge twice, once down and once back
// up — the "double tree"), then shortcut repeat visits to produce a
// Hamiltonian cycle. Under the triangle inequality this tour costs at
// most 2x the optimal tour; graphina does not verify the triangle
// inequality holds, so the bound is the caller's responsibility to
// uphold.
//
// Preconditions: g must be undirected, connected, and carry an edge
// between every pair of distinct nodes touched by the shortcut step
// (in practice, complete).
//
// Complexity: O(E log E) for the MST plus O(n) for the walk and
// shortcut, dominated by mst.Kruskal.
func DoubleTree[A any, W core.Number](g *core.Graph[A, W]) (*TourResult[W], *graphina.GraphError) {
	const op = "approx.DoubleTree"

	if g.IsDirected() {
		return nil, graphina.NewInvalidGraph(op, "requires an undirected graph")
	}

	n := g.NodeCount()
	if n < 2 {
		ids := g.NodeIDs()
		if n == 1 {
			return &TourResult[W]{Tour: []core.NodeID{ids[0], ids[0]}}, nil
		}
		return nil, graphina.NewInvalidGraph(op, "graph has no nodes")
	}

	tree, err := mst.Kruskal(g)
	if err != nil {
		return nil, graphina.Wrap(graphina.KindInvalidArgument, op, err)
	}

	adj := make(map[core.NodeID][]core.NodeID, n)
	for _, e := range tree.Edges {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	root := g.NodeIDs()[0]
	walk := make([]core.NodeID, 0, 2*n)
	visited := make(map[core.NodeID]bool, n)
	var dfs func(core.NodeID)
	dfs = func(v core.NodeID) {
		visited[v] = true
		walk = append(walk, v)
		for _, w := range adj[v] {
			if !visited[w] {
				dfs(w)
				walk = append(walk, v)
			}
		}
	}
	dfs(root)

	tour := make([]core.NodeID, 0, n+1)
	seen := make(map[core.NodeID]bool, n)
	for _, v := range walk {
		if !seen[v] {
			seen[v] = true
			tour = append(tour, v)
		}
	}
	tour = append(tour, root)

	cost, cerr := tourCost(op, g, tour)
	if cerr != nil {
		return nil, cerr
	}
	return &TourResult[W]{Tour: tour, Cost: cost}, nil
}
