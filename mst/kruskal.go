package mst

import (
	"sort"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// Kruskal computes a minimum spanning tree by sorting every edge
// ascending by weight and adding each in turn unless it would close a
// cycle, tracked with a union-find structure keyed by NodeID (path
// compression plus union by rank).
//
// The edge sort is stable, so among equal weights, edges are considered
// in the order core.Graph.Edges() returns them (minting sequence) —
// deterministic across runs of the same build sequence.
//
// Complexity: O(E log E + alpha(V)*E) time, O(V+E) space.
func Kruskal[A any, W core.Number](g *core.Graph[A, W]) (*Result[W], *graphina.GraphError) {
	const op = "mst.Kruskal"

	if g.IsDirected() {
		return nil, graphina.NewInvalidGraph(op, "minimum spanning tree requires an undirected graph")
	}

	n := g.NodeCount()
	if n == 0 {
		return nil, graphina.NewInvalidGraph(op, "graph has no nodes")
	}
	if n == 1 {
		return &Result[W]{Edges: []core.EdgeView[W]{}}, nil
	}

	allEdges := g.Edges()
	edges := make([]core.EdgeView[W], 0, len(allEdges))
	for _, e := range allEdges {
		if e.From == e.To {
			continue // self-loops never belong to a spanning tree
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	uf := newUnionFind(g.NodeIDs())

	mst := make([]core.EdgeView[W], 0, n-1)
	var total W
	for _, e := range edges {
		if uf.find(e.From) == uf.find(e.To) {
			continue
		}
		uf.union(e.From, e.To)
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == n-1 {
			break
		}
	}

	if len(mst) < n-1 {
		return nil, graphina.NewInvalidGraph(op, "graph is disconnected; no spanning tree covers every node")
	}

	return &Result[W]{Edges: mst, TotalWeight: total}, nil
}

// unionFind is a disjoint-set structure over core.NodeID with path
// compression and union by rank.
type unionFind struct {
	parent map[core.NodeID]core.NodeID
	rank   map[core.NodeID]int
}

func newUnionFind(ids []core.NodeID) *unionFind {
	uf := &unionFind{
		parent: make(map[core.NodeID]core.NodeID, len(ids)),
		rank:   make(map[core.NodeID]int, len(ids)),
	}
	for _, id := range ids {
		uf.parent[id] = id
	}
	return uf
}

func (uf *unionFind) find(id core.NodeID) core.NodeID {
	for uf.parent[id] != id {
		uf.parent[id] = uf.parent[uf.parent[id]]
		id = uf.parent[id]
	}
	return id
}

func (uf *unionFind) union(a, b core.NodeID) {
	rootA, rootB := uf.find(a), uf.find(b)
	if rootA == rootB {
		return
	}
	switch {
	case uf.rank[rootA] < uf.rank[rootB]:
		uf.parent[rootA] = rootB
	case uf.rank[rootA] > uf.rank[rootB]:
		uf.parent[rootB] = rootA
	default:
		uf.parent[rootB] = rootA
		uf.rank[rootA]++
	}
}
