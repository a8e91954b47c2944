package core

import "sort"

// Neighbors returns the distinct nodes reachable from id by one edge. For
// a directed graph this is the out-neighborhood; for undirected graphs
// in/out coincide.
// Complexity: O(deg(id) log deg(id)) for the sort.
func (g *Graph[A, W]) Neighbors(id NodeID) []NodeID {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]NodeID, 0, len(g.adjacency[id]))
	for to, bucket := range g.adjacency[id] {
		if len(bucket) > 0 {
			out = append(out, to)
		}
	}
	sortNodeIDs(out)
	return out
}

// OutNeighbors is an alias for Neighbors, named for symmetry with
// InNeighbors on directed graphs.
func (g *Graph[A, W]) OutNeighbors(id NodeID) []NodeID { return g.Neighbors(id) }

// InNeighbors returns the distinct nodes with an edge landing on id. On
// an undirected graph this equals Neighbors(id).
// Complexity: O(V + deg) for directed graphs (no reverse index is kept),
// O(deg log deg) for undirected graphs.
func (g *Graph[A, W]) InNeighbors(id NodeID) []NodeID {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if !g.cfg.directed {
		out := make([]NodeID, 0, len(g.adjacency[id]))
		for to, bucket := range g.adjacency[id] {
			if len(bucket) > 0 {
				out = append(out, to)
			}
		}
		sortNodeIDs(out)
		return out
	}

	seen := make(map[NodeID]struct{})
	for u, inner := range g.adjacency {
		if bucket, ok := inner[id]; ok && len(bucket) > 0 {
			seen[u] = struct{}{}
		}
	}
	out := make([]NodeID, 0, len(seen))
	for u := range seen {
		out = append(out, u)
	}
	sortNodeIDs(out)
	return out
}

// HasEdge reports whether at least one edge connects from and to in the
// direction implied by the graph's policy (an alias kept for readability
// at call sites that test reachability rather than enumerate edges).
func (g *Graph[A, W]) HasEdge(from, to NodeID) bool { return g.ContainsEdge(from, to) }

// OutDegree returns the number of edges leaving id, counting parallel
// edges and loops once each direction they occur.
// Complexity: O(deg(id)).
func (g *Graph[A, W]) OutDegree(id NodeID) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	n := 0
	for _, bucket := range g.adjacency[id] {
		n += len(bucket)
	}
	return n
}

// InDegree returns the number of edges landing on id. On an undirected
// graph this equals OutDegree(id).
// Complexity: O(deg(id)) undirected; O(E) directed (no reverse index).
func (g *Graph[A, W]) InDegree(id NodeID) int {
	if !g.cfg.directed {
		return g.OutDegree(id)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	n := 0
	for _, e := range g.edges {
		if e.to == id {
			n++
		}
	}
	return n
}

// Degree returns OutDegree+InDegree for directed graphs (a loop counts
// twice, once per direction) and OutDegree for undirected graphs (a loop
// counts once, per the Store's loop-degree convention).
func (g *Graph[A, W]) Degree(id NodeID) int {
	if !g.cfg.directed {
		return g.OutDegree(id)
	}
	return g.OutDegree(id) + g.InDegree(id)
}

// RetainNodes deletes every live node for which keep returns false,
// along with their incident edges.
// Complexity: O(V + E).
func (g *Graph[A, W]) RetainNodes(keep func(id NodeID, payload A) bool) {
	for _, id := range g.NodeIDs() {
		payload, ok := g.NodePayload(id)
		if ok && !keep(id, payload) {
			_, _, _ = g.RemoveNode(id)
		}
	}
}

// RetainEdges deletes every live edge for which keep returns false.
// Complexity: O(E).
func (g *Graph[A, W]) RetainEdges(keep func(id EdgeID, from, to NodeID, weight W) bool) {
	g.muEdgeAdj.RLock()
	var toDrop []EdgeID
	for id, e := range g.edges {
		if !keep(id, e.from, e.to, e.weight) {
			toDrop = append(toDrop, id)
		}
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(toDrop, func(i, j int) bool { return toDrop[i].Less(toDrop[j]) })
	for _, id := range toDrop {
		_, _, _ = g.RemoveEdge(id)
	}
}

// Clear empties the graph of all nodes and edges, preserving its
// construction-time policy (directed/multi/loops).
func (g *Graph[A, W]) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	defer g.muVert.Unlock()

	g.payloads = make(map[NodeID]A)
	g.edges = make(map[EdgeID]edge[W])
	g.adjacency = make(map[NodeID]map[NodeID]map[EdgeID]struct{})
}
