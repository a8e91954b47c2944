package core

// Clone returns a deep structural copy of g: a new Graph with the same
// policy, nodes, edges, and weights, but independent storage — mutating
// the clone never affects g and vice versa. Node payloads are copied by
// value; if A is a pointer or contains one, the pointee is shared.
// Minted IDs are preserved so NodeID/EdgeID values from g remain valid
// lookup keys in the clone.
// Complexity: O(V + E).
func (g *Graph[A, W]) Clone() *Graph[A, W] {
	g.muVert.RLock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	defer g.muVert.RUnlock()

	clone := &Graph[A, W]{
		cfg:        g.cfg,
		nextNodeID: g.nextNodeID,
		nextEdgeID: g.nextEdgeID,
		payloads:   make(map[NodeID]A, len(g.payloads)),
		edges:      make(map[EdgeID]edge[W], len(g.edges)),
		adjacency:  make(map[NodeID]map[NodeID]map[EdgeID]struct{}, len(g.adjacency)),
	}
	for id, p := range g.payloads {
		clone.payloads[id] = p
	}
	for id, e := range g.edges {
		clone.edges[id] = e
	}
	for u, inner := range g.adjacency {
		innerCopy := make(map[NodeID]map[EdgeID]struct{}, len(inner))
		for v, bucket := range inner {
			bucketCopy := make(map[EdgeID]struct{}, len(bucket))
			for eid := range bucket {
				bucketCopy[eid] = struct{}{}
			}
			innerCopy[v] = bucketCopy
		}
		clone.adjacency[u] = innerCopy
	}
	return clone
}

// CloneEmpty returns a new Graph with g's construction policy but no
// nodes or edges — useful for algorithms (e.g. Louvain's aggregation
// step, Girvan-Newman's working copy) that need a fresh Store shaped
// like g without paying to copy its contents.
func (g *Graph[A, W]) CloneEmpty() *Graph[A, W] {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return NewGraph[A, W](
		WithDirected(g.cfg.directed),
		func(c *graphConfig) {
			c.allowMulti = g.cfg.allowMulti
			c.allowLoops = g.cfg.allowLoops
		},
	)
}
