package core

import (
	"sort"

	"github.com/katalvlaran/graphina"
)

// ensureAdjBucket makes adjacency[id] non-nil. Caller must hold muEdgeAdj.
func (g *Graph[A, W]) ensureAdjBucket(id NodeID) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[NodeID]map[EdgeID]struct{})
	}
}

// AddNode inserts a new node carrying payload and returns its freshly
// minted, never-reused NodeID.
// Complexity: O(1) amortized.
func (g *Graph[A, W]) AddNode(payload A) NodeID {
	g.muVert.Lock()
	g.nextNodeID++
	id := NodeID{id: g.nextNodeID}
	g.payloads[id] = payload
	g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	g.ensureAdjBucket(id)
	g.muEdgeAdj.Unlock()

	return id
}

// AddNodesBulk inserts len(payloads) nodes and returns their IDs in
// input order. Semantically equivalent to calling AddNode in a loop,
// but pre-sizes the underlying storage once.
// Complexity: O(n) amortized.
func (g *Graph[A, W]) AddNodesBulk(payloads []A) []NodeID {
	ids := make([]NodeID, len(payloads))

	g.muVert.Lock()
	for i, p := range payloads {
		g.nextNodeID++
		id := NodeID{id: g.nextNodeID}
		g.payloads[id] = p
		ids[i] = id
	}
	g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	for _, id := range ids {
		g.ensureAdjBucket(id)
	}
	g.muEdgeAdj.Unlock()

	return ids
}

// ContainsNode reports whether id is a live node.
// Complexity: O(1).
func (g *Graph[A, W]) ContainsNode(id NodeID) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.payloads[id]
	return ok
}

// NodePayload returns the payload carried by id, or false if id is not live.
// Complexity: O(1).
func (g *Graph[A, W]) NodePayload(id NodeID) (A, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	p, ok := g.payloads[id]
	return p, ok
}

// UpdateNode replaces the payload of a live node. Returns
// graphina.ErrNodeNotFound if id is not live.
// Complexity: O(1).
func (g *Graph[A, W]) UpdateNode(id NodeID, payload A) *graphina.GraphError {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.payloads[id]; !ok {
		return graphina.NewNodeNotFound("core.UpdateNode", id)
	}
	g.payloads[id] = payload
	return nil
}

// RemoveNode deletes id and every edge incident to it, atomically: the
// operation either removes the node and all incident edges or leaves
// the Store unchanged and reports failure.
// Returns the removed payload, or false with ErrNodeNotFound if id was
// not live.
// Complexity: O(V + E): the whole edge table is scanned to find id's
// incident edges, not only id's own adjacency.
func (g *Graph[A, W]) RemoveNode(id NodeID) (A, bool, *graphina.GraphError) {
	var zero A

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	payload, ok := g.payloads[id]
	if !ok {
		return zero, false, graphina.NewNodeNotFound("core.RemoveNode", id)
	}

	for eid, e := range g.edges {
		if e.from == id || e.to == id {
			g.unlinkAdjacency(eid, e)
			delete(g.edges, eid)
		}
	}
	delete(g.payloads, id)
	delete(g.adjacency, id)
	g.pruneEmptyAdjacency()

	return payload, true, nil
}

// NodeIDs returns every live NodeID. Order is deterministic for a fixed
// Store state (ascending by minting sequence) but is not insertion
// order across Store versions once deletions have occurred.
// Complexity: O(V log V).
func (g *Graph[A, W]) NodeIDs() []NodeID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]NodeID, 0, len(g.payloads))
	for id := range g.payloads {
		ids = append(ids, id)
	}
	sortNodeIDs(ids)
	return ids
}

// NodeCount returns the number of live nodes.
// Complexity: O(1).
func (g *Graph[A, W]) NodeCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.payloads)
}

// IsEmpty reports whether the graph has zero live nodes.
func (g *Graph[A, W]) IsEmpty() bool { return g.NodeCount() == 0 }

// sortNodeIDs sorts ids ascending by minting sequence, giving every
// enumeration in this package a deterministic, reproducible order.
func sortNodeIDs(ids []NodeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
}
