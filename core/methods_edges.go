package core

import (
	"sort"

	"github.com/katalvlaran/graphina"
)

// ensureAdjPair makes adjacency[from][to] non-nil. Caller must hold muEdgeAdj.
func (g *Graph[A, W]) ensureAdjPair(from, to NodeID) {
	g.ensureAdjBucket(from)
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[EdgeID]struct{})
	}
}

// AddEdge creates an edge from -> to with the given weight, honoring the
// graph's directed/multi-edge/loop policy. Returns ErrEndpointMissing if
// either endpoint is not live, ErrInvalidGraph if the edge would violate
// the loop or multi-edge policy.
// Complexity: O(1) amortized.
func (g *Graph[A, W]) AddEdge(from, to NodeID, weight W) (EdgeID, *graphina.GraphError) {
	g.muVert.RLock()
	_, fromOK := g.payloads[from]
	_, toOK := g.payloads[to]
	g.muVert.RUnlock()
	if !fromOK {
		return EdgeID{}, graphina.NewEndpointMissing("core.AddEdge", from)
	}
	if !toOK {
		return EdgeID{}, graphina.NewEndpointMissing("core.AddEdge", to)
	}

	if from == to && !g.cfg.allowLoops {
		return EdgeID{}, graphina.NewInvalidGraph("core.AddEdge", "self-loops are not allowed on this graph")
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.cfg.allowMulti {
		if inner, ok := g.adjacency[from][to]; ok && len(inner) > 0 {
			return EdgeID{}, graphina.NewInvalidGraph("core.AddEdge", "parallel edges are not allowed on this graph")
		}
	}

	g.nextEdgeID++
	eid := EdgeID{id: g.nextEdgeID}
	g.edges[eid] = edge[W]{id: eid, from: from, to: to, weight: weight}

	g.ensureAdjPair(from, to)
	g.adjacency[from][to][eid] = struct{}{}
	if !g.cfg.directed && from != to {
		g.ensureAdjPair(to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// AddEdgesBulk inserts len(triples) edges (from, to, weight) and returns
// their EdgeIDs in input order. Semantically equivalent to calling
// AddEdge in a loop.
// Complexity: O(m) amortized; the first failing triple aborts with no
// partial mutation for that triple, but earlier triples in the same
// call remain applied (each AddEdge is independently transactional).
func (g *Graph[A, W]) AddEdgesBulk(triples []struct {
	From, To NodeID
	Weight   W
}) ([]EdgeID, *graphina.GraphError) {
	ids := make([]EdgeID, 0, len(triples))
	for _, t := range triples {
		id, err := g.AddEdge(t.From, t.To, t.Weight)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// RemoveEdge deletes eid. Returns the removed weight, or false with
// ErrEdgeNotFound if eid was not live.
// Complexity: O(1).
func (g *Graph[A, W]) RemoveEdge(eid EdgeID) (W, bool, *graphina.GraphError) {
	var zero W
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return zero, false, graphina.NewEdgeNotFound("core.RemoveEdge", eid)
	}
	delete(g.edges, eid)
	g.unlinkAdjacency(eid, e)
	for _, k := range [2][2]NodeID{{e.from, e.to}, {e.to, e.from}} {
		if inner := g.adjacency[k[0]]; inner != nil && len(inner[k[1]]) == 0 {
			delete(inner, k[1])
		}
	}

	return e.weight, true, nil
}

// unlinkAdjacency removes eid from the from->to bucket (and its mirror,
// if undirected). Caller must hold muEdgeAdj.
func (g *Graph[A, W]) unlinkAdjacency(eid EdgeID, e edge[W]) {
	if m := g.adjacency[e.from][e.to]; m != nil {
		delete(m, eid)
	}
	if !g.cfg.directed && e.from != e.to {
		if m := g.adjacency[e.to][e.from]; m != nil {
			delete(m, eid)
		}
	}
}

// pruneEmptyAdjacency removes empty nested maps left behind by deletes.
// Caller must hold muEdgeAdj.
func (g *Graph[A, W]) pruneEmptyAdjacency() {
	for u, inner := range g.adjacency {
		for v, bucket := range inner {
			if len(bucket) == 0 {
				delete(inner, v)
			}
		}
		if _, stillLive := g.payloads[u]; !stillLive && len(inner) == 0 {
			delete(g.adjacency, u)
		}
	}
}

// ContainsEdge reports whether at least one edge from -> to exists. For
// multigraphs use FindEdges to enumerate all of them.
// Complexity: O(1).
func (g *Graph[A, W]) ContainsEdge(from, to NodeID) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	inner, ok := g.adjacency[from][to]
	return ok && len(inner) > 0
}

// FindEdges returns every EdgeID of an edge from -> to, sorted for
// determinism. Complexity: O(k log k) where k is the number found.
func (g *Graph[A, W]) FindEdges(from, to NodeID) []EdgeID {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var out []EdgeID
	for eid := range g.adjacency[from][to] {
		out = append(out, eid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// EdgeWeight returns the weight of eid, or false if eid is not live.
// Complexity: O(1).
func (g *Graph[A, W]) EdgeWeight(eid EdgeID) (W, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		var zero W
		return zero, false
	}
	return e.weight, true
}

// UpdateEdgeWeight replaces the weight of a live edge. Returns
// ErrEdgeNotFound if eid is not live.
// Complexity: O(1).
func (g *Graph[A, W]) UpdateEdgeWeight(eid EdgeID, weight W) *graphina.GraphError {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return graphina.NewEdgeNotFound("core.UpdateEdgeWeight", eid)
	}
	e.weight = weight
	g.edges[eid] = e
	return nil
}

// Endpoints returns the (from, to) pair for eid, or false if not live.
func (g *Graph[A, W]) Endpoints(eid EdgeID) (from, to NodeID, ok bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, found := g.edges[eid]
	if !found {
		return NodeID{}, NodeID{}, false
	}
	return e.from, e.to, true
}

// EdgeIDs returns every live EdgeID, sorted by minting sequence.
// Complexity: O(E log E).
func (g *Graph[A, W]) EdgeIDs() []EdgeID {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	ids := make([]EdgeID, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
	return ids
}

// EdgeCount returns the number of live edges.
// Complexity: O(1).
func (g *Graph[A, W]) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.edges)
}

// Density returns 2m/(n(n-1)) for undirected graphs, m/(n(n-1)) for
// directed graphs, and 0 when n < 2.
func (g *Graph[A, W]) Density() float64 {
	n := g.NodeCount()
	if n < 2 {
		return 0
	}
	m := float64(g.EdgeCount())
	denom := float64(n) * float64(n-1)
	if g.cfg.directed {
		return m / denom
	}
	return 2 * m / denom
}
