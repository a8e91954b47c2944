package mst

import (
	"container/heap"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// Prim computes a minimum spanning tree by growing a single tree from
// root, repeatedly extracting the cheapest edge that reaches a node not
// yet in the tree via a binary min-heap with lazy decrease-key (stale
// heap entries for already-settled nodes are discarded on pop).
//
// Complexity: O(E log V) time, O(V+E) space.
func Prim[A any, W core.Number](g *core.Graph[A, W], root core.NodeID) (*Result[W], *graphina.GraphError) {
	const op = "mst.Prim"

	if g.IsDirected() {
		return nil, graphina.NewInvalidGraph(op, "minimum spanning tree requires an undirected graph")
	}
	if root.IsZero() {
		return nil, graphina.NewInvalidArgument(op, "root", "zero NodeID is never live; supply a NodeID returned by AddNode")
	}
	if !g.ContainsNode(root) {
		return nil, graphina.NewNodeNotFound(op, root)
	}

	n := g.NodeCount()
	if n == 1 {
		return &Result[W]{Edges: []core.EdgeView[W]{}}, nil
	}

	visited := core.NewNodeMap[bool](n)
	visited.Set(root, true)

	pq := make(mstPQ[W], 0, n)
	heap.Init(&pq)
	pushFrontier(g, &pq, visited, root)

	mst := make([]core.EdgeView[W], 0, n-1)
	var total W
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(&pq).(*mstEdge[W])
		if done, _ := visited.Get(e.to); done {
			continue
		}
		visited.Set(e.to, true)
		mst = append(mst, core.EdgeView[W]{ID: e.id, From: e.from, To: e.to, Weight: e.weight})
		total += e.weight
		pushFrontier(g, &pq, visited, e.to)
	}

	if len(mst) < n-1 {
		return nil, graphina.NewInvalidGraph(op, "graph is disconnected; no spanning tree covers every node")
	}

	return &Result[W]{Edges: mst, TotalWeight: total}, nil
}

// pushFrontier pushes every edge from u to a not-yet-visited neighbor.
func pushFrontier[A any, W core.Number](g *core.Graph[A, W], pq *mstPQ[W], visited *core.NodeMap[bool], u core.NodeID) {
	for _, v := range g.Neighbors(u) {
		if done, _ := visited.Get(v); done {
			continue
		}
		for _, eid := range g.FindEdges(u, v) {
			if u == v {
				continue // self-loop
			}
			w, ok := g.EdgeWeight(eid)
			if !ok {
				continue
			}
			heap.Push(pq, &mstEdge[W]{id: eid, from: u, to: v, weight: w})
		}
	}
}

// mstEdge is one priority-queue entry: a candidate edge from the growing
// tree to a not-yet-visited node, at the time it was discovered.
type mstEdge[W core.Number] struct {
	id       core.EdgeID
	from, to core.NodeID
	weight   W
}

// mstPQ is a min-heap of *mstEdge ordered by ascending weight.
type mstPQ[W core.Number] []*mstEdge[W]

func (pq mstPQ[W]) Len() int            { return len(pq) }
func (pq mstPQ[W]) Less(i, j int) bool  { return pq[i].weight < pq[j].weight }
func (pq mstPQ[W]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *mstPQ[W]) Push(x interface{}) { *pq = append(*pq, x.(*mstEdge[W])) }
func (pq *mstPQ[W]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
