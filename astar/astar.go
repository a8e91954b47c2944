package astar

import (
	"container/heap"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// AStar finds a shortest path from start to goal using the supplied
// heuristic to guide expansion order. Weights must be non-negative,
// same precondition as dijkstra — violation yields NegativeWeight.
// Reports NoPath if goal is unreachable from start.
func AStar[A any, W core.Number](g *core.Graph[A, W], start, goal core.NodeID, h Heuristic[W], opts ...Option[W]) (*Result[W], *graphina.GraphError) {
	o := defaultOptions[W]()
	for _, opt := range opts {
		opt(&o)
	}

	if !g.ContainsNode(start) {
		return nil, graphina.NewNodeNotFound("astar.AStar", start)
	}
	if !g.ContainsNode(goal) {
		return nil, graphina.NewNodeNotFound("astar.AStar", goal)
	}

	var zero W
	for _, e := range g.Edges() {
		if e.Weight < zero {
			return nil, graphina.NewNegativeWeight("astar.AStar", e.From, e.To, e.Weight)
		}
	}

	gScore := core.NewNodeMap[W](g.NodeCount())
	parent := core.NewNodeMap[core.NodeID](g.NodeCount())
	closed := core.NewNodeMap[bool](g.NodeCount())

	gScore.Set(start, zero)

	pq := make(nodePQ[W], 0, g.NodeCount())
	heap.Init(&pq)
	heap.Push(&pq, &pqItem[W]{id: start, priority: h(start)})

	for pq.Len() > 0 {
		select {
		case <-o.ctx.Done():
			return nil, graphina.Wrap(graphina.KindInvalidArgument, "astar.AStar", o.ctx.Err())
		default:
		}

		item := heap.Pop(&pq).(*pqItem[W])
		u := item.id
		if done, _ := closed.Get(u); done {
			continue
		}
		if u == goal {
			return &Result[W]{Path: reconstruct(parent, start, goal), Cost: mustGet(gScore, goal)}, nil
		}
		closed.Set(u, true)

		gu := mustGet(gScore, u)
		for _, v := range g.Neighbors(u) {
			for _, eid := range g.FindEdges(u, v) {
				w, ok := g.EdgeWeight(eid)
				if !ok {
					continue
				}
				if done, _ := closed.Get(v); done {
					continue
				}
				tentative := gu + w
				if cur, ok := gScore.Get(v); ok && tentative >= cur {
					continue
				}
				gScore.Set(v, tentative)
				parent.Set(v, u)
				heap.Push(&pq, &pqItem[W]{id: v, priority: tentative + h(v)})
			}
		}
	}

	return nil, graphina.NewNoPath("astar.AStar", start, goal)
}

func mustGet[W core.Number](m *core.NodeMap[W], id core.NodeID) W {
	v, _ := m.Get(id)
	return v
}

func reconstruct(parent *core.NodeMap[core.NodeID], start, goal core.NodeID) []core.NodeID {
	path := []core.NodeID{goal}
	cur := goal
	for cur != start {
		p, ok := parent.Get(cur)
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type pqItem[W core.Number] struct {
	id       core.NodeID
	priority W
}
type nodePQ[W core.Number] []*pqItem[W]

func (pq nodePQ[W]) Len() int            { return len(pq) }
func (pq nodePQ[W]) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq nodePQ[W]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[W]) Push(x interface{}) { *pq = append(*pq, x.(*pqItem[W])) }
func (pq *nodePQ[W]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
