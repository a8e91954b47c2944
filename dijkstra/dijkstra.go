package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// Dijkstra computes shortest distances from source to every node g's
// search frontier reaches, using a binary min-heap with the classic
// lazy-decrease-key strategy: a shorter distance to an already-queued
// node is pushed as a new heap entry rather than mutating the old one,
// and stale entries are discarded when popped.
//
// Preconditions: source must be live in g, and g must carry no negative
// edge weight (checked by an O(E) pre-scan before the main loop).
//
// Complexity: O((V+E) log V) time, O(V+E) space.
func Dijkstra[A any, W core.Number](g *core.Graph[A, W], source core.NodeID, opts ...Option[W]) (*Result[W], *graphina.GraphError) {
	o := defaultOptions[W]()
	for _, opt := range opts {
		opt(&o)
	}

	if !g.ContainsNode(source) {
		return nil, graphina.NewNodeNotFound("dijkstra.Dijkstra", source)
	}

	var zero W
	for _, e := range g.Edges() {
		if e.Weight < zero {
			return nil, graphina.NewNegativeWeight("dijkstra.Dijkstra", e.From, e.To, e.Weight)
		}
	}

	n := g.NodeCount()
	dist := core.NewNodeMap[core.Option[W]](n)
	parent := core.NewNodeMap[core.NodeID](n)
	finalized := core.NewNodeMap[bool](n)

	var pqBuf []*pqItem[W]
	if o.pool != nil {
		h := o.pool.Acquire()
		defer func() {
			h.Value = h.Value[:0]
			h.Release()
		}()
		pqBuf = h.Value[:0]
	} else {
		pqBuf = make([]*pqItem[W], 0, n)
	}
	pq := nodePQ[W](pqBuf)
	heap.Init(&pq)
	heap.Push(&pq, &pqItem[W]{id: source, dist: zero})
	dist.Set(source, core.Some(zero))

	for pq.Len() > 0 {
		select {
		case <-o.ctx.Done():
			return nil, graphina.Wrap(graphina.KindInvalidArgument, "dijkstra.Dijkstra", o.ctx.Err())
		default:
		}

		item := heap.Pop(&pq).(*pqItem[W])
		u, d := item.id, item.dist

		if done, _ := finalized.Get(u); done {
			continue
		}
		if o.hasMaxDistance && d > o.maxDistance {
			break
		}
		finalized.Set(u, true)

		for _, v := range g.Neighbors(u) {
			for _, eid := range g.FindEdges(u, v) {
				w, ok := g.EdgeWeight(eid)
				if !ok {
					continue
				}
				if o.hasThreshold && w >= o.infEdgeThreshold {
					continue
				}

				newDist := d + w
				if o.hasMaxDistance && newDist > o.maxDistance {
					continue
				}
				if cur, ok := dist.Get(v); ok {
					if curD, isSome := cur.Get(); isSome && newDist >= curD {
						continue
					}
				}

				dist.Set(v, core.Some(newDist))
				parent.Set(v, u)
				heap.Push(&pq, &pqItem[W]{id: v, dist: newDist})
			}
		}
	}

	for _, id := range g.NodeIDs() {
		if _, seen := dist.Get(id); !seen {
			dist.Set(id, core.None[W]())
		}
	}

	return &Result[W]{Dist: dist, Parent: parent}, nil
}

// pqItem is one priority-queue entry: a node and its candidate distance
// from source at the time it was pushed.
type pqItem[W core.Number] struct {
	id   core.NodeID
	dist W
}

// nodePQ is a min-heap of *pqItem ordered by ascending distance.
type nodePQ[W core.Number] []*pqItem[W]

func (pq nodePQ[W]) Len() int            { return len(pq) }
func (pq nodePQ[W]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ[W]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[W]) Push(x interface{}) { *pq = append(*pq, x.(*pqItem[W])) }
func (pq *nodePQ[W]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
