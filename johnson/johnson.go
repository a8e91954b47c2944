package johnson

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/dijkstra"
	"github.com/katalvlaran/graphina/support"
)

// sourceResult is one source node's reweighted-then-unweighted distance
// and predecessor rows, both already translated back into the caller's
// own NodeIDs.
type sourceResult[W core.Number] struct {
	dist   *core.NodeMap[core.Option[W]]
	parent *core.NodeMap[core.NodeID]
}

// Result holds the all-pairs outcome of a Johnson run, one row per
// source node.
type Result[W core.Number] struct {
	perSource map[core.NodeID]*sourceResult[W]
}

// DistanceBetween returns the shortest-path distance from -> to, or
// false if either is unknown or unreached.
func (r *Result[W]) DistanceBetween(from, to core.NodeID) (W, bool) {
	sr, ok := r.perSource[from]
	if !ok {
		var zero W
		return zero, false
	}
	opt, ok := sr.dist.Get(to)
	if !ok {
		var zero W
		return zero, false
	}
	return opt.Get()
}

// PathTo reconstructs one shortest path from -> to, or reports false if
// no path exists.
func (r *Result[W]) PathTo(from, to core.NodeID) ([]core.NodeID, bool) {
	sr, ok := r.perSource[from]
	if !ok {
		return nil, false
	}
	if _, ok := sr.dist.Get(to); !ok {
		return nil, false
	}

	path := []core.NodeID{to}
	cur := to
	for cur != from {
		p, hasParent := sr.parent.Get(cur)
		if !hasParent {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// Johnson computes all-pairs shortest paths on g, which may carry
// negative edges but must not carry a negative cycle. It computes
// Bellman-Ford potentials h(v) from a virtual zero-weight source
// connected to every node, reweights every edge to
// w'(u,v) = w(u,v) + h(u) - h(v) (now non-negative), runs Dijkstra from
// every node on the reweighted graph, then un-reweights the results.
// Reports GraphError wrapping ErrNegativeCycle if the potential pass
// detects one.
func Johnson[A any, W core.Number](g *core.Graph[A, W], opts ...Option) (*Result[W], *graphina.GraphError) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ids := g.NodeIDs()
	n := len(ids)

	potential := core.NewNodeMap[W](n)
	for _, id := range ids {
		potential.Set(id, 0)
	}

	pairs := support.BuildRelaxPairs(g)

	for pass := 0; pass < n-1; pass++ {
		select {
		case <-o.ctx.Done():
			return nil, graphina.Wrap(graphina.KindInvalidArgument, "johnson.Johnson", o.ctx.Err())
		default:
		}

		changed := false
		for _, e := range pairs {
			pu, _ := potential.Get(e.From)
			newDist := pu + e.Weight
			pv, _ := potential.Get(e.To)
			if newDist < pv {
				potential.Set(e.To, newDist)
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	for _, e := range pairs {
		pu, _ := potential.Get(e.From)
		pv, _ := potential.Get(e.To)
		if pu+e.Weight < pv {
			return nil, graphina.NewNegativeCycle("johnson.Johnson", e.To)
		}
	}

	rgOpts := []core.GraphOption{core.WithDirected(g.IsDirected())}
	if g.AllowsMultiEdges() {
		rgOpts = append(rgOpts, core.WithMultiEdges())
	}
	if g.AllowsLoops() {
		rgOpts = append(rgOpts, core.WithLoops())
	}
	rg := core.NewGraph[A, W](rgOpts...)

	idMap := make(map[core.NodeID]core.NodeID, n)
	revMap := make(map[core.NodeID]core.NodeID, n)
	for _, id := range ids {
		payload, _ := g.NodePayload(id)
		newID := rg.AddNode(payload)
		idMap[id] = newID
		revMap[newID] = id
	}
	for _, e := range g.Edges() {
		hu, _ := potential.Get(e.From)
		hv, _ := potential.Get(e.To)
		_, _ = rg.AddEdge(idMap[e.From], idMap[e.To], e.Weight+hu-hv)
	}

	perSource := make(map[core.NodeID]*sourceResult[W], n)
	for _, s := range ids {
		newS := idMap[s]
		dres, derr := dijkstra.Dijkstra(rg, newS, dijkstra.WithContext[W](o.ctx))
		if derr != nil {
			return nil, graphina.Wrap(graphina.KindInvalidArgument, "johnson.Johnson", derr)
		}

		hs, _ := potential.Get(s)
		distRow := core.NewNodeMap[core.Option[W]](n)
		parentRow := core.NewNodeMap[core.NodeID](n)
		for _, newID := range rg.NodeIDs() {
			origID := revMap[newID]
			opt, ok := dres.Dist.Get(newID)
			if !ok {
				continue
			}
			val, isSome := opt.Get()
			if !isSome {
				continue
			}
			hv, _ := potential.Get(origID)
			distRow.Set(origID, core.Some(val-hs+hv))
			if p, hasParent := dres.Parent.Get(newID); hasParent {
				parentRow.Set(origID, revMap[p])
			}
		}
		perSource[s] = &sourceResult[W]{dist: distRow, parent: parentRow}
	}

	return &Result[W]{perSource: perSource}, nil
}
