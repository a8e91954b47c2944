package bellmanford

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/support"
)

// BellmanFord computes single-source shortest paths from source,
// tolerating negative edge weights. It runs NodeCount-1 relaxation
// passes followed by one detection pass; if the detection pass still
// improves a distance, a negative cycle reachable from source exists
// and is reported via GraphError wrapping ErrNegativeCycle, with
// Result.NegativeCycle holding a closed witness [v0, ..., v0].
func BellmanFord[A any, W core.Number](g *core.Graph[A, W], source core.NodeID, opts ...Option[W]) (*Result[W], *graphina.GraphError) {
	o := defaultOptions[W]()
	for _, opt := range opts {
		opt(&o)
	}

	if !g.ContainsNode(source) {
		return nil, graphina.NewNodeNotFound("bellmanford.BellmanFord", source)
	}

	n := g.NodeCount()
	dist := core.NewNodeMap[core.Option[W]](n)
	parent := core.NewNodeMap[core.NodeID](n)

	var zero W
	dist.Set(source, core.Some(zero))

	pairs := support.BuildRelaxPairs(g)

	for pass := 0; pass < n-1; pass++ {
		select {
		case <-o.ctx.Done():
			return nil, graphina.Wrap(graphina.KindInvalidArgument, "bellmanford.BellmanFord", o.ctx.Err())
		default:
		}

		changed := false
		for _, e := range pairs {
			if relax(dist, parent, e) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	for _, e := range pairs {
		du, ok := dist.Get(e.From)
		if !ok {
			continue
		}
		duVal, isSome := du.Get()
		if !isSome {
			continue
		}
		newDist := duVal + e.Weight

		dv, ok := dist.Get(e.To)
		improved := !ok
		if ok {
			dvVal, dvSome := dv.Get()
			improved = !dvSome || newDist < dvVal
		}
		if improved {
			witness := buildWitness(e.To, parent, n)
			return &Result[W]{Dist: dist, Parent: parent, NegativeCycle: witness},
				graphina.NewNegativeCycle("bellmanford.BellmanFord", source)
		}
	}

	return &Result[W]{Dist: dist, Parent: parent}, nil
}

// relax applies one relaxation candidate, reporting whether it
// improved the known distance to e.To.
func relax[W core.Number](dist *core.NodeMap[core.Option[W]], parent *core.NodeMap[core.NodeID], e support.RelaxPair[W]) bool {
	du, ok := dist.Get(e.From)
	if !ok {
		return false
	}
	duVal, isSome := du.Get()
	if !isSome {
		return false
	}

	newDist := duVal + e.Weight
	dv, ok := dist.Get(e.To)
	if !ok {
		dist.Set(e.To, core.Some(newDist))
		parent.Set(e.To, e.From)
		return true
	}
	dvVal, dvSome := dv.Get()
	if !dvSome || newDist < dvVal {
		dist.Set(e.To, core.Some(newDist))
		parent.Set(e.To, e.From)
		return true
	}

	return false
}

// buildWitness reconstructs a closed negative-cycle witness from a
// node v that still relaxed on the detection pass. Walking the
// predecessor chain n times from v guarantees landing inside the
// cycle (a simple path has at most n-1 edges), after which following
// parent pointers until a revisit traces the cycle itself.
func buildWitness(v core.NodeID, parent *core.NodeMap[core.NodeID], n int) []core.NodeID {
	cur := v
	for i := 0; i < n; i++ {
		p, ok := parent.Get(cur)
		if !ok {
			break
		}
		cur = p
	}

	anchor := cur
	seq := []core.NodeID{anchor}
	next, ok := parent.Get(anchor)
	for ok && next != anchor {
		seq = append(seq, next)
		next, ok = parent.Get(next)
	}

	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}
	seq = append(seq, seq[0])

	return seq
}
