// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on core.Graph with non-negative edge weights.
package dijkstra

import (
	"context"

	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/scratch"
)

// Option configures a Dijkstra run.
type Option[W core.Number] func(*options[W])

type options[W core.Number] struct {
	ctx              context.Context
	hasMaxDistance   bool
	maxDistance      W
	hasThreshold     bool
	infEdgeThreshold W
	pool             *scratch.Pool[[]*pqItem[W]]
}

func defaultOptions[W core.Number]() options[W] {
	return options[W]{ctx: context.Background()}
}

// WithContext supplies a cancellation context checked between heap pops.
func WithContext[W core.Number](ctx context.Context) Option[W] {
	return func(o *options[W]) { o.ctx = ctx }
}

// WithMaxDistance caps exploration: nodes whose shortest distance would
// exceed max are left unreached (core.None in the result).
func WithMaxDistance[W core.Number](max W) Option[W] {
	return func(o *options[W]) {
		o.hasMaxDistance = true
		o.maxDistance = max
	}
}

// WithInfEdgeThreshold treats any edge with weight >= threshold as
// impassable, as if it did not exist.
func WithInfEdgeThreshold[W core.Number](threshold W) Option[W] {
	return func(o *options[W]) {
		o.hasThreshold = true
		o.infEdgeThreshold = threshold
	}
}

// WithPool supplies a scratch.Pool that Dijkstra's internal priority-
// queue backing slice is acquired from and released back to, instead of
// allocating a fresh one on every call. Passing nil (the default) keeps
// the usual per-call allocation; the pool never changes the returned
// Result, only where its scratch memory comes from.
func WithPool[W core.Number](pool *scratch.Pool[[]*pqItem[W]]) Option[W] {
	return func(o *options[W]) { o.pool = pool }
}

// NewPQPool builds a scratch.Pool suitable for WithPool, sized for a
// graph with the given node count.
func NewPQPool[W core.Number](capacity int) *scratch.Pool[[]*pqItem[W]] {
	return scratch.NewSlicePool[*pqItem[W]](capacity)
}

// Result holds the outcome of a Dijkstra run. Dist covers every live
// node of the graph: core.Some(d) for a finalized shortest
// distance, core.None for a node that was capped out by WithMaxDistance
// or never reached. Parent records, for every non-source reached node,
// its predecessor on one shortest path.
type Result[W core.Number] struct {
	Dist   *core.NodeMap[core.Option[W]]
	Parent *core.NodeMap[core.NodeID]
}

// PathTo reconstructs one shortest path from the search's source to
// dest, or reports false if dest was never reached.
func (r *Result[W]) PathTo(dest core.NodeID) ([]core.NodeID, bool) {
	d, ok := r.Dist.Get(dest)
	if !ok || !d.IsSome() {
		return nil, false
	}
	path := []core.NodeID{dest}
	cur := dest
	for {
		prev, hasParent := r.Parent.Get(cur)
		if !hasParent {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
