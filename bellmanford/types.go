// Package bellmanford implements the Bellman-Ford single-source
// shortest-path algorithm on core.Graph, tolerating negative edge
// weights (unlike dijkstra) at the cost of O(VE) time.
package bellmanford

import (
	"context"

	"github.com/katalvlaran/graphina/core"
)

// Option configures a BellmanFord run.
type Option[W core.Number] func(*options[W])

type options[W core.Number] struct {
	ctx context.Context
}

func defaultOptions[W core.Number]() options[W] {
	return options[W]{ctx: context.Background()}
}

// WithContext supplies a cancellation context, checked once per
// relaxation pass.
func WithContext[W core.Number](ctx context.Context) Option[W] {
	return func(o *options[W]) { o.ctx = ctx }
}

// Result holds the outcome of a BellmanFord run. Dist and Parent have
// the same types as dijkstra.Result; Dist holds entries only for nodes
// reached from the source. NegativeCycle is nil unless a
// negative cycle reachable from the source was detected, in which case
// it holds a closed witness cycle [v0, ..., v0] and Dist/Parent reflect
// the algorithm's state at the moment of detection (not a converged
// shortest-path assignment).
type Result[W core.Number] struct {
	Dist          *core.NodeMap[core.Option[W]]
	Parent        *core.NodeMap[core.NodeID]
	NegativeCycle []core.NodeID
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
