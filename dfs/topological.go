// Package dfs provides topological sort on directed core.Graphs.
//
// TopologicalSort computes a linear ordering of nodes such that for
// every directed edge u->v, u appears before v in the ordering. If the
// graph contains a cycle, it returns graphina.ErrInvalidGraph.
//
// Complexity: O(V + E) time, O(V) memory.
package dfs

import (
	"context"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions { return topoOptions{ctx: context.Background()} }

// WithCancelContext sets the cancellation context. A nil context has no
// effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

type topoFrame struct {
	id        core.NodeID
	neighbors []core.NodeID
	next      int
}

// TopologicalSort computes a topological ordering of every node in g.
// Returns graphina.ErrInvalidGraph if g is undirected or if it contains
// a cycle.
func TopologicalSort[A any, W core.Number](g *core.Graph[A, W], opts ...TopoOption) ([]core.NodeID, *graphina.GraphError) {
	if !g.IsDirected() {
		return nil, graphina.NewInvalidGraph("dfs.TopologicalSort", "graph must be directed")
	}

	o := defaultTopoOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ids := g.NodeIDs()
	state := make(map[core.NodeID]int, len(ids))
	order := make([]core.NodeID, 0, len(ids))

	for _, root := range ids {
		if state[root] != white {
			continue
		}

		stack := []*topoFrame{{id: root}}
		state[root] = gray

		for len(stack) > 0 {
			select {
			case <-o.ctx.Done():
				return nil, graphina.Wrap(graphina.KindInvalidArgument, "dfs.TopologicalSort", o.ctx.Err())
			default:
			}

			top := stack[len(stack)-1]
			if top.neighbors == nil {
				top.neighbors = g.Neighbors(top.id)
			}

			advanced := false
			for top.next < len(top.neighbors) {
				nbr := top.neighbors[top.next]
				top.next++

				switch state[nbr] {
				case gray:
					return nil, graphina.NewInvalidGraph("dfs.TopologicalSort", "cycle detected")
				case black:
					continue
				default:
					state[nbr] = gray
					stack = append(stack, &topoFrame{id: nbr})
					advanced = true
				}
				if advanced {
					break
				}
			}

			if advanced {
				continue
			}

			stack = stack[:len(stack)-1]
			state[top.id] = black
			order = append(order, top.id)
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
