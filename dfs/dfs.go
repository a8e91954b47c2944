// Package dfs implements depth-first search (single-source and forest) on
// core.Graph using an explicit stack — never recursion — so traversal
// depth is bounded only by available heap, not by the call stack.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or the whole graph as
//     a forest via WithFullTraversal.
//   - Hooks: OnVisit (pre-order) and OnExit (post-order), either may
//     abort the traversal by returning an error.
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count.
//   - Cancellation via context.Context.
//
// Determinism: core.Graph.Neighbors returns nodes sorted by NodeID
// minting sequence, so a fixed Store state always produces the same
// traversal.
//
// Complexity: O(V + E) time, O(V) memory for the explicit stack and
// metadata maps.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// frame is one explicit-stack entry: a node mid-exploration, together
// with its already-fetched neighbor list and how far exploration has
// progressed through it.
type frame struct {
	id        core.NodeID
	depth     int
	neighbors []core.NodeID
	next      int
}

// DFS performs depth-first search on g. If opts include
// WithFullTraversal, it covers every component; otherwise it starts only
// from start.
func DFS[A any, W core.Number](g *core.Graph[A, W], start core.NodeID, opts ...Option) (*Result, *graphina.GraphError) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !o.fullTraversal && !g.ContainsNode(start) {
		return nil, graphina.NewNodeNotFound("dfs.DFS", start)
	}

	n := g.NodeCount()
	res := &Result{
		Order:   make([]core.NodeID, 0, n),
		Depth:   core.NewNodeMap[int](n),
		Parent:  core.NewNodeMap[core.NodeID](n),
		Visited: core.NewNodeMap[bool](n),
	}

	run := func(root core.NodeID) *graphina.GraphError {
		if v, _ := res.Visited.Get(root); v {
			return nil
		}
		return runTree(g, root, &o, res)
	}

	if o.fullTraversal {
		for _, id := range g.NodeIDs() {
			if err := run(id); err != nil {
				res.Order = nil
				return res, err
			}
		}
	} else if err := run(start); err != nil {
		res.Order = nil
		return res, err
	}

	res.SkippedNeighbors = o.skippedNeighbors
	return res, nil
}

// runTree explores one DFS tree rooted at root using an explicit stack.
func runTree[A any, W core.Number](g *core.Graph[A, W], root core.NodeID, o *dfsOptions, res *Result) *graphina.GraphError {
	stack := []*frame{{id: root, depth: 0}}
	res.Visited.Set(root, true)
	res.Depth.Set(root, 0)
	if err := onVisit(o, res, root); err != nil {
		return err
	}

	for len(stack) > 0 {
		select {
		case <-o.ctx.Done():
			return graphina.Wrap(graphina.KindInvalidArgument, "dfs.DFS", o.ctx.Err())
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

			if o.filterNeighbor != nil && !o.filterNeighbor(nbr) {
				o.skippedNeighbors++
				continue
			}
			if v, _ := res.Visited.Get(nbr); v {
				continue
			}
			nextDepth := top.depth + 1
			if o.maxDepth >= 0 && nextDepth > o.maxDepth {
				continue
			}

			res.Visited.Set(nbr, true)
			res.Depth.Set(nbr, nextDepth)
			res.Parent.Set(nbr, top.id)
			if err := onVisit(o, res, nbr); err != nil {
				return err
			}
			stack = append(stack, &frame{id: nbr, depth: nextDepth})
			advanced = true
			break
		}

		if advanced {
			continue
		}

		// top is fully explored: pop, post-order hook, record finish.
		stack = stack[:len(stack)-1]
		if o.onExit != nil {
			if err := o.onExit(top.id); err != nil {
				return graphina.Wrap(graphina.KindInvalidArgument, "dfs.DFS", fmt.Errorf("OnExit at %s: %w", top.id, err))
			}
		}
		res.Order = append(res.Order, top.id)
	}
	return nil
}

func onVisit(o *dfsOptions, res *Result, id core.NodeID) *graphina.GraphError {
	if o.onVisit == nil {
		return nil
	}
	if err := o.onVisit(id); err != nil {
		return graphina.Wrap(graphina.KindInvalidArgument, "dfs.DFS", fmt.Errorf("OnVisit at %s: %w", id, err))
	}
	return nil
}
