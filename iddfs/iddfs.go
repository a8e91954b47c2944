package iddfs

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// IDDFS returns the shortest (fewest-hops) path from start to goal,
// found by running a depth-limited DFS for increasing limits
// 0, 1, ..., maxDepth and stopping at the first limit that reaches
// goal. found is false if goal is not reachable within maxDepth hops.
//
// Memory is O(depth): only the current path and its frontier-of-one
// neighbor lists are kept, unlike BFS's O(breadth) frontier.
//
// Complexity: O(b^maxDepth) time in the worst case (b = branching
// factor), the classic IDDFS trade of repeated shallow work for linear
// memory.
func IDDFS[A any, W core.Number](g *core.Graph[A, W], start, goal core.NodeID, maxDepth int, opts ...Option) ([]core.NodeID, bool, *graphina.GraphError) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !g.ContainsNode(start) {
		return nil, false, graphina.NewNodeNotFound("iddfs.IDDFS", start)
	}
	if !g.ContainsNode(goal) {
		return nil, false, graphina.NewNodeNotFound("iddfs.IDDFS", goal)
	}
	if maxDepth < 0 {
		return nil, false, graphina.NewInvalidArgument("iddfs.IDDFS", "maxDepth", "must be non-negative")
	}

	for limit := 0; limit <= maxDepth; limit++ {
		select {
		case <-o.ctx.Done():
			return nil, false, graphina.Wrap(graphina.KindInvalidArgument, "iddfs.IDDFS", o.ctx.Err())
		default:
		}
		path, found := depthLimitedDFS(g, start, goal, limit)
		if found {
			return path, true, nil
		}
	}
	return nil, false, nil
}

// dlFrame is one explicit-stack entry for the depth-limited search.
type dlFrame struct {
	id        core.NodeID
	neighbors []core.NodeID
	next      int
}

// depthLimitedDFS explores paths of at most limit hops from start,
// using an explicit stack and a path-local (not global) visited set —
// a node may be revisited once backtracked past, since a different
// branch may legitimately pass through it within the depth budget.
func depthLimitedDFS[A any, W core.Number](g *core.Graph[A, W], start, goal core.NodeID, limit int) ([]core.NodeID, bool) {
	if start == goal {
		return []core.NodeID{start}, true
	}

	onPath := map[core.NodeID]bool{start: true}
	path := []core.NodeID{start}
	stack := []*dlFrame{{id: start}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if len(path)-1 >= limit {
			onPath[top.id] = false
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]
			continue
		}
		if top.neighbors == nil {
			top.neighbors = g.Neighbors(top.id)
		}

		advanced := false
		for top.next < len(top.neighbors) {
			nbr := top.neighbors[top.next]
			top.next++
			if onPath[nbr] {
				continue
			}
			if nbr == goal {
				return append(append([]core.NodeID{}, path...), nbr), true
			}
			onPath[nbr] = true
			path = append(path, nbr)
			stack = append(stack, &dlFrame{id: nbr})
			advanced = true
			break
		}
		if advanced {
			continue
		}
		onPath[top.id] = false
		path = path[:len(path)-1]
		stack = stack[:len(stack)-1]
	}
	return nil, false
}
