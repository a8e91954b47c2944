package support

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// color marks a node's DFS state for cycle detection (require_dag) —
// white: unvisited, gray: on the current recursion stack, black: fully
// explored. A gray node reached again is a back edge, i.e. a cycle.
type color int

const (
	white color = iota
	gray
	black
)

// RequireNonEmpty reports graphina.KindInvalidGraph if g has no live
// nodes, naming op as the algorithm that required a non-empty graph.
func RequireNonEmpty[A any, W core.Number](op string, g *core.Graph[A, W]) *graphina.GraphError {
	if g.NodeCount() == 0 {
		return graphina.NewInvalidGraph(op, "graph has no nodes")
	}
	return nil
}

// RequireNoSelfLoops reports graphina.KindInvalidGraph if any live edge
// is a self-loop.
func RequireNoSelfLoops[A any, W core.Number](op string, g *core.Graph[A, W]) *graphina.GraphError {
	for _, e := range g.Edges() {
		if e.From == e.To {
			return graphina.NewInvalidGraph(op, "graph must have no self-loops")
		}
	}
	return nil
}

// RequireNonNegativeWeights reports graphina.KindNegativeWeight on the
// first edge carrying a negative weight.
func RequireNonNegativeWeights[A any, W core.Number](op string, g *core.Graph[A, W]) *graphina.GraphError {
	var zero W
	for _, e := range g.Edges() {
		if e.Weight < zero {
			return graphina.NewNegativeWeight(op, e.From, e.To, e.Weight)
		}
	}
	return nil
}

// RequireConnected reports graphina.KindInvalidGraph unless every live
// node is reachable from every other, ignoring edge direction (weak
// connectivity) — the union-find test Kruskal already uses, reused here
// as a standalone precondition check.
func RequireConnected[A any, W core.Number](op string, g *core.Graph[A, W]) *graphina.GraphError {
	ids := g.NodeIDs()
	if len(ids) <= 1 {
		return nil
	}

	parent := make(map[core.NodeID]core.NodeID, len(ids))
	for _, id := range ids {
		parent[id] = id
	}
	var find func(core.NodeID) core.NodeID
	find = func(id core.NodeID) core.NodeID {
		for parent[id] != id {
			parent[id] = parent[parent[id]]
			id = parent[id]
		}
		return id
	}
	for _, e := range g.Edges() {
		ra, rb := find(e.From), find(e.To)
		if ra != rb {
			parent[ra] = rb
		}
	}

	root := find(ids[0])
	for _, id := range ids[1:] {
		if find(id) != root {
			return graphina.NewInvalidGraph(op, "graph must be connected")
		}
	}
	return nil
}

// RequireDAG reports graphina.KindInvalidGraph if g is undirected (a DAG
// is a directed notion) or contains a cycle, detected via iterative
// three-color DFS: a gray node reached again is a back edge.
func RequireDAG[A any, W core.Number](op string, g *core.Graph[A, W]) *graphina.GraphError {
	if !g.IsDirected() {
		return graphina.NewInvalidGraph(op, "DAG check requires a directed graph")
	}

	colors := make(map[core.NodeID]color, g.NodeCount())
	for _, id := range g.NodeIDs() {
		colors[id] = white
	}

	type frame struct {
		id        core.NodeID
		neighbors []core.NodeID
		next      int
	}

	for _, start := range g.NodeIDs() {
		if colors[start] != white {
			continue
		}
		stack := []*frame{{id: start, neighbors: g.Neighbors(start)}}
		colors[start] = gray
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.next >= len(top.neighbors) {
				colors[top.id] = black
				stack = stack[:len(stack)-1]
				continue
			}
			nbr := top.neighbors[top.next]
			top.next++
			switch colors[nbr] {
			case white:
				colors[nbr] = gray
				stack = append(stack, &frame{id: nbr, neighbors: g.Neighbors(nbr)})
			case gray:
				return graphina.NewInvalidGraph(op, "graph must be acyclic")
			case black:
				// already fully explored via another path; not a cycle
			}
		}
	}
	return nil
}

// IsBipartite reports whether g's underlying undirected structure admits
// a proper two-coloring, via BFS two-coloring run from every uncolored
// node (handles disconnected graphs).
func IsBipartite[A any, W core.Number](g *core.Graph[A, W]) bool {
	colorOf := make(map[core.NodeID]int, g.NodeCount())
	for _, start := range g.NodeIDs() {
		if _, seen := colorOf[start]; seen {
			continue
		}
		colorOf[start] = 0
		queue := []core.NodeID{start}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range g.Neighbors(u) {
				if u == v {
					return false // a self-loop can never be 2-colored
				}
				c, seen := colorOf[v]
				if !seen {
					colorOf[v] = 1 - colorOf[u]
					queue = append(queue, v)
					continue
				}
				if c == colorOf[u] {
					return false
				}
			}
		}
	}
	return true
}

// RequireBipartite reports graphina.KindInvalidGraph if g is not
// bipartite, wrapping IsBipartite in the same Ok-or-typed-error shape as
// the other Require* validators.
func RequireBipartite[A any, W core.Number](op string, g *core.Graph[A, W]) *graphina.GraphError {
	if !IsBipartite(g) {
		return graphina.NewInvalidGraph(op, "graph must be bipartite")
	}
	return nil
}
