package iddfs

import (
	"sort"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// BidirectionalSearch returns a shortest unweighted path between start
// and goal by expanding two BFS frontiers toward each other, one
// forward from start and one backward from goal (over in-neighbors when
// g is directed). found is false if the two searches exhaust every
// reachable node without meeting.
//
// The meeting point is detected between the two searches' *current*
// frontiers — the nodes each side just reached this round — never
// between accumulated visited sets alone; testing only cumulative
// visited sets can report a meeting node one hop later than the true
// optimum, since a just-reached node on one side may already coincide
// with the other side's just-reached frontier before either side's
// visited set records it.
//
// Complexity: O(b^(d/2)) time where d is the shortest path length,
// versus O(b^d) for a one-sided BFS.
func BidirectionalSearch[A any, W core.Number](g *core.Graph[A, W], start, goal core.NodeID, opts ...Option) ([]core.NodeID, bool, *graphina.GraphError) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !g.ContainsNode(start) {
		return nil, false, graphina.NewNodeNotFound("iddfs.BidirectionalSearch", start)
	}
	if !g.ContainsNode(goal) {
		return nil, false, graphina.NewNodeNotFound("iddfs.BidirectionalSearch", goal)
	}
	if start == goal {
		return []core.NodeID{start}, true, nil
	}

	fwd := newSide(start)
	bwd := newSide(goal)

	for len(fwd.frontier) > 0 && len(bwd.frontier) > 0 {
		select {
		case <-o.ctx.Done():
			return nil, false, graphina.Wrap(graphina.KindInvalidArgument, "iddfs.BidirectionalSearch", o.ctx.Err())
		default:
		}

		nextFwd := expand(g, fwd, false)
		if meet, ok := meetingNode(nextFwd, bwd.frontier, bwd.visited); ok {
			return reconstruct(meet, start, goal, fwd.parent, bwd.parent), true, nil
		}
		fwd.frontier = nextFwd
		if len(fwd.frontier) == 0 {
			break
		}

		nextBwd := expand(g, bwd, true)
		if meet, ok := meetingNode(nextBwd, fwd.frontier, fwd.visited); ok {
			return reconstruct(meet, start, goal, fwd.parent, bwd.parent), true, nil
		}
		bwd.frontier = nextBwd
	}
	return nil, false, nil
}

// side tracks one direction's BFS state: the cumulative visited set,
// the predecessor map (pointing toward this side's root), and the
// current frontier (nodes first reached on the previous expansion).
type side struct {
	visited  map[core.NodeID]bool
	parent   map[core.NodeID]core.NodeID
	frontier []core.NodeID
}

func newSide(root core.NodeID) *side {
	return &side{
		visited:  map[core.NodeID]bool{root: true},
		parent:   make(map[core.NodeID]core.NodeID),
		frontier: []core.NodeID{root},
	}
}

// expand advances s by one BFS level. backward selects InNeighbors
// (predecessors) instead of Neighbors (successors), per the spec's rule
// that a backward search over a directed graph walks in-edges.
func expand[A any, W core.Number](g *core.Graph[A, W], s *side, backward bool) []core.NodeID {
	var next []core.NodeID
	for _, u := range s.frontier {
		var candidates []core.NodeID
		if backward {
			candidates = g.InNeighbors(u)
		} else {
			candidates = g.Neighbors(u)
		}
		for _, v := range candidates {
			if s.visited[v] {
				continue
			}
			s.visited[v] = true
			s.parent[v] = u
			next = append(next, v)
		}
	}
	sort.Slice(next, func(i, j int) bool { return next[i].Less(next[j]) })
	return next
}

// meetingNode reports whether any node in freshFrontier coincides with
// otherFrontier (current, unexpanded) or otherVisited (cumulative),
// returning the first such node in sorted order for determinism.
func meetingNode(freshFrontier, otherFrontier []core.NodeID, otherVisited map[core.NodeID]bool) (core.NodeID, bool) {
	otherFrontierSet := make(map[core.NodeID]bool, len(otherFrontier))
	for _, id := range otherFrontier {
		otherFrontierSet[id] = true
	}
	for _, id := range freshFrontier {
		if otherFrontierSet[id] || otherVisited[id] {
			return id, true
		}
	}
	return core.NodeID{}, false
}

// reconstruct chases fwdParent from meet back to start and bwdParent
// from meet forward to goal, splicing the two halves into one path.
func reconstruct(meet, start, goal core.NodeID, fwdParent, bwdParent map[core.NodeID]core.NodeID) []core.NodeID {
	var fwdPath []core.NodeID
	for cur := meet; ; {
		fwdPath = append(fwdPath, cur)
		if cur == start {
			break
		}
		cur = fwdParent[cur]
	}
	for i, j := 0, len(fwdPath)-1; i < j; i, j = i+1, j-1 {
		fwdPath[i], fwdPath[j] = fwdPath[j], fwdPath[i]
	}

	for cur := meet; cur != goal; {
		next := bwdParent[cur]
		fwdPath = append(fwdPath, next)
		cur = next
	}
	return fwdPath
}
