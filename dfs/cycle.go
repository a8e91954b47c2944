// Package dfs implements cycle detection for directed and undirected
// core.Graphs. DetectCycles runs a depth-first search with three-color
// marking and reports the cycle closed by each back edge it meets;
// cycles that no back edge of that search closes are not listed. It
// skips self-loops when the Store forbids them and trivial
// 2-cycles in undirected graphs, and produces a canonical minimal
// rotation of each cycle so each distinct cycle is reported once. The
// final cycle list is sorted for deterministic output.
//
// Complexity:
//
//   - Time:   O(V + E + C*L)  (C = #cycles, L = avg cycle length)
//   - Memory: O(V + L_max)
package dfs

import (
	"sort"

	"github.com/katalvlaran/graphina/core"
)

const (
	white = iota
	gray
	black
)

// DetectCycles inspects graph g for cycles, reporting one cycle per back
// edge found by its depth-first search (not every simple cycle of g).
// Returns (true, cycles) if any cycles are found, (false, nil) otherwise.
func DetectCycles[A any, W core.Number](g *core.Graph[A, W]) (bool, [][]core.NodeID) {
	ids := g.NodeIDs()
	state := make(map[core.NodeID]int, len(ids))
	var path []core.NodeID
	seen := make(map[string]struct{}, len(ids))
	var cycles [][]core.NodeID

	for _, v := range ids {
		if state[v] == white {
			dfsVisitCycle(g, v, core.NodeID{}, false, state, &path, seen, &cycles)
		}
	}

	sort.Slice(cycles, func(i, j int) bool { return compareIDs(cycles[i], cycles[j]) < 0 })

	return len(cycles) > 0, cycles
}

func dfsVisitCycle[A any, W core.Number](
	g *core.Graph[A, W],
	id, parent core.NodeID,
	hasParent bool,
	state map[core.NodeID]int,
	path *[]core.NodeID,
	seen map[string]struct{},
	cycles *[][]core.NodeID,
) {
	state[id] = gray
	*path = append(*path, id)

	for _, nbr := range g.Neighbors(id) {
		if nbr == id && !g.AllowsLoops() {
			continue
		}
		if !g.IsDirected() && hasParent && nbr == parent {
			continue
		}

		switch state[nbr] {
		case white:
			dfsVisitCycle(g, nbr, id, true, state, path, seen, cycles)
		case gray:
			idx := indexOf(*path, nbr)
			segLen := len(*path) - idx
			if segLen < 2 && !g.AllowsLoops() {
				continue
			}
			if segLen == 2 && !g.IsDirected() {
				continue
			}
			recordCycle(nbr, *path, seen, cycles)
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = black
}

func recordCycle(start core.NodeID, path []core.NodeID, seen map[string]struct{}, cycles *[][]core.NodeID) {
	idx := indexOf(path, start)
	seq := append([]core.NodeID(nil), path[idx:]...)
	seq = append(seq, start)

	sig, canon := canonicalCycle(seq)
	if _, exists := seen[sig]; !exists {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, canon)
	}
}

// canonicalCycle computes the lexicographically minimal rotation of
// cycle and its reversal, returning a join-safe signature and the
// canonical closed cycle [v0, ..., v0].
func canonicalCycle(cycle []core.NodeID) (string, []core.NodeID) {
	n := len(cycle) - 1
	base := cycle[:n]

	rotF := minimalRotation(base)
	rotB := minimalRotation(reverseIDs(base))

	picker := rotF
	if compareIDs(rotB, rotF) < 0 {
		picker = rotB
	}

	closed := append(append([]core.NodeID(nil), picker...), picker[0])

	sig := ""
	for _, id := range closed {
		sig += id.String() + ","
	}

	return sig, closed
}
