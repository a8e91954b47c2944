// Package dijkstra implements Dijkstra's shortest-path algorithm on
// core.Graph for non-negative edge weights.
//
// What:
//
//   - Dijkstra(g, source, opts...): single-source shortest distances,
//     returned as Result.Dist (core.NodeMap[core.Option[W]], core.None
//     for nodes the search never finalized) and Result.Parent for path
//     reconstruction via Result.PathTo.
//   - WithMaxDistance caps exploration; WithInfEdgeThreshold treats
//     heavy edges as impassable walls.
//
// Complexity: O((V+E) log V) time, O(V+E) space, using a binary min-heap
// with lazy decrease-key (stale heap entries are discarded on pop
// rather than updated in place).
package dijkstra
