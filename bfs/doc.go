// Package bfs provides a breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit
// order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start
//     node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: NodeMap from node to distance (edges) from start
//   - Parent: NodeMap from node to its predecessor in the BFS tree
//   - Supports functional hooks at three stages: OnEnqueue, OnDequeue,
//     OnVisit (may abort with an error).
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or "no limit" (d==0, the default).
//
// Determinism
//
//	Because core.Graph.Neighbors returns nodes sorted by NodeID minting
//	sequence, visit order is fully reproducible for a fixed Store state.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
