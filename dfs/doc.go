// Package dfs implements depth-first search traversal, cycle detection,
// and topological sort on a core.Graph, using an explicit stack rather
// than recursion so traversal depth is bounded only by available heap.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking; supports pre-/post-order hooks, cancellation,
//     depth limiting, and neighbor filtering.
//   - DetectCycles: reports the cycle closed by each back edge found
//     with three-color marking, deduplicated by canonical rotation;
//     cycles that no back edge closes are not listed.
//   - TopologicalSort: linear ordering of a directed acyclic graph's
//     nodes; reports graphina.ErrInvalidGraph if a cycle exists.
//
// Complexity:
//
//   - DFS: O(V+E) time, O(V) memory.
//   - DetectCycles: O(V+E+C*L) time, O(V+L_max) memory.
//   - TopologicalSort: O(V+E) time, O(V) memory.
package dfs
