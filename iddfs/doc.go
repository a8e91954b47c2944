// Package iddfs implements two unweighted shortest-path searches that
// trade BFS's O(breadth) memory for different guarantees:
//
//   - IDDFS: iterative-deepening depth-first search, O(depth) memory,
//     for when the graph is wide but the answer is known to be shallow.
//   - BidirectionalSearch: two BFS frontiers expanding toward each
//     other, O(b^(d/2)) time instead of O(b^d), for when both start and
//     goal are known up front.
//
// Both return (path, found, err): found is false (path nil) when no
// path exists within the given bound, never an error — only malformed
// input (missing node, negative depth) or a cancelled context is an
// error.
package iddfs
