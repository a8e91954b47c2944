// Package mst computes a minimum spanning tree of an undirected, weighted
// core.Graph, via either Kruskal's algorithm (global edge sort plus
// union-find) or Prim's algorithm (heap-driven growth from a root node).
//
// Kruskal(g) has no parameters beyond the graph; Prim(g, root) grows
// outward from a caller-chosen root NodeID. Compute dispatches between
// the two based on an Options value, for callers that want to pick the
// algorithm at runtime (e.g. a CLI flag) rather than at the call site.
//
// Both algorithms reject a directed graph (a spanning tree is an
// undirected notion here) and report KindInvalidGraph if the graph is
// not fully connected, since no spanning tree can cover every node in
// that case. On an empty graph Kruskal reports KindInvalidGraph, while
// Prim reports its root instead: KindInvalidArgument for the zero
// NodeID, KindNodeNotFound for any other id. Self-loops are skipped; they can never belong to a
// tree.
//
// Complexity: Kruskal is O(E log E + alpha(V)*E); Prim is O(E log V).
// Both are O(V+E) space.
package mst
