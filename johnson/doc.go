// Package johnson provides the sparse all-pairs shortest-path kernel:
// Bellman-Ford potentials followed by per-source Dijkstra, the standard
// approach for graphs too sparse to justify floydwarshall's dense
// O(n^2) matrix.
package johnson
