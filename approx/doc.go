// Package approx implements select approximation heuristics for
// NP-hard problems over a complete, undirected, non-negatively
// weighted core.Graph: a greedy nearest-neighbor construction plus
// first-improvement 2-opt local search, and a minimum-spanning-tree
// double-tree approximation, both for the symmetric Travelling
// Salesman Problem.
//
// Adapted down from the teacher's tsp package, which implements the
// full Christofides 1.5-approximation pipeline (MST, minimum-weight
// perfect matching, Eulerian shortcutting) plus an exact Held-Karp
// solver and branch-and-bound search. This package keeps only the two
// heuristics that need no matching or DP table: nearest-neighbor+2-opt
// (fast, no metric guarantee) and double-tree (2-approximate under the
// triangle inequality), dropping the matching-dependent machinery.
package approx
