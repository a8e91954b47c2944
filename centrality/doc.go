// Package centrality scores nodes (and, for betweenness, edges) by their
// structural importance in a core.Graph: degree, Brandes betweenness,
// PageRank, eigenvector, Katz, and closeness/harmonic centrality.
//
// Every kernel that indexes into a matrix or vector first builds a
// compact re-index table via support.IndexMap rather than treating a
// NodeID's internal counter as an array offset. Iterative kernels
// (PageRank, eigenvector, Katz) report graphina.KindConvergenceFailed
// if they exhaust their iteration budget without meeting tolerance,
// using support.Normalize (built on gonum.org/v1/gonum/floats) for
// normalization and support.L1Delta (a plain loop) for the
// convergence delta.
//
// File layout mirrors the teacher's own impl_*.go-per-kernel convention:
// impl_degree.go, impl_betweenness.go, impl_pagerank.go,
// impl_eigenvector.go, impl_katz.go, impl_closeness.go.
package centrality
