// Package graphina is an in-memory graph data-science engine: a stable-index,
// labeled, optionally directed and/or weighted multigraph store plus a
// coherent suite of algorithms on top of it.
//
// Organized as four layers, leaves first:
//
//	core/          — the Graph store: identity, iteration, mutation.
//	bfs/ dfs/ iddfs/ dijkstra/ bellmanford/ floydwarshall/ johnson/ astar/
//	               — traversal and shortest-path engine.
//	centrality/    — node/edge importance scores (degree, Brandes betweenness,
//	                 PageRank, eigenvector, Katz, closeness/harmonic).
//	community/     — partitioning into communities (Louvain, label
//	                 propagation, Girvan–Newman, connected components).
//
// Supporting packages:
//
//	builder/   — deterministic topology constructors (cycles, grids, ...).
//	mst/       — Prim and Kruskal minimum spanning trees.
//	approx/    — heuristic approximations for NP-hard problems (TSP).
//	support/   — validation preconditions, compact re-indexing, numeric helpers.
//	parallel/  — opt-in shared-nothing variants of select kernels.
//	scratch/   — scoped, reusable scratch-buffer pool for hot-path kernels.
//	ioformat/  — edge list, adjacency list, GraphML, JSON and binary codecs.
//	cmd/graphina/ — a cobra CLI exercising the loaders/savers and a
//	               handful of kernels end to end; a consumer of this
//	               module, not part of it.
//
// This root package holds only the cross-cutting error taxonomy
// (GraphError) shared by every other package; it has no dependency on
// any of them.
//
// Algorithms never interpret a NodeID/EdgeID as a dense array index:
// kernels that need one build a compact re-index table per invocation
// (see support.IndexMap) rather than casting an opaque handle's
// internal counter to a slice offset.
package graphina
