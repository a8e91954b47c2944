// Package builder provides deterministic, functional-options-style
// generators for common graph topologies: cycles, paths, stars, wheels,
// complete and complete-bipartite graphs, grids, and two random families
// (Erdos-Renyi-style sparse graphs and d-regular graphs via stub
// matching).
//
// Every generator allocates its own *core.Graph[A, W] and returns the
// NodeIDs it minted alongside it, since graphina's NodeID is an opaque
// handle the caller cannot choose: there is no vertex-identity scheme to
// configure the way a string-keyed graph would need one. The NodeFn
// option that survives from that idea only controls the node *payload*
// a generator assigns at each index — a labeling convenience, not an
// addressing mechanism — and defaults to the zero value of A, since a
// generator's returned NodeID slice is always the true address.
//
// Edge weights are supplied by a WeightFn[W], which has access to the
// generator's *rand.Rand (nil unless WithRand/WithSeed is used) so
// stochastic weight distributions stay reproducible across runs.
package builder
