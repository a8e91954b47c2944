// Package bellmanford provides the Bellman-Ford relaxation algorithm,
// the module's only shortest-path engine that tolerates negative edge
// weights and detects negative cycles reachable from the source.
package bellmanford
