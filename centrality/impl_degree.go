package centrality

import "github.com/katalvlaran/graphina/core"

// Degree returns each live node's degree centrality: in-degree plus
// out-degree for directed graphs, incident-edge-endpoint count for
// undirected graphs (each edge counted once, not twice), with a
// self-loop contributing 1 to its endpoint on an undirected graph — the
// same convention core.Graph.Degree already implements.
func Degree[A any, W core.Number](g *core.Graph[A, W]) *core.NodeMap[int] {
	result := core.NewNodeMap[int](g.NodeCount())
	for _, id := range g.NodeIDs() {
		result.Set(id, g.Degree(id))
	}
	return result
}
