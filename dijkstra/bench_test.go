package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/dijkstra"
)

// BenchmarkDijkstra_Chain measures performance on a weighted linear
// chain of 10,000 nodes.
func BenchmarkDijkstra_Chain(b *testing.B) {
	g := core.NewGraph[struct{}, int](core.WithDirected(true))
	ids := make([]core.NodeID, 10001)
	for i := range ids {
		ids[i] = g.AddNode(struct{}{})
	}
	for i := 0; i < 10000; i++ {
		g.AddEdge(ids[i], ids[i+1], 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, ids[0])
	}
}

// BenchmarkDijkstra_Grid measures performance on a 100x100 weighted grid.
func BenchmarkDijkstra_Grid(b *testing.B) {
	const side = 100
	g := core.NewGraph[struct{}, int]()
	ids := make([][]core.NodeID, side)
	for r := 0; r < side; r++ {
		ids[r] = make([]core.NodeID, side)
		for c := 0; c < side; c++ {
			ids[r][c] = g.AddNode(struct{}{})
		}
	}
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if c+1 < side {
				g.AddEdge(ids[r][c], ids[r][c+1], 1)
			}
			if r+1 < side {
				g.AddEdge(ids[r][c], ids[r+1][c], 1)
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, ids[0][0])
	}
}
