package floydwarshall_test

import (
	"testing"

	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/floydwarshall"
)

// BenchmarkFloydWarshall_Grid measures the O(n^3) closure on a 20x20
// grid graph (400 nodes).
func BenchmarkFloydWarshall_Grid(b *testing.B) {
	const side = 20
	g := core.NewGraph[struct{}, int](core.WithDirected(true))
	ids := make([][side]core.NodeID, side)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			ids[i][j] = g.AddNode(struct{}{})
		}
	}
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			if i+1 < side {
				g.AddEdge(ids[i][j], ids[i+1][j], 1)
			}
			if j+1 < side {
				g.AddEdge(ids[i][j], ids[i][j+1], 1)
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = floydwarshall.FloydWarshall(g)
	}
}
