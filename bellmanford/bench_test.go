package bellmanford_test

import (
	"testing"

	"github.com/katalvlaran/graphina/bellmanford"
	"github.com/katalvlaran/graphina/core"
)

// BenchmarkBellmanFord_Chain measures the relaxation loop on a linear
// chain of 2000 nodes.
func BenchmarkBellmanFord_Chain(b *testing.B) {
	g := core.NewGraph[struct{}, int](core.WithDirected(true))
	ids := make([]core.NodeID, 2000)
	for i := range ids {
		ids[i] = g.AddNode(struct{}{})
	}
	for i := 0; i < 1999; i++ {
		g.AddEdge(ids[i], ids[i+1], 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bellmanford.BellmanFord(g, ids[0])
	}
}

// BenchmarkBellmanFord_Grid measures a 50x50 grid, exercising the full
// O(VE) relaxation cost across many passes.
func BenchmarkBellmanFord_Grid(b *testing.B) {
	const side = 50
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
		_, _ = bellmanford.BellmanFord(g, ids[0][0])
	}
}
