package dfs_test

import (
	"testing"

	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS performance on a linear chain of
// 10,000 nodes: N0 -> N1 -> ... -> N10000.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := core.NewGraph[struct{}, int](core.WithDirected(true))
	ids := make([]core.NodeID, 10001)
	for i := range ids {
		ids[i] = g.AddNode(struct{}{})
	}
	for i := 0; i < 10000; i++ {
		g.AddEdge(ids[i], ids[i+1], 0)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, ids[0])
	}
}

// BenchmarkDFS_BinaryTree measures DFS on a complete binary tree of depth 16.
func BenchmarkDFS_BinaryTree(b *testing.B) {
	g := core.NewGraph[struct{}, int](core.WithDirected(true))
	const depth = 16
	maxD := (1 << depth) - 1
	ids := make([]core.NodeID, maxD+1)
	for i := 1; i <= maxD; i++ {
		ids[i] = g.AddNode(struct{}{})
		if i > 1 {
			g.AddEdge(ids[i/2], ids[i], 0)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, ids[1])
	}
}

// BenchmarkDetectCycles_Large measures cycle detection on a ring of 5000 nodes.
func BenchmarkDetectCycles_Large(b *testing.B) {
	g := core.NewGraph[struct{}, int](core.WithDirected(true))
	const n = 5000
	ids := make([]core.NodeID, n)
	for i := range ids {
		ids[i] = g.AddNode(struct{}{})
	}
	for i := 0; i < n; i++ {
		g.AddEdge(ids[i], ids[(i+1)%n], 0)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DetectCycles(g)
	}
}
