package iddfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/iddfs"
)

// ExampleIDDFS finds the shortest path on a linear chain of 6 nodes.
func ExampleIDDFS() {
	g := core.NewGraph[string, int](core.WithDirected(true))
	ids := make([]core.NodeID, 6)
	for i := range ids {
		ids[i] = g.AddNode(fmt.Sprintf("%d", i))
	}
	for i := 0; i < 5; i++ {
		g.AddEdge(ids[i], ids[i+1], 0)
	}

	path, found, err := iddfs.IDDFS(g, ids[0], ids[5], 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(found, len(path))
	// Output:
	// true 6
}

// ExampleBidirectionalSearch finds the shortest path on the same chain.
func ExampleBidirectionalSearch() {
	g := core.NewGraph[string, int](core.WithDirected(true))
	ids := make([]core.NodeID, 6)
	for i := range ids {
		ids[i] = g.AddNode(fmt.Sprintf("%d", i))
	}
	for i := 0; i < 5; i++ {
		g.AddEdge(ids[i], ids[i+1], 0)
	}

	path, found, err := iddfs.BidirectionalSearch(g, ids[0], ids[5])
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(found, len(path))
	// Output:
	// true 6
}
