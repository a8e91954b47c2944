package astar_test

import (
	"fmt"

	"github.com/katalvlaran/graphina/astar"
	"github.com/katalvlaran/graphina/core"
)

// ExampleAStar finds a shortest path on a small triangle graph using a
// trivial (always-zero) heuristic, which degenerates A* to Dijkstra.
func ExampleAStar() {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 2)
	g.AddEdge(a, c, 5)

	zero := func(core.NodeID) int { return 0 }
	res, err := astar.AStar(g, a, c, zero)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Cost)
	// Output:
	// 3
}
