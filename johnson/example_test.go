package johnson_test

import (
	"fmt"

	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/johnson"
)

// ExampleJohnson computes all-pairs shortest distances on a small
// directed graph carrying a negative edge weight.
func ExampleJohnson() {
	g := core.NewGraph[string, int](core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	d := g.AddNode("D")
	g.AddEdge(a, b, 4)
	g.AddEdge(a, c, 5)
	g.AddEdge(b, c, -3)
	g.AddEdge(c, d, 2)

	res, err := johnson.Johnson(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dist, _ := res.DistanceBetween(a, d)
	fmt.Println(dist)
	// Output:
	// 3
}
