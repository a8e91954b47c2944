package mst_test

import (
	"fmt"

	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/mst"
)

// ExampleKruskal builds a weighted triangle and keeps its two cheapest
// edges.
func ExampleKruskal() {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 2)
	g.AddEdge(a, c, 4)

	res, err := mst.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(res.Edges), res.TotalWeight)
	// Output:
	// 2 3
}

// ExamplePrim grows a tree outward from a chosen root.
func ExamplePrim() {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	d := g.AddNode("D")
	e := g.AddNode("E")
	g.AddEdge(a, b, 1)
	g.AddEdge(a, e, 12)
	g.AddEdge(b, c, 2)
	g.AddEdge(c, d, 3)
	g.AddEdge(d, e, 5)

	res, err := mst.Prim(g, a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(res.Edges), res.TotalWeight)
	// Output:
	// 4 11
}
