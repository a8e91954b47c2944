package centrality_test

import (
	"fmt"

	"github.com/katalvlaran/graphina/centrality"
	"github.com/katalvlaran/graphina/core"
)

func ExamplePageRank() {
	g := core.NewGraph[string, int](core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	g.AddEdge(c, a, 1)

	scores, err := centrality.PageRank(g)
	if err != nil {
		panic(err)
	}

	total := 0.0
	for _, id := range g.NodeIDs() {
		v, _ := scores.Get(id)
		total += v
	}
	fmt.Printf("%.4f\n", total)
	// Output: 1.0000
}
