package community_test

import (
	"fmt"

	"github.com/katalvlaran/graphina/community"
	"github.com/katalvlaran/graphina/core"
)

func ExampleConnectedComponents() {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddNode("island")
	g.AddEdge(a, b, 1)

	p := community.ConnectedComponents(g)
	fmt.Println(p.Count)
	// Output: 2
}
