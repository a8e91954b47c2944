package centrality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphina/centrality"
	"github.com/katalvlaran/graphina/core"
)

func TestDegree_Undirected(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)

	d := centrality.Degree(g)
	va, _ := d.Get(a)
	vb, _ := d.Get(b)
	vc, _ := d.Get(c)
	assert.Equal(t, 1, va)
	assert.Equal(t, 2, vb)
	assert.Equal(t, 1, vc)
}

func TestDegree_Directed(t *testing.T) {
	g := core.NewGraph[string, int](core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddEdge(a, b, 1)

	d := centrality.Degree(g)
	va, _ := d.Get(a)
	vb, _ := d.Get(b)
	assert.Equal(t, 1, va)
	assert.Equal(t, 1, vb)
}
