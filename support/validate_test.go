package support_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/support"
)

func TestRequireNonEmpty(t *testing.T) {
	g := core.NewGraph[string, int]()
	assert.ErrorIs(t, support.RequireNonEmpty("op", g), graphina.ErrInvalidGraph)
	g.AddNode("A")
	assert.NoError(t, support.RequireNonEmpty("op", g))
}

func TestRequireNoSelfLoops(t *testing.T) {
	g := core.NewGraph[string, int](core.WithLoops())
	a := g.AddNode("A")
	assert.NoError(t, support.RequireNoSelfLoops("op", g))
	g.AddEdge(a, a, 1)
	assert.ErrorIs(t, support.RequireNoSelfLoops("op", g), graphina.ErrInvalidGraph)
}

func TestRequireNonNegativeWeights(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddEdge(a, b, -1)
	assert.ErrorIs(t, support.RequireNonNegativeWeights("op", g), graphina.ErrNegativeWeight)
}

func TestRequireConnected(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddNode("island")
	g.AddEdge(a, b, 1)
	assert.ErrorIs(t, support.RequireConnected("op", g), graphina.ErrInvalidGraph)
}

func TestRequireDAG(t *testing.T) {
	g := core.NewGraph[string, int](core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	assert.NoError(t, support.RequireDAG("op", g))

	g.AddEdge(c, a, 1)
	assert.ErrorIs(t, support.RequireDAG("op", g), graphina.ErrInvalidGraph)
}

func TestRequireDAG_UndirectedRejected(t *testing.T) {
	g := core.NewGraph[string, int]()
	assert.ErrorIs(t, support.RequireDAG("op", g), graphina.ErrInvalidGraph)
}

func TestIsBipartite(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	assert.True(t, support.IsBipartite(g))

	g.AddEdge(a, c, 1)
	assert.False(t, support.IsBipartite(g))
}
