package centrality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphina/centrality"
	"github.com/katalvlaran/graphina/core"
)

func TestBetweenness_PathGraph(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	d := g.AddNode("D")
	e := g.AddNode("E")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	g.AddEdge(c, d, 1)
	g.AddEdge(d, e, 1)

	res, err := centrality.Betweenness(g, centrality.WithNormalize(true))
	require.Nil(t, err)

	aScore, _ := res.Node.Get(a)
	bScore, _ := res.Node.Get(b)
	cScore, _ := res.Node.Get(c)
	dScore, _ := res.Node.Get(d)
	eScore, _ := res.Node.Get(e)

	// Endpoints of a path lie on no one else's shortest path.
	assert.Equal(t, 0.0, aScore)
	assert.Equal(t, 0.0, eScore)
	// The middle node strictly dominates its neighbors, which are
	// symmetric to each other by the path's reflection symmetry.
	assert.InDelta(t, bScore, dScore, 1e-9)
	assert.Greater(t, cScore, bScore)
	assert.Greater(t, cScore, 0.0)
}

func TestBetweenness_EdgeScoresSumPositive(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)

	res, err := centrality.Betweenness(g)
	require.Nil(t, err)
	assert.NotEmpty(t, res.Edge)
	for _, score := range res.Edge {
		assert.Greater(t, score, 0.0)
	}
}

func TestBetweenness_SmallGraphSkipsNormalization(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddEdge(a, b, 1)

	res, err := centrality.Betweenness(g, centrality.WithNormalize(true))
	require.Nil(t, err)
	va, _ := res.Node.Get(a)
	vb, _ := res.Node.Get(b)
	assert.Equal(t, 0.0, va)
	assert.Equal(t, 0.0, vb)
}

func TestBetweenness_WithPoolMatchesUnpooled(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	d := g.AddNode("D")
	e := g.AddNode("E")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	g.AddEdge(c, d, 1)
	g.AddEdge(d, e, 1)

	plain, err := centrality.Betweenness(g, centrality.WithNormalize(true))
	require.Nil(t, err)

	pool := centrality.NewBetweennessPool(g.NodeCount())
	pooled, err := centrality.Betweenness(g, centrality.WithNormalize(true), centrality.WithPool(pool))
	require.Nil(t, err)

	for _, id := range []core.NodeID{a, b, c, d, e} {
		pv, _ := plain.Node.Get(id)
		qv, _ := pooled.Node.Get(id)
		assert.InDelta(t, pv, qv, 1e-9)
	}

	// The pool's maps must come back clean for a second run to reuse.
	again, err := centrality.Betweenness(g, centrality.WithNormalize(true), centrality.WithPool(pool))
	require.Nil(t, err)
	for _, id := range []core.NodeID{a, b, c, d, e} {
		pv, _ := plain.Node.Get(id)
		qv, _ := again.Node.Get(id)
		assert.InDelta(t, pv, qv, 1e-9)
	}
}
