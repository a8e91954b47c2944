package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/mst"
)

func TestKruskal_DirectedRejected(t *testing.T) {
	g := core.NewGraph[string, int](core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddEdge(a, b, 1)

	res, err := mst.Kruskal(g)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, graphina.ErrInvalidGraph)
}

func TestKruskal_EmptyGraph(t *testing.T) {
	g := core.NewGraph[string, int]()
	res, err := mst.Kruskal(g)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, graphina.ErrInvalidGraph)
}

func TestKruskal_SingleNode(t *testing.T) {
	g := core.NewGraph[string, int]()
	g.AddNode("solo")

	res, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Equal(t, 0, res.TotalWeight)
}

func TestKruskal_Triangle(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 2)
	g.AddEdge(a, c, 4)

	res, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, res.Edges, 2)
	assert.Equal(t, 3, res.TotalWeight)
}

func TestKruskal_MediumGraph(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	d := g.AddNode("D")
	g.AddEdge(a, b, 4)
	g.AddEdge(a, c, 1)
	g.AddEdge(c, b, 2)
	g.AddEdge(b, d, 3)
	g.AddEdge(c, d, 5)
	g.AddEdge(d, a, 4)

	res, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, res.Edges, 3)
	assert.Equal(t, 6, res.TotalWeight)
}

func TestKruskal_Disconnected(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddNode("island")
	g.AddEdge(a, b, 1)

	res, err := mst.Kruskal(g)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, graphina.ErrInvalidGraph)
}

func TestKruskal_SkipsSelfLoops(t *testing.T) {
	g := core.NewGraph[string, int](core.WithLoops())
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddEdge(a, a, 99)
	g.AddEdge(a, b, 1)

	res, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, res.Edges, 1)
	assert.Equal(t, 1, res.TotalWeight)
}

func TestKruskal_MultiEdgePicksCheaper(t *testing.T) {
	g := core.NewGraph[string, int](core.WithMultiEdges())
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddEdge(a, b, 10)
	g.AddEdge(a, b, 2)

	res, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)
	assert.Equal(t, 2, res.TotalWeight)
}

func TestKruskal_LargeGraph(t *testing.T) {
	g := core.NewGraph[string, int]()
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	ids := make(map[string]core.NodeID, len(names))
	for _, name := range names {
		ids[name] = g.AddNode(name)
	}
	type e struct {
		u, v string
		w    int
	}
	for _, edge := range []e{
		{"A", "B", 2}, {"B", "C", 1}, {"D", "E", 1}, {"E", "G", 2},
		{"F", "G", 3}, {"A", "C", 3}, {"B", "D", 4}, {"C", "E", 5},
		{"E", "F", 6}, {"D", "F", 7},
	} {
		g.AddEdge(ids[edge.u], ids[edge.v], edge.w)
	}

	res, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, res.Edges, 6)
	assert.Equal(t, 13, res.TotalWeight)
}
