package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/mst"
)

func TestPrim_DirectedRejected(t *testing.T) {
	g := core.NewGraph[string, int](core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddEdge(a, b, 1)

	res, err := mst.Prim(g, a)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, graphina.ErrInvalidGraph)
}

func TestPrim_ZeroRootRejected(t *testing.T) {
	g := core.NewGraph[string, int]()
	g.AddNode("A")

	res, err := mst.Prim(g, core.NodeID{})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, graphina.ErrInvalidArgument)
}

func TestPrim_RootNotFound(t *testing.T) {
	g := core.NewGraph[string, int]()
	ghost := g.AddNode("x")
	_, _, _ = g.RemoveNode(ghost)

	res, err := mst.Prim(g, ghost)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, graphina.ErrNodeNotFound)
}

func TestPrim_SingleNode(t *testing.T) {
	g := core.NewGraph[string, int]()
	solo := g.AddNode("solo")

	res, err := mst.Prim(g, solo)
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
}

func TestPrim_Pentagon(t *testing.T) {
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
	require.NoError(t, err)
	assert.Len(t, res.Edges, 4)
	assert.Equal(t, 11, res.TotalWeight)
}

func TestPrim_Disconnected(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	g.AddNode("island")

	res, err := mst.Prim(g, a)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, graphina.ErrInvalidGraph)
}

func TestPrim_SkipsSelfLoops(t *testing.T) {
	g := core.NewGraph[string, int](core.WithLoops())
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddEdge(a, a, 99)
	g.AddEdge(a, b, 1)

	res, err := mst.Prim(g, a)
	require.NoError(t, err)
	assert.Len(t, res.Edges, 1)
	assert.Equal(t, 1, res.TotalWeight)
}

func TestPrim_MultiEdgePicksCheaper(t *testing.T) {
	g := core.NewGraph[string, int](core.WithMultiEdges())
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddEdge(a, b, 10)
	g.AddEdge(a, b, 2)

	res, err := mst.Prim(g, a)
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)
	assert.Equal(t, 2, res.TotalWeight)
}

func TestPrim_MatchesKruskalWeight(t *testing.T) {
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

	primRes, err := mst.Prim(g, ids["A"])
	require.NoError(t, err)
	kruskalRes, err := mst.Kruskal(g)
	require.NoError(t, err)

	assert.Equal(t, kruskalRes.TotalWeight, primRes.TotalWeight)
	assert.Len(t, primRes.Edges, len(kruskalRes.Edges))
}
