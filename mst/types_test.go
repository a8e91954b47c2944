package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/mst"
)

func TestCompute_DefaultIsKruskal(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 2)
	g.AddEdge(a, c, 4)

	res, err := mst.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalWeight)
}

func TestCompute_Prim(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 2)
	g.AddEdge(a, c, 4)

	res, err := mst.Compute(g, mst.WithMethod[int](mst.MethodPrim), mst.WithRoot[int](a))
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalWeight)
}

func TestCompute_UnknownMethod(t *testing.T) {
	g := core.NewGraph[string, int]()
	g.AddNode("A")

	res, err := mst.Compute(g, mst.WithMethod[int]("dijkstra"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, graphina.ErrInvalidArgument)
}
