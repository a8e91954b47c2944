package floydwarshall_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/floydwarshall"
)

func TestFloydWarshall_SimpleTriangle(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 2)
	g.AddEdge(a, c, 5)

	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)

	d, ok := res.DistanceBetween(a, c)
	require.True(t, ok)
	assert.Equal(t, 3.0, d)

	path, ok := res.PathTo(a, c)
	require.True(t, ok)
	assert.Equal(t, []core.NodeID{a, b, c}, path)
}

func TestFloydWarshall_DirectedDetour(t *testing.T) {
	g := core.NewGraph[string, int](core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	d := g.AddNode("D")
	g.AddEdge(a, b, 2)
	g.AddEdge(a, c, 1)
	g.AddEdge(c, b, 1)
	g.AddEdge(b, d, 3)
	g.AddEdge(c, d, 5)

	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)

	dist, ok := res.DistanceBetween(a, d)
	require.True(t, ok)
	assert.Equal(t, 5.0, dist)
}

func TestFloydWarshall_Unreachable(t *testing.T) {
	g := core.NewGraph[string, int](core.WithDirected(true))
	a := g.AddNode("A")
	island := g.AddNode("island")

	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)

	_, ok := res.DistanceBetween(a, island)
	assert.False(t, ok)
	_, ok = res.PathTo(a, island)
	assert.False(t, ok)
}

func TestFloydWarshall_SelfDistanceZero(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")

	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)

	d, ok := res.DistanceBetween(a, a)
	require.True(t, ok)
	assert.Equal(t, 0.0, d)
}

func TestFloydWarshall_NegativeCycleDetected(t *testing.T) {
	g := core.NewGraph[string, int](core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, -1)
	g.AddEdge(c, a, -1)

	res, err := floydwarshall.FloydWarshall(g)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, graphina.ErrNegativeCycle)
}

func TestFloydWarshall_UndirectedSymmetric(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 4)

	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)

	fwd, _ := res.DistanceBetween(a, c)
	bwd, _ := res.DistanceBetween(c, a)
	assert.Equal(t, fwd, bwd)
}

func TestFloydWarshall_EmptyGraph(t *testing.T) {
	g := core.NewGraph[string, int]()

	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Index.Len())
}

func TestFloydWarshall_Cancellation(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddEdge(a, b, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := floydwarshall.FloydWarshall(g, floydwarshall.WithContext(ctx))
	assert.Nil(t, res)
	assert.Error(t, err)
}

func TestFloydWarshall_MultiEdgePicksMin(t *testing.T) {
	g := core.NewGraph[string, int](core.WithMultiEdges())
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddEdge(a, b, 10)
	g.AddEdge(a, b, 2)

	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)

	d, ok := res.DistanceBetween(a, b)
	require.True(t, ok)
	assert.Equal(t, 2.0, d)
}
