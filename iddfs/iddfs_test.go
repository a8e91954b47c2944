package iddfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/iddfs"
)

func buildChain(n int) (*core.Graph[string, int], []core.NodeID) {
	g := core.NewGraph[string, int](core.WithDirected(true))
	ids := make([]core.NodeID, n)
	for i := range ids {
		ids[i] = g.AddNode("")
	}
	for i := 0; i < n-1; i++ {
		g.AddEdge(ids[i], ids[i+1], 0)
	}
	return g, ids
}

func TestIDDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph[string, int]()
	ghost := g.AddNode("x")
	a := g.AddNode("a")
	_, _, _ = g.RemoveNode(ghost)

	path, found, err := iddfs.IDDFS(g, ghost, a, 5)
	assert.Nil(t, path)
	assert.False(t, found)
	assert.ErrorIs(t, err, graphina.ErrNodeNotFound)
}

func TestIDDFS_NegativeMaxDepth(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")

	_, _, err := iddfs.IDDFS(g, a, b, -1)
	assert.ErrorIs(t, err, graphina.ErrInvalidArgument)
}

func TestIDDFS_SameStartGoal(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("a")

	path, found, err := iddfs.IDDFS(g, a, a, 0)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []core.NodeID{a}, path)
}

func TestIDDFS_ChainWithinDepth(t *testing.T) {
	g, ids := buildChain(6)

	path, found, err := iddfs.IDDFS(g, ids[0], ids[5], 10)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, ids, path)
}

func TestIDDFS_UnreachableWithinDepth(t *testing.T) {
	g, ids := buildChain(6)

	path, found, err := iddfs.IDDFS(g, ids[0], ids[5], 2)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, path)
}

func TestIDDFS_ShortestAmongMultiplePaths(t *testing.T) {
	// Diamond: A -> B -> D, A -> C -> E -> D. Shortest A..D is 2 hops.
	g := core.NewGraph[string, int](core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	d := g.AddNode("D")
	e := g.AddNode("E")
	g.AddEdge(a, b, 0)
	g.AddEdge(b, d, 0)
	g.AddEdge(a, c, 0)
	g.AddEdge(c, e, 0)
	g.AddEdge(e, d, 0)

	path, found, err := iddfs.IDDFS(g, a, d, 5)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, path, 3)
}

func TestIDDFS_Disconnected(t *testing.T) {
	g := core.NewGraph[string, int](core.WithDirected(true))
	a := g.AddNode("A")
	island := g.AddNode("island")

	path, found, err := iddfs.IDDFS(g, a, island, 10)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, path)
}

func TestIDDFS_Cancellation(t *testing.T) {
	g, ids := buildChain(100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, found, err := iddfs.IDDFS(g, ids[0], ids[99], 200, iddfs.WithContext(ctx))
	assert.False(t, found)
	assert.Error(t, err)
}

func TestIDDFS_CycleDoesNotHang(t *testing.T) {
	g := core.NewGraph[string, int](core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 0)
	g.AddEdge(b, c, 0)
	g.AddEdge(c, a, 0)

	path, found, err := iddfs.IDDFS(g, a, c, 5)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []core.NodeID{a, b, c}, path)
}
