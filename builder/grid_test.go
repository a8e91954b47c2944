package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphina/builder"
)

func TestGrid_InvalidDims(t *testing.T) {
	g, res, err := builder.Grid[string, int](0, 3, nil)
	assert.Nil(t, g)
	assert.Nil(t, res)
	assert.Error(t, err)
}

func TestGrid_2x3Neighbors(t *testing.T) {
	g, res, err := builder.Grid[string, int](2, 3, nil)
	require.NoError(t, err)
	require.Len(t, res.Nodes, 2)
	require.Len(t, res.Nodes[0], 3)
	// edges: horizontal 2*2=4, vertical 1*3=3 -> 7 total
	assert.Equal(t, 7, g.EdgeCount())
	assert.True(t, g.ContainsEdge(res.Nodes[0][0], res.Nodes[0][1]))
	assert.True(t, g.ContainsEdge(res.Nodes[0][0], res.Nodes[1][0]))
}

func TestGrid_SingleCellNoEdges(t *testing.T) {
	g, res, err := builder.Grid[string, int](1, 1, nil)
	require.NoError(t, err)
	require.Len(t, res.Nodes, 1)
	assert.Equal(t, 0, g.EdgeCount())
}
