package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/builder"
	"github.com/katalvlaran/graphina/core"
)

func TestCycle_TooFewVertices(t *testing.T) {
	g, ids, err := builder.Cycle[string, int](2, nil)
	assert.Nil(t, g)
	assert.Nil(t, ids)
	assert.ErrorIs(t, err, graphina.ErrInvalidArgument)
}

func TestCycle_Ring(t *testing.T) {
	g, ids, err := builder.Cycle[string, int](4, nil)
	require.NoError(t, err)
	require.Len(t, ids, 4)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
	for i := 0; i < 4; i++ {
		assert.True(t, g.ContainsEdge(ids[i], ids[(i+1)%4]))
	}
}

func TestCycle_ConstantWeight(t *testing.T) {
	g, ids, err := builder.Cycle[string, int](3, nil, builder.WithWeightFn[string, int](builder.ConstantWeightFn[int](7)))
	require.NoError(t, err)
	eids := g.FindEdges(ids[0], ids[1])
	require.Len(t, eids, 1)
	w, ok := g.EdgeWeight(eids[0])
	require.True(t, ok)
	assert.Equal(t, 7, w)
}

func TestCycle_DirectedDoesNotMirror(t *testing.T) {
	g, ids, err := builder.Cycle[string, int](3, []core.GraphOption{core.WithDirected(true)})
	require.NoError(t, err)
	assert.True(t, g.ContainsEdge(ids[0], ids[1]))
	assert.False(t, g.ContainsEdge(ids[1], ids[0]))
}
