package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphina/builder"
)

func TestComplete_SingleNode(t *testing.T) {
	g, ids, err := builder.Complete[string, int](1, nil)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestComplete_K4(t *testing.T) {
	g, ids, err := builder.Complete[string, int](4, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			assert.True(t, g.ContainsEdge(ids[i], ids[j]))
		}
	}
}

func TestCompleteBipartite_TooSmallPartition(t *testing.T) {
	g, res, err := builder.CompleteBipartite[string, int](0, 2, nil)
	assert.Nil(t, g)
	assert.Nil(t, res)
	assert.Error(t, err)
}

func TestCompleteBipartite_CrossEdges(t *testing.T) {
	g, res, err := builder.CompleteBipartite[string, int](2, 3, nil)
	require.NoError(t, err)
	require.Len(t, res.Left, 2)
	require.Len(t, res.Right, 3)
	assert.Equal(t, 6, g.EdgeCount())
	for _, u := range res.Left {
		for _, v := range res.Right {
			assert.True(t, g.ContainsEdge(u, v))
		}
	}
	assert.False(t, g.ContainsEdge(res.Left[0], res.Left[1]))
}
