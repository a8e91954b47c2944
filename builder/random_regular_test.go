package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphina/builder"
	"github.com/katalvlaran/graphina/core"
)

func TestRandomRegular_RequiresUndirected(t *testing.T) {
	g, ids, err := builder.RandomRegular[string, int](4, 2, []core.GraphOption{core.WithDirected(true)}, builder.WithSeed[string, int](1))
	assert.Nil(t, g)
	assert.Nil(t, ids)
	assert.Error(t, err)
}

func TestRandomRegular_RequiresRng(t *testing.T) {
	g, ids, err := builder.RandomRegular[string, int](4, 2, nil)
	assert.Nil(t, g)
	assert.Nil(t, ids)
	assert.Error(t, err)
}

func TestRandomRegular_OddProductRejected(t *testing.T) {
	g, ids, err := builder.RandomRegular[string, int](3, 3, nil, builder.WithSeed[string, int](1))
	assert.Nil(t, g)
	assert.Nil(t, ids)
	assert.Error(t, err)
}

func TestRandomRegular_DegreeHonored(t *testing.T) {
	const n, d = 6, 3
	g, ids, err := builder.RandomRegular[string, int](n, d, nil, builder.WithSeed[string, int](7))
	require.NoError(t, err)
	require.Len(t, ids, n)
	assert.Equal(t, n*d/2, g.EdgeCount())
	for _, id := range ids {
		degree := 0
		for _, v := range g.Neighbors(id) {
			degree += len(g.FindEdges(id, v))
		}
		assert.Equal(t, d, degree)
	}
}
