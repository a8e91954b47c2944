package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphina/builder"
)

func TestRandomSparse_InvalidProbability(t *testing.T) {
	g, ids, err := builder.RandomSparse[string, int](3, 1.5, nil)
	assert.Nil(t, g)
	assert.Nil(t, ids)
	assert.Error(t, err)
}

func TestRandomSparse_RequiresRngForMidRangeP(t *testing.T) {
	g, ids, err := builder.RandomSparse[string, int](3, 0.5, nil)
	assert.Nil(t, g)
	assert.Nil(t, ids)
	assert.Error(t, err)
}

func TestRandomSparse_PZeroIsEmpty(t *testing.T) {
	g, ids, err := builder.RandomSparse[string, int](5, 0, nil)
	require.NoError(t, err)
	require.Len(t, ids, 5)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestRandomSparse_POneIsComplete(t *testing.T) {
	g, ids, err := builder.RandomSparse[string, int](4, 1, nil)
	require.NoError(t, err)
	require.Len(t, ids, 4)
	assert.Equal(t, 6, g.EdgeCount())
}

func TestRandomSparse_DeterministicForFixedSeed(t *testing.T) {
	g1, ids1, err1 := builder.RandomSparse[string, int](6, 0.5, nil, builder.WithSeed[string, int](42))
	g2, ids2, err2 := builder.RandomSparse[string, int](6, 0.5, nil, builder.WithSeed[string, int](42))
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, g1.EdgeCount(), g2.EdgeCount())
	assert.Equal(t, len(ids1), len(ids2))
}
