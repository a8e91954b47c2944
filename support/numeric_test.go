package support_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphina/support"
)

func TestEqualWithinEpsilon(t *testing.T) {
	assert.True(t, support.EqualWithinEpsilon(1.0, 1.0000001, 1e-5))
	assert.False(t, support.EqualWithinEpsilon(1.0, 1.1, 1e-5))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, support.IsFinite(1.0))
	assert.False(t, support.IsFinite(math.NaN()))
	assert.False(t, support.IsFinite(math.Inf(1)))
}

func TestL1Delta(t *testing.T) {
	assert.Equal(t, 3.0, support.L1Delta([]float64{1, 2}, []float64{2, 3}))
}

func TestNormalize(t *testing.T) {
	v := []float64{3, 4}
	support.Normalize(v)
	assert.InDelta(t, 0.6, v[0], 1e-9)
	assert.InDelta(t, 0.8, v[1], 1e-9)

	zero := []float64{0, 0}
	support.Normalize(zero)
	assert.Equal(t, []float64{0, 0}, zero)
}
