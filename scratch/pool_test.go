package scratch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphina/scratch"
)

func TestPool_ReusesAfterRelease(t *testing.T) {
	pool := scratch.NewNodeBoolMapPool[string](4)

	h := pool.Acquire()
	h.Value["a"] = true
	h.Release()

	h2 := pool.Acquire()
	assert.Empty(t, h2.Value, "released map must come back cleared")
}

func TestSlicePool_GrowsAndReuses(t *testing.T) {
	pool := scratch.NewSlicePool[int](2)

	h := pool.Acquire()
	h.Value = append(h.Value, 1, 2, 3)
	assert.Len(t, h.Value, 3)
	h.Value = h.Value[:0]
	h.Release()

	h2 := pool.Acquire()
	assert.Empty(t, h2.Value)
}

func TestNodeFloatMapPool_ClearsOnRelease(t *testing.T) {
	pool := scratch.NewNodeFloatMapPool[int](2)

	h := pool.Acquire()
	h.Value[1] = 3.14
	h.Release()

	h2 := pool.Acquire()
	assert.Empty(t, h2.Value)
}
