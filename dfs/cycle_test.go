package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/dfs"
)

// cycleNodeSet returns the distinct node set of a closed cycle
// [v0, ..., v0], dropping the duplicated closing node.
func cycleNodeSet(c []core.NodeID) map[core.NodeID]struct{} {
	set := make(map[core.NodeID]struct{}, len(c)-1)
	for _, id := range c[:len(c)-1] {
		set[id] = struct{}{}
	}
	return set
}

func TestDetectCycles_NoCycle(t *testing.T) {
	g := core.NewGraph[string, int](core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	d := g.AddNode("D")
	g.AddEdge(a, b, 0)
	g.AddEdge(b, c, 0)
	g.AddEdge(b, d, 0)

	has, cycles := dfs.DetectCycles(g)
	assert.False(t, has)
	assert.Empty(t, cycles)
}

func TestDetectCycles_DirectedTwoNode(t *testing.T) {
	g := core.NewGraph[string, int](core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddEdge(a, b, 0)
	g.AddEdge(b, a, 0)

	has, cycles := dfs.DetectCycles(g)
	require.True(t, has)
	require.Len(t, cycles, 1)
	assert.Equal(t, map[core.NodeID]struct{}{a: {}, b: {}}, cycleNodeSet(cycles[0]))
	assert.Equal(t, cycles[0][0], cycles[0][len(cycles[0])-1])
}

func TestDetectCycles_DirectedThreeNode(t *testing.T) {
	g := core.NewGraph[string, int](core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 0)
	g.AddEdge(b, c, 0)
	g.AddEdge(c, a, 0)

	has, cycles := dfs.DetectCycles(g)
	require.True(t, has)
	require.Len(t, cycles, 1)
	assert.Equal(t, map[core.NodeID]struct{}{a: {}, b: {}, c: {}}, cycleNodeSet(cycles[0]))
}

func TestDetectCycles_UndirectedDisjointCycles(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	w := g.AddNode("W")
	x := g.AddNode("X")
	y := g.AddNode("Y")
	z := g.AddNode("Z")
	g.AddEdge(a, b, 0)
	g.AddEdge(b, c, 0)
	g.AddEdge(c, a, 0)
	g.AddEdge(w, x, 0)
	g.AddEdge(x, y, 0)
	g.AddEdge(y, z, 0)
	g.AddEdge(z, w, 0)

	has, cycles := dfs.DetectCycles(g)
	require.True(t, has)
	require.Len(t, cycles, 2)

	sets := []map[core.NodeID]struct{}{cycleNodeSet(cycles[0]), cycleNodeSet(cycles[1])}
	want1 := map[core.NodeID]struct{}{a: {}, b: {}, c: {}}
	want2 := map[core.NodeID]struct{}{w: {}, x: {}, y: {}, z: {}}
	assert.Contains(t, sets, want1)
	assert.Contains(t, sets, want2)
}

func TestDetectCycles_DirectedMultipleLarge(t *testing.T) {
	g := core.NewGraph[string, int](core.WithDirected(true))
	cyc1 := make([]core.NodeID, 5)
	for i := range cyc1 {
		cyc1[i] = g.AddNode("")
	}
	for i := 0; i < len(cyc1); i++ {
		g.AddEdge(cyc1[i], cyc1[(i+1)%len(cyc1)], 0)
	}
	cyc2 := make([]core.NodeID, 3)
	for i := range cyc2 {
		cyc2[i] = g.AddNode("")
	}
	for i := 0; i < len(cyc2); i++ {
		g.AddEdge(cyc2[i], cyc2[(i+1)%len(cyc2)], 0)
	}
	g.AddEdge(cyc1[len(cyc1)-1], cyc2[0], 0)
	g.AddNode("") // isolated
	g.AddNode("")

	has, cycles := dfs.DetectCycles(g)
	require.True(t, has)
	require.Len(t, cycles, 2)
}

func TestDetectCycles_SelfLoopRequiresLoopsAllowed(t *testing.T) {
	g := core.NewGraph[string, int](core.WithDirected(true), core.WithLoops())
	a := g.AddNode("A")
	g.AddEdge(a, a, 0)

	has, cycles := dfs.DetectCycles(g)
	require.True(t, has)
	require.Len(t, cycles, 1)
	assert.Equal(t, map[core.NodeID]struct{}{a: {}}, cycleNodeSet(cycles[0]))
}
