package centrality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/centrality"
	"github.com/katalvlaran/graphina/core"
)

func TestEigenvector_StarGraphCenterDominates(t *testing.T) {
	g := core.NewGraph[string, int]()
	center := g.AddNode("center")
	leaves := make([]core.NodeID, 4)
	for i := range leaves {
		leaves[i] = g.AddNode("leaf")
		g.AddEdge(center, leaves[i], 1)
	}

	scores, err := centrality.Eigenvector(g)
	require.Nil(t, err)

	centerScore, _ := scores.Get(center)
	for _, leaf := range leaves {
		leafScore, _ := scores.Get(leaf)
		assert.Greater(t, centerScore, leafScore)
	}
}

func TestKatz_ConvergesOnSmallGraph(t *testing.T) {
	g := core.NewGraph[string, int](core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)

	scores, err := centrality.Katz(g, centrality.WithAlpha(0.1))
	require.Nil(t, err)
	assert.Equal(t, 3, scores.Len())

	for _, id := range g.NodeIDs() {
		v, _ := scores.Get(id)
		assert.Greater(t, v, 0.0)
	}
}

func TestKatz_DivergesWithoutConvergence(t *testing.T) {
	g := core.NewGraph[string, int](core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, a, 1)

	// alpha too large relative to the cycle's spectral radius diverges.
	_, err := centrality.Katz(g, centrality.WithAlpha(5.0), centrality.WithKatzMaxIter(20))
	require.NotNil(t, err)
	assert.ErrorIs(t, err, graphina.ErrConvergenceFailed)
}
