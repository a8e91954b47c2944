package community_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphina/community"
	"github.com/katalvlaran/graphina/core"
)

func TestLouvain_EmptyGraph(t *testing.T) {
	g := core.NewGraph[string, int]()
	p := community.Louvain(g)
	assert.Equal(t, 0, p.Count)
}

func TestLouvain_SingleNode(t *testing.T) {
	g := core.NewGraph[string, int]()
	g.AddNode("A")
	p := community.Louvain(g)
	assert.Equal(t, 1, p.Count)
}

func TestLouvain_NoEdgesAllSingletons(t *testing.T) {
	g := core.NewGraph[string, int]()
	g.AddNode("A")
	g.AddNode("B")
	g.AddNode("C")
	p := community.Louvain(g)
	assert.Equal(t, 3, p.Count)
}

func TestLouvain_TwoCliquesSeparate(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	d := g.AddNode("D")
	e := g.AddNode("E")
	f := g.AddNode("F")
	for _, pair := range [][2]core.NodeID{{a, b}, {b, c}, {a, c}, {d, e}, {e, f}, {d, f}} {
		g.AddEdge(pair[0], pair[1], 1)
	}
	g.AddEdge(c, d, 1)

	p := community.Louvain(g, community.WithLouvainSeed(1))
	assert.GreaterOrEqual(t, p.Count, 1)

	ca, _ := p.Community.Get(a)
	cb, _ := p.Community.Get(b)
	cc, _ := p.Community.Get(c)
	assert.Equal(t, ca, cb)
	assert.Equal(t, cb, cc)
}

func TestLouvain_NeverFewerCommunitiesThanComponents(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	d := g.AddNode("D")
	g.AddEdge(a, b, 1)
	g.AddEdge(c, d, 1)

	components := community.ConnectedComponents(g)
	p := community.Louvain(g, community.WithLouvainSeed(3))
	assert.GreaterOrEqual(t, p.Count, components.Count)
}

func TestLouvain_DeterministicWithSeed(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)

	p1 := community.Louvain(g, community.WithLouvainSeed(9))
	p2 := community.Louvain(g, community.WithLouvainSeed(9))
	for _, id := range g.NodeIDs() {
		v1, _ := p1.Community.Get(id)
		v2, _ := p2.Community.Get(id)
		assert.Equal(t, v1, v2)
	}
}
