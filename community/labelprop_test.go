package community_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphina/community"
	"github.com/katalvlaran/graphina/core"
)

func TestLabelPropagation_TwoCliquesSeparate(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	d := g.AddNode("D")
	e := g.AddNode("E")
	f := g.AddNode("F")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	g.AddEdge(a, c, 1)
	g.AddEdge(d, e, 1)
	g.AddEdge(e, f, 1)
	g.AddEdge(d, f, 1)
	g.AddEdge(c, d, 1) // single bridge edge between the two triangles

	p := community.LabelPropagation(g, community.WithLabelPropagationSeed(42))

	ca, _ := p.Community.Get(a)
	cb, _ := p.Community.Get(b)
	cc, _ := p.Community.Get(c)
	cd, _ := p.Community.Get(d)
	ce, _ := p.Community.Get(e)
	cf, _ := p.Community.Get(f)

	assert.Equal(t, ca, cb)
	assert.Equal(t, cb, cc)
	assert.Equal(t, cd, ce)
	assert.Equal(t, ce, cf)
}

func TestLabelPropagation_DeterministicWithSeed(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)

	p1 := community.LabelPropagation(g, community.WithLabelPropagationSeed(7))
	p2 := community.LabelPropagation(g, community.WithLabelPropagationSeed(7))

	for _, id := range g.NodeIDs() {
		v1, _ := p1.Community.Get(id)
		v2, _ := p2.Community.Get(id)
		assert.Equal(t, v1, v2)
	}
}
