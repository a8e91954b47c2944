package mst

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// MethodKruskal selects Kruskal's algorithm (sort all edges, union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// Result holds the edges selected into the spanning tree, in the order
// each algorithm added them, plus their total weight.
type Result[W core.Number] struct {
	Edges       []core.EdgeView[W]
	TotalWeight W
}

// Options configures Compute: which algorithm to run, and for Prim,
// which node to grow from. Root is ignored by Kruskal.
type Options[W core.Number] struct {
	Method string
	Root   core.NodeID
}

// Option configures an Options value.
type Option[W core.Number] func(*Options[W])

// WithMethod selects MethodKruskal or MethodPrim.
func WithMethod[W core.Number](method string) Option[W] {
	return func(o *Options[W]) { o.Method = method }
}

// WithRoot sets the starting node for Prim; unused by Kruskal.
func WithRoot[W core.Number](root core.NodeID) Option[W] {
	return func(o *Options[W]) { o.Root = root }
}

// DefaultOptions returns Options set up for Kruskal, which needs no root.
func DefaultOptions[W core.Number]() Options[W] {
	return Options[W]{Method: MethodKruskal}
}

// Compute dispatches to Kruskal or Prim based on opts.Method. It exists
// for callers that select the algorithm at runtime; code that already
// knows which algorithm it wants can call Kruskal or Prim directly.
func Compute[A any, W core.Number](g *core.Graph[A, W], opts ...Option[W]) (*Result[W], *graphina.GraphError) {
	o := DefaultOptions[W]()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, o.Root)
	default:
		return nil, graphina.NewInvalidArgument("mst.Compute", "Method", "must be mst.MethodKruskal or mst.MethodPrim")
	}
}
