// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor
// filtering, full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"

	"github.com/katalvlaran/graphina/core"
)

// Option configures optional behavior of DFS traversal.
type Option func(*dfsOptions)

type dfsOptions struct {
	ctx              context.Context
	onVisit          func(id core.NodeID) error
	onExit           func(id core.NodeID) error
	maxDepth         int
	filterNeighbor   func(id core.NodeID) bool
	fullTraversal    bool
	skippedNeighbors int
}

func defaultOptions() dfsOptions {
	return dfsOptions{
		ctx:      context.Background(),
		maxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. A nil context has no
// effect.
func WithContext(ctx context.Context) Option {
	return func(o *dfsOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook, called when a node is
// first discovered.
func WithOnVisit(fn func(id core.NodeID) error) Option {
	return func(o *dfsOptions) { o.onVisit = fn }
}

// WithOnExit installs fn as a post-order hook, called after a node's
// descendants have been fully explored.
func WithOnExit(fn func(id core.NodeID) error) Option {
	return func(o *dfsOptions) { o.onExit = fn }
}

// WithMaxDepth limits traversal to the given depth. A limit of 0 visits
// only the start node. Negative values (the default, -1) mean no limit.
func WithMaxDepth(limit int) Option {
	return func(o *dfsOptions) { o.maxDepth = limit }
}

// WithFilterNeighbor filters neighbor ids before they are pushed; return
// false to skip.
func WithFilterNeighbor(fn func(id core.NodeID) bool) Option {
	return func(o *dfsOptions) { o.filterNeighbor = fn }
}

// WithFullTraversal runs DFS from every unvisited node, covering
// disconnected components as a forest.
func WithFullTraversal() Option {
	return func(o *dfsOptions) { o.fullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []core.NodeID

	// Depth maps each node to its distance (#edges) from its tree root.
	Depth *core.NodeMap[int]

	// Parent maps each node to the node from which it was first
	// discovered. Tree roots do not appear in this map.
	Parent *core.NodeMap[core.NodeID]

	// Visited flags which nodes were reached during the traversal.
	Visited *core.NodeMap[bool]

	// SkippedNeighbors counts neighbors skipped by FilterNeighbor,
	// aggregated across all trees.
	SkippedNeighbors int
}
