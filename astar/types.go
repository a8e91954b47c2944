// Package astar implements A*, informed best-first shortest-path search
// guided by a caller-supplied heuristic. It shares dijkstra's binary
// heap relaxation idiom, adding the heuristic term to the priority.
package astar

import (
	"context"

	"github.com/katalvlaran/graphina/core"
)

// Heuristic estimates the remaining cost from v to the goal. For the
// returned path to be optimal it must be admissible: it must never
// overestimate the true remaining cost. Consistency (the heuristic
// never decreases by more than an edge's weight across that edge) is
// recommended but not enforced.
type Heuristic[W core.Number] func(v core.NodeID) W

// Option configures an A* run.
type Option[W core.Number] func(*options[W])

type options[W core.Number] struct {
	ctx context.Context
}

func defaultOptions[W core.Number]() options[W] {
	return options[W]{ctx: context.Background()}
}

// WithContext supplies a cancellation context, checked between heap
// pops.
func WithContext[W core.Number](ctx context.Context) Option[W] {
	return func(o *options[W]) { o.ctx = ctx }
}

// Result holds one shortest path found by A* and its total cost.
type Result[W core.Number] struct {
	Path []core.NodeID
	Cost W
}
