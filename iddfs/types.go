// Package iddfs implements iterative-deepening depth-first search and
// bidirectional breadth-first search on core.Graph, for shortest
// unweighted paths where Dijkstra's weighted machinery is unnecessary
// overhead.
package iddfs

import (
	"context"

	"github.com/katalvlaran/graphina/core"
)

// Option configures an IDDFS or BidirectionalSearch run.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext supplies a cancellation context, checked once per
// depth-limit iteration (IDDFS) or once per frontier expansion
// (BidirectionalSearch).
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}
