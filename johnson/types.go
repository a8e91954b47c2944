// Package johnson computes all-pairs shortest paths on graphs that may
// carry negative edges but no negative cycle, by reweighting with
// Bellman-Ford potentials and then running Dijkstra from every node.
// It is the sparse-graph counterpart to floydwarshall.
package johnson

import "context"

// Option configures a Johnson run.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext supplies a cancellation context, checked once per
// per-source Dijkstra pass.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}
