// Package floydwarshall computes all-pairs shortest paths densely,
// O(n^3) time and O(n^2) space, backed by a gonum dense matrix. It is
// the engine's dense-graph APSP kernel; johnson is the sparse-graph
// counterpart.
package floydwarshall

import "context"

// Option configures a FloydWarshall run.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext supplies a cancellation context, checked once per
// intermediate-vertex pass (the outer k loop).
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}
