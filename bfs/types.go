// Package bfs provides tunable options and result types for breadth-first
// search over a core.Graph.
package bfs

import (
	"context"

	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/scratch"
)

// Option configures BFS behavior via functional arguments.
type Option func(*options)

type options struct {
	ctx            context.Context
	onEnqueue      func(id core.NodeID, depth int)
	onDequeue      func(id core.NodeID, depth int)
	onVisit        func(id core.NodeID, depth int) error
	maxDepth       int
	filterNeighbor func(curr, neighbor core.NodeID) bool
	pool           *scratch.Pool[[]queueItem]
}

func defaultOptions() options {
	return options{
		ctx:            context.Background(),
		onEnqueue:      func(core.NodeID, int) {},
		onDequeue:      func(core.NodeID, int) {},
		onVisit:        func(core.NodeID, int) error { return nil },
		maxDepth:       0,
		filterNeighbor: func(_, _ core.NodeID) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id core.NodeID, depth int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id core.NodeID, depth int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the traversal.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given depth. d == 0 means no
// limit; negative values are clamped to no limit.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d > 0 {
			o.maxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.NodeID) bool) Option {
	return func(o *options) {
		if fn != nil {
			o.filterNeighbor = fn
		}
	}
}

// WithPool supplies a scratch.Pool that BFS's internal work queue is
// acquired from and released back to, instead of allocating a fresh
// backing slice on every call. Passing nil (the default) keeps the
// usual per-call allocation; the pool never changes the returned
// Result, only where its scratch memory comes from.
func WithPool(pool *scratch.Pool[[]queueItem]) Option {
	return func(o *options) { o.pool = pool }
}

// NewQueuePool builds a scratch.Pool suitable for WithPool, sized for a
// graph with the given node count.
func NewQueuePool(capacity int) *scratch.Pool[[]queueItem] {
	return scratch.NewSlicePool[queueItem](capacity)
}

// Result holds the outcome of a BFS traversal.
//
// Each node the traversal visits appears exactly once in Order, with
// Start first when it is live. Nodes cut off by WithMaxDepth or rejected
// by WithFilterNeighbor are not visited, so they are absent from Order
// even when reachable.
type Result struct {
	Order  []core.NodeID
	Depth  *core.NodeMap[int]
	Parent *core.NodeMap[core.NodeID]
}

// PathTo reconstructs the path from the start node to dest, returning
// false if dest was not reached.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, bool) {
	if _, ok := r.Depth.Get(dest); !ok {
		return nil, false
	}
	path := []core.NodeID{dest}
	cur := dest
	for {
		prev, ok := r.Parent.Get(cur)
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
