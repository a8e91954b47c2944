package scratch

import "sync"

// Pool is a typed, sync.Pool-backed object pool. newFn produces a fresh
// T when the pool is empty; resetFn clears a returned T back to a
// reusable zero state before it is pooled again — callers never see a
// previous acquisition's leftover contents.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(T)
}

// NewPool builds a Pool whose empty slots are filled by newFn and whose
// returned values are cleared by resetFn before reuse. resetFn may be
// nil if T needs no clearing (e.g. a slice sliced back to length 0 by
// the caller before Put).
func NewPool[T any](newFn func() T, resetFn func(T)) *Pool[T] {
	return &Pool[T]{
		pool:  sync.Pool{New: func() any { return newFn() }},
		reset: resetFn,
	}
}

// Get returns a T from the pool, or a freshly constructed one if the
// pool is empty.
func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

// Put returns v to the pool after resetting it.
func (p *Pool[T]) Put(v T) {
	if p.reset != nil {
		p.reset(v)
	}
	p.pool.Put(v)
}

// Handle is a scoped acquisition: Release always returns Value to the
// backing pool, so a deferred Release right after Acquire guarantees
// the buffer comes back even if the caller returns early on an error.
type Handle[T any] struct {
	Value T
	pool  *Pool[T]
}

// Acquire checks out a T for the caller's exclusive use until Release.
func (p *Pool[T]) Acquire() *Handle[T] {
	return &Handle[T]{Value: p.Get(), pool: p}
}

// Release returns the handle's Value to the pool it was acquired from.
// Safe to call at most once per handle; a Handle is not reused after
// release.
func (h *Handle[T]) Release() {
	h.pool.Put(h.Value)
}

// NewSlicePool builds a Pool of zero-length slices with the given
// initial capacity, the shape every frontier-queue/visit-order buffer in
// this module wants. Release does not truncate the slice (the reset
// function only receives a copy of the slice header), so callers set
// Value back to length 0 before Release, as bfs and dijkstra do.
func NewSlicePool[E any](capacity int) *Pool[[]E] {
	return NewPool(
		func() []E { return make([]E, 0, capacity) },
		func(s []E) {},
	)
}

// NewNodeBoolMapPool builds a Pool of map[core.NodeID]bool-shaped
// visited sets, cleared (not reallocated) on release.
func NewNodeBoolMapPool[K comparable](capacity int) *Pool[map[K]bool] {
	return NewPool(
		func() map[K]bool { return make(map[K]bool, capacity) },
		func(m map[K]bool) {
			for k := range m {
				delete(m, k)
			}
		},
	)
}

// NewNodeFloatMapPool builds a Pool of map[K]float64-shaped
// accumulators (sigma/delta buffers), cleared on release.
func NewNodeFloatMapPool[K comparable](capacity int) *Pool[map[K]float64] {
	return NewPool(
		func() map[K]float64 { return make(map[K]float64, capacity) },
		func(m map[K]float64) {
			for k := range m {
				delete(m, k)
			}
		},
	)
}
