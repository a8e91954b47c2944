// Package parallel hosts opt-in, shared-nothing-by-default concurrent
// variants of select kernels: BFS, Degree, PageRank, APSP, and
// ConnectedComponents.
//
// Every kernel here is built so concurrent workers write into their own
// private slice or local union-find and only combine results after an
// errgroup.Wait() join — the sequential reduction step, not a shared
// mutable accumulator, is what keeps results identical to the
// corresponding sequential kernel up to floating-point summation order.
// The one exception is ConnectedComponents, whose shared
// union-find structure is not safe for lock-free concurrent mutation
// and is instead guarded by a single mutex around each Union call.
package parallel
