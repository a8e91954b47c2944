// Package scratch provides a scoped, reusable buffer pool for hot-path
// kernels that otherwise allocate a fresh visited-set, distance map, or
// frontier queue on every call: bfs, dijkstra, and the centrality
// kernels. It generalizes the teacher's comfort with shared, mutex-
// guarded state in core.Graph (its sync.RWMutex fields) to the
// allocation-reuse axis via the standard library's sync.Pool — no pack
// dependency offers a typed scoped-object-pool abstraction, and
// wrapping sync.Pool in one would add ceremony without adding
// behavior.
//
// Acquiring a buffer returns a handle whose Release always returns the
// backing slice/map to the pool, including on every error exit path; a
// kernel that opts into WithPool never observes different results than
// the same call without it, only fewer allocations.
package scratch
