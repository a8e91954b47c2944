// Package core defines the Graph store: opaque node/edge identities, the
// generic Graph[A, W] multigraph container, and the thread-safe
// primitives for building, querying, and cloning it.
//
// Graph uses separate sync.RWMutex locks internally (muVert for
// vertices, muEdgeAdj for edges and adjacency) so callers can safely
// read a Graph from multiple goroutines concurrently; concurrent
// mutation across goroutines is serialized by the same locks but is not
// something algorithms in this module rely on — a Graph being mutated
// while an algorithm runs over it is undefined per the package's
// concurrency contract.
//
// NodeID and EdgeID are opaque, Store-minted handles backed by a
// monotonically increasing counter. They are never reassigned after a
// delete and are never safe to use as a slice index — any algorithm
// that needs a dense {0,...,n-1} range builds one explicitly (see
// support.IndexMap) rather than reaching into a NodeID's internals.
package core

import (
	"fmt"
	"sync"
)

// Number is the constraint satisfied by edge weight types: anything
// ordered and arithmetic. Traversal/centrality kernels narrow this
// further per algorithm (e.g. Dijkstra additionally requires
// non-negative values at run time, not at the type level).
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NodeID is an opaque, totally ordered, comparable handle to a vertex.
// The zero value is never minted by AddNode; it exists only as an
// explicit "no node" sentinel for algorithms that need one (e.g. "no
// predecessor yet").
type NodeID struct{ id uint64 }

// String renders the identity for error messages and debug output. It
// carries no meaning beyond uniqueness — do not parse it.
func (n NodeID) String() string { return fmt.Sprintf("N%d", n.id) }

// IsZero reports whether n is the sentinel zero value (never a live node).
func (n NodeID) IsZero() bool { return n.id == 0 }

// Less gives NodeID a total order by minting sequence. It is exposed so
// algorithms that want deterministic tie-breaking (e.g. label
// propagation's "smallest label id" rule) have a stable comparison
// without depending on String() formatting.
func (n NodeID) Less(o NodeID) bool { return n.id < o.id }

// EdgeID is an opaque, totally ordered, comparable handle to an edge,
// with the same stability contract as NodeID.
type EdgeID struct{ id uint64 }

// String renders the identity for error messages and debug output.
func (e EdgeID) String() string { return fmt.Sprintf("E%d", e.id) }

// IsZero reports whether e is the sentinel zero value (never a live edge).
func (e EdgeID) IsZero() bool { return e.id == 0 }

// Less gives EdgeID a total order by minting sequence.
func (e EdgeID) Less(o EdgeID) bool { return e.id < o.id }

// edge is the internal storage record for an edge. The exported view is
// Edge[W] (see view.go); callers never get a pointer into this struct.
type edge[W Number] struct {
	id       EdgeID
	from, to NodeID
	weight   W
}

// graphConfig holds construction-time policy flags, resolved once by
// NewGraph from a slice of GraphOption before any node/edge is added.
// It intentionally carries no type parameters: since it's plain data,
// keeping it non-generic lets GraphOption stay a simple function type
// instead of GraphOption[A, W], which would force every call site to
// spell out both type arguments for every option.
type graphConfig struct {
	directed   bool
	allowMulti bool
	allowLoops bool
}

// GraphOption configures a Graph's construction-time policy.
type GraphOption func(*graphConfig)

// WithDirected sets whether new edges are directed by default.
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// WithMultiEdges permits parallel edges between the same ordered pair of
// endpoints. Disabled by default.
func WithMultiEdges() GraphOption {
	return func(c *graphConfig) { c.allowMulti = true }
}

// WithLoops permits self-loop edges. Disabled by default.
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// Graph is the core in-memory multigraph store. It is parameterized by
// node payload type A and edge weight type W.
//
// muVert protects vertices and nextNodeID; muEdgeAdj protects edges,
// adjacency, and nextEdgeID. Lock order is always muVert -> muEdgeAdj
// when both are needed, to avoid inversion.
type Graph[A any, W Number] struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	cfg graphConfig

	nextNodeID uint64
	nextEdgeID uint64

	payloads map[NodeID]A
	edges    map[EdgeID]edge[W]

	// adjacency[from][to][edgeID] = struct{}{}; undirected edges are
	// mirrored into adjacency[to][from] as well (skipped for loops).
	adjacency map[NodeID]map[NodeID]map[EdgeID]struct{}
}

// NewGraph creates an empty Graph with the given construction policy.
// By default a Graph is undirected, forbids parallel edges, and
// forbids self-loops.
// Complexity: O(1).
func NewGraph[A any, W Number](opts ...GraphOption) *Graph[A, W] {
	g := &Graph[A, W]{
		payloads:  make(map[NodeID]A),
		edges:     make(map[EdgeID]edge[W]),
		adjacency: make(map[NodeID]map[NodeID]map[EdgeID]struct{}),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}
	return g
}

// NewGraphWithCapacity is NewGraph plus a size hint for the node and
// edge maps, matching spec's with_capacity(n_nodes, n_edges) lifecycle
// entry point.
func NewGraphWithCapacity[A any, W Number](nNodes, nEdges int, opts ...GraphOption) *Graph[A, W] {
	g := &Graph[A, W]{
		payloads:  make(map[NodeID]A, nNodes),
		edges:     make(map[EdgeID]edge[W], nEdges),
		adjacency: make(map[NodeID]map[NodeID]map[EdgeID]struct{}, nNodes),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}
	return g
}

// IsDirected reports whether new edges default to directed.
func (g *Graph[A, W]) IsDirected() bool { return g.cfg.directed }

// AllowsMultiEdges reports whether parallel edges are permitted.
func (g *Graph[A, W]) AllowsMultiEdges() bool { return g.cfg.allowMulti }

// AllowsLoops reports whether self-loops are permitted.
func (g *Graph[A, W]) AllowsLoops() bool { return g.cfg.allowLoops }
