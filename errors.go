package graphina

import "fmt"

// Kind classifies a GraphError. It is the single taxonomy used across
// every package in this module; algorithms never invent ad hoc error
// types of their own, only *GraphError values carrying one of these
// kinds plus whatever structured context the call site has.
type Kind int

const (
	// KindNodeNotFound: a named NodeID is not live.
	KindNodeNotFound Kind = iota
	// KindEdgeNotFound: a named EdgeID is not live.
	KindEdgeNotFound
	// KindEndpointMissing: AddEdge referenced a non-live endpoint.
	KindEndpointMissing
	// KindNoPath: source and target are not connected under the asked relation.
	KindNoPath
	// KindNegativeWeight: an algorithm that forbids negative weights found one.
	KindNegativeWeight
	// KindNegativeCycle: a negative cycle is reachable from the source.
	KindNegativeCycle
	// KindInvalidGraph: a structural precondition failed (non-empty,
	// connected, DAG, bipartite, non-negative-weights, no-self-loops).
	KindInvalidGraph
	// KindConvergenceFailed: an iterative kernel exhausted MaxIter without
	// meeting its tolerance.
	KindConvergenceFailed
	// KindInvalidArgument: an out-of-range parameter was supplied.
	KindInvalidArgument
	// KindIoError: a parse or I/O failure in a loader.
	KindIoError
	// KindSerializationError: a codec failure in a saver/loader.
	KindSerializationError
)

// String renders a Kind as a lower_snake_case tag, used in error messages
// and safe to compare against in tests that don't want to import Kind
// constants.
func (k Kind) String() string {
	switch k {
	case KindNodeNotFound:
		return "node_not_found"
	case KindEdgeNotFound:
		return "edge_not_found"
	case KindEndpointMissing:
		return "endpoint_missing"
	case KindNoPath:
		return "no_path"
	case KindNegativeWeight:
		return "negative_weight"
	case KindNegativeCycle:
		return "negative_cycle"
	case KindInvalidGraph:
		return "invalid_graph"
	case KindConvergenceFailed:
		return "convergence_failed"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindIoError:
		return "io_error"
	case KindSerializationError:
		return "serialization_error"
	default:
		return "unknown"
	}
}

// GraphError is the single error type surfaced at every boundary in this
// module. Panics are never a supported way to signal boundary failure;
// every fallible operation returns a *GraphError (or nil).
//
// GraphError is clone-safe: a zero-value-initialized copy made by the
// caller (e.g. for a retry/report flow) remains a well-formed error.
type GraphError struct {
	Kind Kind

	// Op names the algorithm or operation that raised the error, e.g.
	// "Dijkstra" or "core.AddEdge".
	Op string

	// Message is a short human-readable description naming the offending
	// entity, e.g. "edge (NodeID(3) → NodeID(7)) has weight -1.5".
	Message string

	// Iterations is populated for KindConvergenceFailed.
	Iterations int

	// Line is populated for KindIoError when the failure can be
	// attributed to a specific input line (1-based); 0 means unknown.
	Line int

	// Name/Reason are populated for KindInvalidArgument.
	Name   string
	Reason string

	cause error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Reason
	}
	if e.Op == "" {
		return fmt.Sprintf("graphina: %s: %s", e.Kind, msg)
	}
	return fmt.Sprintf("graphina: %s: %s: %s", e.Op, e.Kind, msg)
}

// Unwrap exposes any wrapped cause so callers can still use errors.As on
// lower-level causes (e.g. an underlying io.Reader error folded in by a
// loader).
func (e *GraphError) Unwrap() error { return e.cause }

// Is makes errors.Is(err, graphina.ErrNodeNotFound) (and the other
// package-level sentinels below) match any GraphError of the same Kind,
// regardless of Op/Message/context — the sentinels carry no context of
// their own, only a Kind to compare against.
func (e *GraphError) Is(target error) bool {
	t, ok := target.(*GraphError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// newError builds a contextual GraphError for the named operation.
func newError(kind Kind, op, format string, args ...interface{}) *GraphError {
	return &GraphError{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Wrap folds a lower-level error into a GraphError of the given kind,
// preserving it for errors.As/errors.Unwrap while attaching operation
// context the way the rest of the taxonomy does.
func Wrap(kind Kind, op string, cause error) *GraphError {
	return &GraphError{Kind: kind, Op: op, Message: cause.Error(), cause: cause}
}

// NewNodeNotFound reports that NodeID id is not live in the graph
// consulted by operation op.
func NewNodeNotFound(op string, id fmt.Stringer) *GraphError {
	return newError(KindNodeNotFound, op, "node %s not found", id)
}

// NewEdgeNotFound reports that EdgeID id is not live in the graph
// consulted by operation op.
func NewEdgeNotFound(op string, id fmt.Stringer) *GraphError {
	return newError(KindEdgeNotFound, op, "edge %s not found", id)
}

// NewEndpointMissing reports that AddEdge referenced a non-live endpoint.
func NewEndpointMissing(op string, id fmt.Stringer) *GraphError {
	return newError(KindEndpointMissing, op, "endpoint %s is not a live node", id)
}

// NewNoPath reports that no path exists between source and target under
// the relation operation op computes.
func NewNoPath(op string, source, target fmt.Stringer) *GraphError {
	return newError(KindNoPath, op, "no path from %s to %s", source, target)
}

// NewNegativeWeight reports a negative edge weight found by an algorithm
// that forbids them.
func NewNegativeWeight(op string, from, to fmt.Stringer, weight interface{}) *GraphError {
	return newError(KindNegativeWeight, op, "edge (%s → %s) has weight %v", from, to, weight)
}

// NewNegativeCycle reports a negative cycle reachable from source.
func NewNegativeCycle(op string, source fmt.Stringer) *GraphError {
	return newError(KindNegativeCycle, op, "negative cycle reachable from %s", source)
}

// NewInvalidGraph reports a failed structural precondition.
func NewInvalidGraph(op, reason string) *GraphError {
	return newError(KindInvalidGraph, op, "%s", reason)
}

// NewConvergenceFailed reports that an iterative kernel exhausted
// maxIter iterations without meeting its tolerance.
func NewConvergenceFailed(op string, iterations int, message string) *GraphError {
	e := newError(KindConvergenceFailed, op, "%s", message)
	e.Iterations = iterations
	return e
}

// NewInvalidArgument reports an out-of-range parameter.
func NewInvalidArgument(op, name, reason string) *GraphError {
	e := newError(KindInvalidArgument, op, "%s: %s", name, reason)
	e.Name, e.Reason = name, reason
	return e
}

// NewIoError reports a parse/I/O failure, optionally attributing it to a
// 1-based input line (0 if not applicable).
func NewIoError(op string, line int, reason string) *GraphError {
	e := newError(KindIoError, op, "%s", reason)
	e.Line = line
	return e
}

// NewSerializationError reports a codec failure.
func NewSerializationError(op, reason string) *GraphError {
	return newError(KindSerializationError, op, "%s", reason)
}

// Package-level sentinels: compare with errors.Is, not ==, since
// contextual errors built by the New* constructors above carry the same
// Kind but different Op/Message.
var (
	ErrNodeNotFound        = &GraphError{Kind: KindNodeNotFound}
	ErrEdgeNotFound        = &GraphError{Kind: KindEdgeNotFound}
	ErrEndpointMissing     = &GraphError{Kind: KindEndpointMissing}
	ErrNoPath              = &GraphError{Kind: KindNoPath}
	ErrNegativeWeight      = &GraphError{Kind: KindNegativeWeight}
	ErrNegativeCycle       = &GraphError{Kind: KindNegativeCycle}
	ErrInvalidGraph        = &GraphError{Kind: KindInvalidGraph}
	ErrConvergenceFailed   = &GraphError{Kind: KindConvergenceFailed}
	ErrInvalidArgument     = &GraphError{Kind: KindInvalidArgument}
	ErrIoError             = &GraphError{Kind: KindIoError}
	ErrSerializationError  = &GraphError{Kind: KindSerializationError}
)
