// Package ioformat reads and writes core.Graph values in the exchange
// formats external tools expect: a CSV-like edge list, an adjacency list
// (both with a configurable separator, comma by default), GraphML, a
// JSON view, and an opaque binary codec. Every loader/saver pair
// round-trips a graph's payloads and weights. GraphML, JSON and binary
// also record directedness; the edge-list and adjacency-list loaders
// take it from WithDirected instead (undirected by default), and
// SaveAdjList writes no line for a node that has no edges to list.
// NodeIds are not preserved across a round trip since they are minted
// fresh by the Store on load.
package ioformat

import (
	"fmt"

	"github.com/katalvlaran/graphina/core"
)

// Option configures a loader or saver via the teacher's functional-
// options idiom, generalized with node-payload and edge-weight
// parse/format hooks since A is an arbitrary payload type with no
// universal text representation.
type Option[A any, W core.Number] func(*options[A, W])

type options[A any, W core.Number] struct {
	separator    rune
	strict       bool
	directed     bool
	weighted     bool
	parseNode    func(string) (A, error)
	formatNode   func(A) string
	parseWeight  func(string) (W, error)
	formatWeight func(W) string
}

func defaultOptions[A any, W core.Number]() options[A, W] {
	return options[A, W]{
		separator:    ',',
		strict:       false,
		directed:     false,
		weighted:     true,
		parseNode:    defaultParse[A],
		formatNode:   defaultFormat[A],
		parseWeight:  defaultParse[W],
		formatWeight: defaultFormat[W],
	}
}

// WithSeparator sets the field separator a text loader/saver uses
// between tokens on a line. The default is a comma.
func WithSeparator[A any, W core.Number](sep rune) Option[A, W] {
	return func(o *options[A, W]) { o.separator = sep }
}

// WithStrict makes a text loader reject malformed lines with an
// IoError instead of skipping them. The default is lenient.
func WithStrict[A any, W core.Number](strict bool) Option[A, W] {
	return func(o *options[A, W]) { o.strict = strict }
}

// WithDirected sets the directedness of a graph constructed by a
// loader. The default is undirected.
func WithDirected[A any, W core.Number](directed bool) Option[A, W] {
	return func(o *options[A, W]) { o.directed = directed }
}

// WithWeighted controls whether an adjacency-list loader expects a
// weight token after every neighbor. The default is true.
func WithWeighted[A any, W core.Number](weighted bool) Option[A, W] {
	return func(o *options[A, W]) { o.weighted = weighted }
}

// WithNodeCodec supplies custom parse/format functions for the node
// payload type, overriding the fmt.Sscan/fmt.Sprintf default — needed
// whenever A is not one of the basic kinds fmt can scan directly.
func WithNodeCodec[A any, W core.Number](parse func(string) (A, error), format func(A) string) Option[A, W] {
	return func(o *options[A, W]) {
		if parse != nil {
			o.parseNode = parse
		}
		if format != nil {
			o.formatNode = format
		}
	}
}

// WithWeightCodec supplies custom parse/format functions for the edge
// weight type, overriding the fmt.Sscan/fmt.Sprintf default.
func WithWeightCodec[A any, W core.Number](parse func(string) (W, error), format func(W) string) Option[A, W] {
	return func(o *options[A, W]) {
		if parse != nil {
			o.parseWeight = parse
		}
		if format != nil {
			o.formatWeight = format
		}
	}
}

func defaultParse[T any](s string) (T, error) {
	var v T
	if _, err := fmt.Sscan(s, &v); err != nil {
		return v, err
	}
	return v, nil
}

func defaultFormat[T any](v T) string {
	return fmt.Sprintf("%v", v)
}
