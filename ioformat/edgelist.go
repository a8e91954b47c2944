package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// SaveEdgeList writes one line per edge, "src<sep>dst<sep>weight",
// using each node's first-seen text form as its identifier.
func SaveEdgeList[A any, W core.Number](g *core.Graph[A, W], w io.Writer, opts ...Option[A, W]) *graphina.GraphError {
	const op = "ioformat.SaveEdgeList"
	o := defaultOptions[A, W]()
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		srcPayload, ok := g.NodePayload(e.From)
		if !ok {
			continue
		}
		dstPayload, ok := g.NodePayload(e.To)
		if !ok {
			continue
		}
		_, err := fmt.Fprintf(bw, "%s%c%s%c%s\n",
			o.formatNode(srcPayload), o.separator,
			o.formatNode(dstPayload), o.separator,
			o.formatWeight(e.Weight))
		if err != nil {
			return graphina.NewIoError(op, 0, err.Error())
		}
	}
	if err := bw.Flush(); err != nil {
		return graphina.NewIoError(op, 0, err.Error())
	}
	return nil
}

// LoadEdgeList reads a CSV-like edge list: one record per line,
// "src<sep>dst" (weight defaults to 1) or "src<sep>dst<sep>weight".
// Lines that are empty or begin with '#' after leading whitespace are
// ignored. Each distinct token seen in the src/dst position mints
// exactly one node, in order of first appearance.
//
// With WithStrict(true), a malformed line fails the whole load with an
// IoError naming the offending line; the default lenient mode skips it.
func LoadEdgeList[A any, W core.Number](r io.Reader, opts ...Option[A, W]) (*core.Graph[A, W], *graphina.GraphError) {
	const op = "ioformat.LoadEdgeList"
	o := defaultOptions[A, W]()
	for _, opt := range opts {
		opt(&o)
	}

	g := core.NewGraph[A, W](core.WithDirected(o.directed), core.WithMultiEdges(), core.WithLoops())
	index := make(map[string]core.NodeID)
	sep := string(o.separator)

	nodeFor := func(tok string) (core.NodeID, *graphina.GraphError) {
		if id, ok := index[tok]; ok {
			return id, nil
		}
		payload, err := o.parseNode(tok)
		if err != nil {
			return core.NodeID{}, graphina.NewIoError(op, 0, fmt.Sprintf("invalid node token %q: %v", tok, err))
		}
		id := g.AddNode(payload)
		index[tok] = id
		return id, nil
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		fields := strings.Split(trimmed, sep)
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if len(fields) != 2 && len(fields) != 3 {
			if o.strict {
				return nil, graphina.NewIoError(op, lineNo, "expected 2 or 3 fields")
			}
			continue
		}

		srcID, gerr := nodeFor(fields[0])
		if gerr != nil {
			if o.strict {
				gerr.Line = lineNo
				return nil, gerr
			}
			continue
		}
		dstID, gerr := nodeFor(fields[1])
		if gerr != nil {
			if o.strict {
				gerr.Line = lineNo
				return nil, gerr
			}
			continue
		}

		weight := W(1)
		if len(fields) == 3 {
			w, err := o.parseWeight(fields[2])
			if err != nil {
				if o.strict {
					return nil, graphina.NewIoError(op, lineNo, fmt.Sprintf("invalid weight %q: %v", fields[2], err))
				}
				continue
			}
			weight = w
		}

		if _, gerr := g.AddEdge(srcID, dstID, weight); gerr != nil {
			if o.strict {
				return nil, gerr
			}
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, graphina.NewIoError(op, lineNo, err.Error())
	}
	return g, nil
}
