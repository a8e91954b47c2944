package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// SaveAdjList writes one line per node with live out-edges: "src<sep>
// neighbor1<sep>weight1<sep>neighbor2<sep>weight2…", using each node's
// formatted payload as its identifier. Nodes with no out-edges are
// omitted; loading back an edge list that omitted isolated nodes loses
// them, so isolated nodes should be saved via SaveEdgeList or JSON
// instead when they must round-trip.
func SaveAdjList[A any, W core.Number](g *core.Graph[A, W], w io.Writer, opts ...Option[A, W]) *graphina.GraphError {
	const op = "ioformat.SaveAdjList"
	o := defaultOptions[A, W]()
	for _, opt := range opts {
		opt(&o)
	}

	directed := g.IsDirected()
	bw := bufio.NewWriter(w)
	for _, n := range g.Nodes() {
		neighbors := g.OutNeighbors(n.ID)
		var sb strings.Builder
		wrote := false
		for _, nbr := range neighbors {
			// An undirected edge shows up in both endpoints' adjacency;
			// emit it once, from the lower-id endpoint, so a round trip
			// doesn't double every edge.
			if !directed && nbr.Less(n.ID) {
				continue
			}
			nbrPayload, ok := g.NodePayload(nbr)
			if !ok {
				continue
			}
			if !wrote {
				sb.WriteString(o.formatNode(n.Payload))
				wrote = true
			}
			sb.WriteRune(o.separator)
			sb.WriteString(o.formatNode(nbrPayload))
			if o.weighted {
				eids := g.FindEdges(n.ID, nbr)
				var w W
				if len(eids) > 0 {
					w, _ = g.EdgeWeight(eids[0])
				}
				sb.WriteRune(o.separator)
				sb.WriteString(o.formatWeight(w))
			}
		}
		if !wrote {
			continue
		}
		if _, err := fmt.Fprintln(bw, sb.String()); err != nil {
			return graphina.NewIoError(op, 0, err.Error())
		}
	}
	if err := bw.Flush(); err != nil {
		return graphina.NewIoError(op, 0, err.Error())
	}
	return nil
}

// LoadAdjList reads the adjacency-list text format: a source token
// followed by neighbor tokens, with an interleaved weight token after
// each neighbor when WithWeighted(true) (the default). A trailing,
// unpaired neighbor token defaults to weight 1; WithStrict(true)
// rejects that case instead.
func LoadAdjList[A any, W core.Number](r io.Reader, opts ...Option[A, W]) (*core.Graph[A, W], *graphina.GraphError) {
	const op = "ioformat.LoadAdjList"
	o := defaultOptions[A, W]()
	for _, opt := range opts {
		opt(&o)
	}

	g := core.NewGraph[A, W](core.WithDirected(o.directed), core.WithMultiEdges(), core.WithLoops())
	index := make(map[string]core.NodeID)

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

	sep := string(o.separator)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		tokens := strings.Split(trimmed, sep)
		for i := range tokens {
			tokens[i] = strings.TrimSpace(tokens[i])
		}
		if len(tokens) < 1 {
			continue
		}

		srcID, gerr := nodeFor(tokens[0])
		if gerr != nil {
			if o.strict {
				gerr.Line = lineNo
				return nil, gerr
			}
			continue
		}

		rest := tokens[1:]
		for i := 0; i < len(rest); {
			nbrID, gerr := nodeFor(rest[i])
			if gerr != nil {
				if o.strict {
					gerr.Line = lineNo
					return nil, gerr
				}
				i++
				continue
			}

			weight := W(1)
			if o.weighted {
				if i+1 < len(rest) {
					w, err := o.parseWeight(rest[i+1])
					if err != nil {
						if o.strict {
							return nil, graphina.NewIoError(op, lineNo, fmt.Sprintf("invalid weight %q: %v", rest[i+1], err))
						}
					} else {
						weight = w
					}
					i += 2
				} else {
					if o.strict {
						return nil, graphina.NewIoError(op, lineNo, "trailing neighbor has no weight token")
					}
					i++
				}
			} else {
				i++
			}

			if _, gerr := g.AddEdge(srcID, nbrID, weight); gerr != nil {
				if o.strict {
					return nil, gerr
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, graphina.NewIoError(op, lineNo, err.Error())
	}
	return g, nil
}
