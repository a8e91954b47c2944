package ioformat

import (
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// jsonDoc is the on-the-wire JSON view of a graph: node payloads in
// minting order and edges as [srcIndex, dstIndex, weight] triples,
// where the indices are positions into Nodes, not NodeIds.
type jsonDoc[A any, W core.Number] struct {
	Directed bool             `json:"directed"`
	Nodes    []A              `json:"nodes"`
	Edges    [][3]interface{} `json:"edges"`
}

// SaveJSON encodes g as {"directed":bool,"nodes":[...],"edges":[[src,
// dst,weight],...]} via goccy/go-json, with edge endpoints recorded as
// array-position indices into "nodes" rather than NodeIds.
func SaveJSON[A any, W core.Number](g *core.Graph[A, W], w io.Writer) *graphina.GraphError {
	const op = "ioformat.SaveJSON"

	nodes := g.Nodes()
	indexOf := make(map[core.NodeID]int, len(nodes))
	doc := jsonDoc[A, W]{
		Directed: g.IsDirected(),
		Nodes:    make([]A, len(nodes)),
	}
	for i, n := range nodes {
		doc.Nodes[i] = n.Payload
		indexOf[n.ID] = i
	}
	for _, e := range g.Edges() {
		srcIdx, ok := indexOf[e.From]
		if !ok {
			continue
		}
		dstIdx, ok := indexOf[e.To]
		if !ok {
			continue
		}
		doc.Edges = append(doc.Edges, [3]interface{}{srcIdx, dstIdx, e.Weight})
	}

	enc := gojson.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return graphina.NewSerializationError(op, err.Error())
	}
	return nil
}

// LoadJSON decodes a document written by SaveJSON, minting a fresh
// NodeID for each entry in "nodes" (in order) and wiring "edges" by
// those positions.
func LoadJSON[A any, W core.Number](r io.Reader) (*core.Graph[A, W], *graphina.GraphError) {
	const op = "ioformat.LoadJSON"

	var doc jsonDoc[A, W]
	if err := gojson.NewDecoder(r).Decode(&doc); err != nil {
		return nil, graphina.NewSerializationError(op, err.Error())
	}

	g := core.NewGraph[A, W](core.WithDirected(doc.Directed), core.WithMultiEdges(), core.WithLoops())
	ids := make([]core.NodeID, len(doc.Nodes))
	for i, payload := range doc.Nodes {
		ids[i] = g.AddNode(payload)
	}

	for _, e := range doc.Edges {
		srcIdx, ok := asIndex(e[0])
		if !ok || srcIdx < 0 || srcIdx >= len(ids) {
			return nil, graphina.NewSerializationError(op, "edge source index out of range")
		}
		dstIdx, ok := asIndex(e[1])
		if !ok || dstIdx < 0 || dstIdx >= len(ids) {
			return nil, graphina.NewSerializationError(op, "edge target index out of range")
		}
		weight, ok := asWeight[W](e[2])
		if !ok {
			return nil, graphina.NewSerializationError(op, "edge weight has unexpected type")
		}
		if _, gerr := g.AddEdge(ids[srcIdx], ids[dstIdx], weight); gerr != nil {
			return nil, gerr
		}
	}

	return g, nil
}

func asIndex(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}

func asWeight[W core.Number](v interface{}) (W, bool) {
	switch n := v.(type) {
	case float64:
		return W(n), true
	case int:
		return W(n), true
	default:
		return 0, false
	}
}
