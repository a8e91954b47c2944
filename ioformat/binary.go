package ioformat

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// binDoc is the opaque on-the-wire shape SaveBinary/LoadBinary agree
// on; its layout is not a public contract, only round-trip fidelity
// is.
type binDoc[A any, W core.Number] struct {
	Directed bool         `msgpack:"directed"`
	Nodes    []A          `msgpack:"nodes"`
	Edges    []binEdge[W] `msgpack:"edges"`
}

type binEdge[W core.Number] struct {
	Src    int `msgpack:"src"`
	Dst    int `msgpack:"dst"`
	Weight W   `msgpack:"weight"`
}

// SaveBinary encodes g into an opaque, self-consistent msgpack
// document; the only contract is that LoadBinary reconstructs an
// equivalent graph, not any particular byte layout.
func SaveBinary[A any, W core.Number](g *core.Graph[A, W], w io.Writer) *graphina.GraphError {
	const op = "ioformat.SaveBinary"

	nodes := g.Nodes()
	indexOf := make(map[core.NodeID]int, len(nodes))
	doc := binDoc[A, W]{
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
		doc.Edges = append(doc.Edges, binEdge[W]{Src: srcIdx, Dst: dstIdx, Weight: e.Weight})
	}

	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return graphina.NewSerializationError(op, err.Error())
	}
	return nil
}

// LoadBinary decodes a document written by SaveBinary, minting a fresh
// NodeID for each node entry and wiring edges by their recorded
// positions.
func LoadBinary[A any, W core.Number](r io.Reader) (*core.Graph[A, W], *graphina.GraphError) {
	const op = "ioformat.LoadBinary"

	var doc binDoc[A, W]
	if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
		return nil, graphina.NewSerializationError(op, err.Error())
	}

	g := core.NewGraph[A, W](core.WithDirected(doc.Directed), core.WithMultiEdges(), core.WithLoops())
	ids := make([]core.NodeID, len(doc.Nodes))
	for i, payload := range doc.Nodes {
		ids[i] = g.AddNode(payload)
	}

	for _, e := range doc.Edges {
		if e.Src < 0 || e.Src >= len(ids) || e.Dst < 0 || e.Dst >= len(ids) {
			return nil, graphina.NewSerializationError(op, "edge references an out-of-range node index")
		}
		if _, gerr := g.AddEdge(ids[e.Src], ids[e.Dst], e.Weight); gerr != nil {
			return nil, gerr
		}
	}

	return g, nil
}
