package ioformat

import (
	"encoding/xml"
	"io"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// graphmlDoc mirrors the subset of the GraphML schema this package
// reads and writes: a single graph element carrying edgedefault plus
// node/edge elements with a single "payload" (or "weight") data key.
type graphmlDoc struct {
	XMLName xml.Name     `xml:"graphml"`
	Keys    []graphmlKey `xml:"key"`
	Graph   graphmlGraph `xml:"graph"`
}

type graphmlKey struct {
	ID     string `xml:"id,attr"`
	For    string `xml:"for,attr"`
	Name   string `xml:"attr.name,attr"`
	Domain string `xml:"attr.type,attr"`
}

type graphmlGraph struct {
	EdgeDefault string        `xml:"edgedefault,attr"`
	Nodes       []graphmlNode `xml:"node"`
	Edges       []graphmlEdge `xml:"edge"`
}

type graphmlNode struct {
	ID   string          `xml:"id,attr"`
	Data []graphmlDataKV `xml:"data"`
}

type graphmlEdge struct {
	Source string          `xml:"source,attr"`
	Target string          `xml:"target,attr"`
	Data   []graphmlDataKV `xml:"data"`
}

type graphmlDataKV struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

const (
	graphmlKeyPayload = "payload"
	graphmlKeyWeight  = "weight"
)

// SaveGraphML writes g as a GraphML document: one node element per live
// node carrying its formatted payload in a "payload" data element, one
// edge element per live edge carrying its formatted weight in a
// "weight" data element. Node identifiers in the document are the
// node's own formatted payload text, so distinct nodes must format to
// distinct strings for the document to round-trip without collisions.
func SaveGraphML[A any, W core.Number](g *core.Graph[A, W], w io.Writer, opts ...Option[A, W]) *graphina.GraphError {
	const op = "ioformat.SaveGraphML"
	o := defaultOptions[A, W]()
	for _, opt := range opts {
		opt(&o)
	}

	edgeDefault := "undirected"
	if g.IsDirected() {
		edgeDefault = "directed"
	}

	doc := graphmlDoc{
		Keys: []graphmlKey{
			{ID: graphmlKeyPayload, For: "node", Name: "payload", Domain: "string"},
			{ID: graphmlKeyWeight, For: "edge", Name: "weight", Domain: "string"},
		},
		Graph: graphmlGraph{EdgeDefault: edgeDefault},
	}

	for _, n := range g.Nodes() {
		text := o.formatNode(n.Payload)
		doc.Graph.Nodes = append(doc.Graph.Nodes, graphmlNode{
			ID:   text,
			Data: []graphmlDataKV{{Key: graphmlKeyPayload, Value: text}},
		})
	}
	for _, e := range g.Edges() {
		srcPayload, ok := g.NodePayload(e.From)
		if !ok {
			continue
		}
		dstPayload, ok := g.NodePayload(e.To)
		if !ok {
			continue
		}
		doc.Graph.Edges = append(doc.Graph.Edges, graphmlEdge{
			Source: o.formatNode(srcPayload),
			Target: o.formatNode(dstPayload),
			Data:   []graphmlDataKV{{Key: graphmlKeyWeight, Value: o.formatWeight(e.Weight)}},
		})
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return graphina.NewSerializationError(op, err.Error())
	}
	return nil
}

// LoadGraphML parses a GraphML document written by SaveGraphML (or
// conforming to the same node/edge "payload"/"weight" data-key
// convention), reconstructing directedness from edgedefault.
func LoadGraphML[A any, W core.Number](r io.Reader, opts ...Option[A, W]) (*core.Graph[A, W], *graphina.GraphError) {
	const op = "ioformat.LoadGraphML"
	o := defaultOptions[A, W]()
	for _, opt := range opts {
		opt(&o)
	}

	var doc graphmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, graphina.NewSerializationError(op, err.Error())
	}

	directed := doc.Graph.EdgeDefault == "directed"
	g := core.NewGraph[A, W](core.WithDirected(directed), core.WithMultiEdges(), core.WithLoops())
	index := make(map[string]core.NodeID, len(doc.Graph.Nodes))

	for _, n := range doc.Graph.Nodes {
		text := dataValue(n.Data, graphmlKeyPayload)
		payload, err := o.parseNode(text)
		if err != nil {
			if o.strict {
				return nil, graphina.NewSerializationError(op, "invalid node payload "+text)
			}
			continue
		}
		id := g.AddNode(payload)
		index[n.ID] = id
	}

	for _, e := range doc.Graph.Edges {
		srcID, ok := index[e.Source]
		if !ok {
			if o.strict {
				return nil, graphina.NewSerializationError(op, "edge references unknown source "+e.Source)
			}
			continue
		}
		dstID, ok := index[e.Target]
		if !ok {
			if o.strict {
				return nil, graphina.NewSerializationError(op, "edge references unknown target "+e.Target)
			}
			continue
		}
		weight := W(1)
		if text := dataValue(e.Data, graphmlKeyWeight); text != "" {
			w, err := o.parseWeight(text)
			if err != nil {
				if o.strict {
					return nil, graphina.NewSerializationError(op, "invalid edge weight "+text)
				}
			} else {
				weight = w
			}
		}
		if _, gerr := g.AddEdge(srcID, dstID, weight); gerr != nil {
			if o.strict {
				return nil, gerr
			}
		}
	}

	return g, nil
}

func dataValue(data []graphmlDataKV, key string) string {
	for _, d := range data {
		if d.Key == key {
			return d.Value
		}
	}
	return ""
}
