package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/ioformat"
)

// graph is the concrete instantiation every CLI command operates on: a
// string-labeled, float64-weighted graph, the natural shape for text
// exchange formats where payloads and weights arrive as tokens.
type graph = core.Graph[string, float64]

func ioOptions() []ioformat.Option[string, float64] {
	opts := []ioformat.Option[string, float64]{
		ioformat.WithStrict[string, float64](viper.GetBool("strict")),
		ioformat.WithDirected[string, float64](viper.GetBool("directed")),
		ioformat.WithWeighted[string, float64](viper.GetBool("weighted")),
	}
	if sep := []rune(viper.GetString("separator")); len(sep) > 0 {
		opts = append(opts, ioformat.WithSeparator[string, float64](sep[0]))
	}
	return opts
}

// loadGraphFromFlags opens the file named by --in and parses it per
// --format, using the separator/strict/directed/weighted flags bound
// in root.go.
func loadGraphFromFlags() (*graph, error) {
	path := viper.GetString("in")
	if path == "" {
		return nil, fmt.Errorf("--in is required")
	}
	format := viper.GetString("format")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	log.Debug().Str("path", path).Str("format", format).Msg("loading graph")

	opts := ioOptions()
	var g *graph
	var gerr *graphina.GraphError
	switch format {
	case "edgelist":
		g, gerr = ioformat.LoadEdgeList[string, float64](f, opts...)
	case "adjlist":
		g, gerr = ioformat.LoadAdjList[string, float64](f, opts...)
	case "graphml":
		g, gerr = ioformat.LoadGraphML[string, float64](f, opts...)
	case "json":
		g, gerr = ioformat.LoadJSON[string, float64](f)
	case "binary":
		g, gerr = ioformat.LoadBinary[string, float64](f)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	if gerr != nil {
		return nil, gerr
	}
	log.Info().Int("nodes", g.NodeCount()).Int("edges", g.EdgeCount()).Msg("graph loaded")
	return g, nil
}

// saveGraphTo writes g to path in the named format.
func saveGraphTo(g *graph, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	opts := ioOptions()
	var gerr *graphina.GraphError
	switch format {
	case "edgelist":
		gerr = ioformat.SaveEdgeList[string, float64](g, f, opts...)
	case "adjlist":
		gerr = ioformat.SaveAdjList[string, float64](g, f, opts...)
	case "graphml":
		gerr = ioformat.SaveGraphML[string, float64](g, f, opts...)
	case "json":
		gerr = ioformat.SaveJSON[string, float64](g, f)
	case "binary":
		gerr = ioformat.SaveBinary[string, float64](g, f)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if gerr != nil {
		return gerr
	}
	return nil
}

// nodeByLabel finds the NodeID whose payload equals label.
func nodeByLabel(g *graph, label string) (core.NodeID, bool) {
	for _, n := range g.Nodes() {
		if n.Payload == label {
			return n.ID, true
		}
	}
	return core.NodeID{}, false
}

