package builder

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

// Grid builds a rows x cols orthogonal grid with 4-neighborhood edges
// (right and bottom neighbors per cell), mirrored only on directed
// graphs. Node payloads are assigned in row-major construction order:
// index r*cols+c. Requires rows,cols >= MinGridDim.
func Grid[A any, W core.Number](rows, cols int, gopts []core.GraphOption, opts ...Option[A, W]) (*core.Graph[A, W], *GridResult, *graphina.GraphError) {
	if err := validateMin(methodGrid, rows, MinGridDim); err != nil {
		return nil, nil, err
	}
	if err := validateMin(methodGrid, cols, MinGridDim); err != nil {
		return nil, nil, err
	}

	cfg := newConfig(opts...)
	g := core.NewGraphWithCapacity[A, W](rows*cols, rows*cols*2, gopts...)

	nodes := make([][]core.NodeID, rows)
	for r := 0; r < rows; r++ {
		nodes[r] = make([]core.NodeID, cols)
		for c := 0; c < cols; c++ {
			nodes[r][c] = g.AddNode(cfg.nodeFn(r*cols + c))
		}
	}

	addEdge := func(u, v core.NodeID) *graphina.GraphError {
		w := cfg.weightFn(cfg.rng)
		if _, err := g.AddEdge(u, v, w); err != nil {
			return err
		}
		if g.IsDirected() {
			if _, err := g.AddEdge(v, u, w); err != nil {
				return err
			}
		}
		return nil
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := nodes[r][c]
			if c+1 < cols {
				if err := addEdge(u, nodes[r][c+1]); err != nil {
					return nil, nil, err
				}
			}
			if r+1 < rows {
				if err := addEdge(u, nodes[r+1][c]); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	return g, &GridResult{Nodes: nodes}, nil
}
