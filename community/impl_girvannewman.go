package community

import (
	"github.com/katalvlaran/graphina/centrality"
	"github.com/katalvlaran/graphina/core"
)

// Split records one edge removal and the partition that resulted from
// it, forming a dendrogram of successive community splits.
type Split struct {
	RemovedEdge core.EdgeID
	Partition   *Partition
}

// GirvanNewman iteratively removes the edge of highest edge-betweenness
// from a working copy of g, recomputing betweenness after each
// removal, until the component count reaches targetComponents or no
// edges remain. It returns the full dendrogram of splits in removal
// order; the last entry's Partition is the final result.
func GirvanNewman[A any, W core.Number](g *core.Graph[A, W], targetComponents int) []Split {
	working := g.Clone()
	var splits []Split

	current := ConnectedComponents(working)
	if current.Count >= targetComponents {
		return splits
	}

	for {
		edges := working.Edges()
		if len(edges) == 0 {
			break
		}

		res, err := centrality.Betweenness(working)
		if err != nil {
			break
		}

		var worst core.EdgeID
		bestScore := -1.0
		found := false
		for _, e := range edges {
			score := res.Edge[e.ID]
			if score > bestScore {
				bestScore, worst, found = score, e.ID, true
			}
		}
		if !found {
			break
		}

		_, _, _ = working.RemoveEdge(worst)
		current = ConnectedComponents(working)
		splits = append(splits, Split{RemovedEdge: worst, Partition: current})

		if current.Count >= targetComponents {
			break
		}
	}

	return splits
}
