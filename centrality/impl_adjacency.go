package centrality

import (
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/support"
)

// buildAdjacency builds a dense n*n weighted adjacency matrix over the
// compact indices of idx, accumulating parallel-edge weights (adj[i][j]
// += w) rather than overwriting them. Undirected edges populate both
// (i,j) and (j,i); directed edges populate only (from,to). Self-loops
// are skipped — they contribute no eigenvector/Katz structure.
func buildAdjacency[A any, W core.Number](g *core.Graph[A, W], idx *support.IndexMap) [][]float64 {
	n := idx.Len()
	adj := make([][]float64, n)
	for i := range adj {
		adj[i] = make([]float64, n)
	}

	for _, e := range g.Edges() {
		i, iok := idx.IndexOf(e.From)
		j, jok := idx.IndexOf(e.To)
		if !iok || !jok || i == j {
			continue
		}
		w := float64(e.Weight)
		adj[i][j] += w
		if !g.IsDirected() {
			adj[j][i] += w
		}
	}

	return adj
}

// transpose returns a newly allocated transpose of a square matrix m.
func transpose(m [][]float64) [][]float64 {
	n := len(m)
	t := make([][]float64, n)
	for i := range t {
		t[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// matVec multiplies m (n*n) by vector v (length n).
func matVec(m [][]float64, v []float64) []float64 {
	out := make([]float64, len(m))
	for i, row := range m {
		sum := 0.0
		for j, a := range row {
			sum += a * v[j]
		}
		out[i] = sum
	}
	return out
}
