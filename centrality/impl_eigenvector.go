package centrality

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/support"
)

// EigenvectorOption configures an Eigenvector run.
type EigenvectorOption func(*eigenvectorOptions)

type eigenvectorOptions struct {
	tolerance float64
	maxIter   int
}

func defaultEigenvectorOptions() eigenvectorOptions {
	return eigenvectorOptions{tolerance: 1e-6, maxIter: 100}
}

// WithEigenvectorTolerance sets the L1 convergence tolerance (default 1e-6).
func WithEigenvectorTolerance(tol float64) EigenvectorOption {
	return func(o *eigenvectorOptions) { o.tolerance = tol }
}

// WithEigenvectorMaxIter caps the number of power-iteration steps (default 100).
func WithEigenvectorMaxIter(maxIter int) EigenvectorOption {
	return func(o *eigenvectorOptions) { o.maxIter = maxIter }
}

// Eigenvector computes eigenvector centrality via power iteration on the
// weighted adjacency matrix shifted by the identity:
// x_{k+1} = normalize((A+I)*x_k). The shift leaves the eigenvectors
// unchanged and keeps the iteration from oscillating on bipartite graphs
// such as a star. The dominant eigenvector's direction stabilizes once the per-step L1 change drops
// below tolerance; graphina.KindConvergenceFailed is returned otherwise.
func Eigenvector[A any, W core.Number](g *core.Graph[A, W], opts ...EigenvectorOption) (*core.NodeMap[float64], *graphina.GraphError) {
	const op = "centrality.Eigenvector"
	o := defaultEigenvectorOptions()
	for _, opt := range opts {
		opt(&o)
	}

	idx := support.NewIndexMap(g.NodeIDs())
	n := idx.Len()
	result := core.NewNodeMap[float64](n)
	if n == 0 {
		return result, nil
	}

	adj := buildAdjacency(g, idx)

	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / float64(n)
	}

	var converged bool
	var iter int
	for iter = 0; iter < o.maxIter; iter++ {
		next := matVec(adj, x)
		for i := range next {
			next[i] += x[i]
		}
		support.Normalize(next)

		for _, v := range next {
			if !support.IsFinite(v) {
				return nil, graphina.NewConvergenceFailed(op, iter+1, "eigenvector centrality diverged to a non-finite value")
			}
		}

		if support.L1Delta(x, next) < o.tolerance {
			x = next
			converged = true
			iter++
			break
		}
		x = next
	}

	if !converged {
		return nil, graphina.NewConvergenceFailed(op, iter, "eigenvector centrality did not converge within max_iter")
	}

	for i := 0; i < n; i++ {
		result.Set(idx.NodeAt(i), x[i])
	}
	return result, nil
}
