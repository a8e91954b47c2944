package centrality

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/support"
)

// KatzOption configures a Katz run.
type KatzOption func(*katzOptions)

type katzOptions struct {
	alpha     float64
	beta      float64
	tolerance float64
	maxIter   int
}

func defaultKatzOptions() katzOptions {
	return katzOptions{alpha: 0.1, beta: 1.0, tolerance: 1e-6, maxIter: 1000}
}

// WithAlpha sets the attenuation factor alpha (default 0.1). alpha must
// stay below 1/(largest eigenvalue of A) for the iteration to converge;
// kernels here surface that as KindConvergenceFailed rather than
// pre-computing the spectral radius.
func WithAlpha(alpha float64) KatzOption {
	return func(o *katzOptions) { o.alpha = alpha }
}

// WithBeta sets the constant exogenous term beta (default 1.0).
func WithBeta(beta float64) KatzOption {
	return func(o *katzOptions) { o.beta = beta }
}

// WithKatzTolerance sets the L1 convergence tolerance (default 1e-6).
func WithKatzTolerance(tol float64) KatzOption {
	return func(o *katzOptions) { o.tolerance = tol }
}

// WithKatzMaxIter caps the number of propagation steps (default 1000).
func WithKatzMaxIter(maxIter int) KatzOption {
	return func(o *katzOptions) { o.maxIter = maxIter }
}

// Katz computes Katz centrality by iteratively propagating
// x_{k+1} = alpha*A^T*x_k + beta*1 until the L1 change drops below
// tolerance. A^T is used rather than A so that a node's score accrues
// from the nodes pointing to it, matching the standard Katz definition
// on directed graphs (A^T collapses to A on undirected graphs since
// buildAdjacency already populates both triangles there).
func Katz[A any, W core.Number](g *core.Graph[A, W], opts ...KatzOption) (*core.NodeMap[float64], *graphina.GraphError) {
	const op = "centrality.Katz"
	o := defaultKatzOptions()
	for _, opt := range opts {
		opt(&o)
	}

	idx := support.NewIndexMap(g.NodeIDs())
	n := idx.Len()
	result := core.NewNodeMap[float64](n)
	if n == 0 {
		return result, nil
	}

	adjT := transpose(buildAdjacency(g, idx))

	x := make([]float64, n)

	var converged bool
	var iter int
	for iter = 0; iter < o.maxIter; iter++ {
		next := matVec(adjT, x)
		for i := range next {
			next[i] = o.alpha*next[i] + o.beta
		}

		for _, v := range next {
			if !support.IsFinite(v) {
				return nil, graphina.NewConvergenceFailed(op, iter+1, "katz centrality diverged to a non-finite value")
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
		return nil, graphina.NewConvergenceFailed(op, iter, "katz centrality did not converge within max_iter")
	}

	for i := 0; i < n; i++ {
		result.Set(idx.NodeAt(i), x[i])
	}
	return result, nil
}
