package support

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// EqualWithinEpsilon reports whether a and b differ by no more than eps,
// delegating to gonum/floats for the actual comparison.
func EqualWithinEpsilon(a, b, eps float64) bool {
	return floats.EqualWithinAbs(a, b, eps)
}

// IsFinite reports whether v is neither NaN nor +/-Inf. gonum/floats has
// no NaN/Inf guard of its own; iterative kernels (PageRank, eigenvector,
// Katz) call this after every update to catch divergence before it
// silently propagates through the rest of the iteration.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// L1Delta returns the L1 distance between two equal-length vectors, the
// convergence criterion spec.md §4.3.4 names for PageRank.
func L1Delta(a, b []float64) float64 {
	total := 0.0
	for i := range a {
		total += math.Abs(a[i] - b[i])
	}
	return total
}

// Normalize scales v in place to unit L2 norm, the per-step normalization
// power iteration (eigenvector centrality) requires. A zero vector is
// left unchanged rather than dividing by zero.
func Normalize(v []float64) {
	norm := floats.Norm(v, 2)
	if norm == 0 {
		return
	}
	floats.Scale(1/norm, v)
}
