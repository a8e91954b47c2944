package centrality

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/support"
)

// PageRankOption configures a PageRank run.
type PageRankOption func(*pageRankOptions)

type pageRankOptions struct {
	damping   float64
	tolerance float64
	maxIter   int
}

func defaultPageRankOptions() pageRankOptions {
	return pageRankOptions{damping: 0.85, tolerance: 1e-6, maxIter: 100}
}

// WithDamping sets the damping factor d (default 0.85).
func WithDamping(d float64) PageRankOption {
	return func(o *pageRankOptions) { o.damping = d }
}

// WithTolerance sets the L1 convergence tolerance (default 1e-6).
func WithTolerance(tol float64) PageRankOption {
	return func(o *pageRankOptions) { o.tolerance = tol }
}

// WithMaxIter caps the number of power-iteration steps (default 100).
func WithMaxIter(maxIter int) PageRankOption {
	return func(o *pageRankOptions) { o.maxIter = maxIter }
}

// outArc is one scatter target: destination compact index and the
// weight of the arc carrying rank mass to it.
type outArc struct {
	j int
	w float64
}

// PageRank computes PageRank scores via push-style power iteration:
// out_edges[i] is precomputed once, then each iteration scatters
// d*w*r[i]/outWeight[i] from every source onto its out-neighbors. This
// keeps each iteration O(m) rather than O(n*m) — the per-destination
// gather that an edge scan per node would cost.
//
// Dangling nodes (zero out-weight) redistribute their whole mass
// uniformly across all nodes, folded into the base term added before
// scattering begins.
func PageRank[A any, W core.Number](g *core.Graph[A, W], opts ...PageRankOption) (*core.NodeMap[float64], *graphina.GraphError) {
	const op = "centrality.PageRank"
	o := defaultPageRankOptions()
	for _, opt := range opts {
		opt(&o)
	}

	idx := support.NewIndexMap(g.NodeIDs())
	n := idx.Len()
	result := core.NewNodeMap[float64](n)
	if n == 0 {
		return result, nil
	}

	outArcs := make([][]outArc, n)
	outWeight := make([]float64, n)
	for _, e := range g.Edges() {
		i, iok := idx.IndexOf(e.From)
		j, jok := idx.IndexOf(e.To)
		if !iok || !jok || i == j {
			continue
		}
		w := float64(e.Weight)
		if w <= 0 {
			w = 1
		}
		outArcs[i] = append(outArcs[i], outArc{j: j, w: w})
		outWeight[i] += w
		if !g.IsDirected() {
			outArcs[j] = append(outArcs[j], outArc{j: i, w: w})
			outWeight[j] += w
		}
	}

	r := make([]float64, n)
	for i := range r {
		r[i] = 1.0 / float64(n)
	}

	d := o.damping
	base := (1 - d) / float64(n)

	var converged bool
	var iter int
	for iter = 0; iter < o.maxIter; iter++ {
		dangling := 0.0
		for i, w := range outWeight {
			if w == 0 {
				dangling += r[i]
			}
		}
		danglingTerm := d * dangling / float64(n)

		next := make([]float64, n)
		for i := range next {
			next[i] = base + danglingTerm
		}
		for i, arcs := range outArcs {
			if outWeight[i] == 0 || r[i] == 0 {
				continue
			}
			share := d * r[i] / outWeight[i]
			for _, arc := range arcs {
				next[arc.j] += share * arc.w
			}
		}

		for _, v := range next {
			if !support.IsFinite(v) {
				return nil, graphina.NewConvergenceFailed(op, iter+1, "pagerank diverged to a non-finite value")
			}
		}

		if support.L1Delta(r, next) < o.tolerance {
			r = next
			converged = true
			iter++
			break
		}
		r = next
	}

	if !converged {
		return nil, graphina.NewConvergenceFailed(op, iter, "pagerank did not converge within max_iter")
	}

	for i := 0; i < n; i++ {
		result.Set(idx.NodeAt(i), r[i])
	}
	return result, nil
}
