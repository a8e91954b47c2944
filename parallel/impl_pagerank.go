package parallel

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/support"
)

// PageRankOption configures a parallel PageRank run, combining the
// numeric knobs centrality.PageRank exposes with this package's worker
// controls.
type PageRankOption func(*pageRankConfig)

type pageRankConfig struct {
	parallel  options
	damping   float64
	tolerance float64
	maxIter   int
}

func defaultPageRankConfig() pageRankConfig {
	return pageRankConfig{parallel: defaultOptions(), damping: 0.85, tolerance: 1e-6, maxIter: 100}
}

// WithPageRankOption threads a generic Option (WithContext, WithWorkers)
// into the parallel run.
func WithPageRankOption(opt Option) PageRankOption {
	return func(c *pageRankConfig) { opt(&c.parallel) }
}

// WithPageRankDamping sets the damping factor (default 0.85).
func WithPageRankDamping(d float64) PageRankOption {
	return func(c *pageRankConfig) { c.damping = d }
}

// WithPageRankTolerance sets the L1 convergence tolerance (default 1e-6).
func WithPageRankTolerance(tol float64) PageRankOption {
	return func(c *pageRankConfig) { c.tolerance = tol }
}

// WithPageRankMaxIter caps iterations (default 100).
func WithPageRankMaxIter(maxIter int) PageRankOption {
	return func(c *pageRankConfig) { c.maxIter = maxIter }
}

// PageRank computes the same push-style PageRank centrality.PageRank
// does, but scatters each iteration's arc contributions across workers.
// Every worker writes into its own private delta slice; after the
// errgroup join, deltas are summed sequentially into the next iterate —
// the same arithmetic as the sequential kernel, just reassociated, so
// results match up to floating-point summation order.
func PageRank[A any, W core.Number](g *core.Graph[A, W], opts ...PageRankOption) (*core.NodeMap[float64], *graphina.GraphError) {
	const op = "parallel.PageRank"
	c := defaultPageRankConfig()
	for _, opt := range opts {
		opt(&c)
	}

	idx := support.NewIndexMap(g.NodeIDs())
	n := idx.Len()
	result := core.NewNodeMap[float64](n)
	if n == 0 {
		return result, nil
	}

	type outArc struct {
		j int
		w float64
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

	d := c.damping
	base := (1 - d) / float64(n)
	ranges := chunk(n, c.parallel.workers)

	var converged bool
	var iter int
	for iter = 0; iter < c.maxIter; iter++ {
		dangling := 0.0
		for i, w := range outWeight {
			if w == 0 {
				dangling += r[i]
			}
		}
		danglingTerm := d * dangling / float64(n)

		partials := make([][]float64, len(ranges))
		grp, _ := errgroup.WithContext(c.parallel.ctx)
		for idx2, rg := range ranges {
			idx2, rg := idx2, rg
			grp.Go(func() error {
				local := make([]float64, n)
				for i := rg[0]; i < rg[1]; i++ {
					if outWeight[i] == 0 || r[i] == 0 {
						continue
					}
					share := d * r[i] / outWeight[i]
					for _, arc := range outArcs[i] {
						local[arc.j] += share * arc.w
					}
				}
				partials[idx2] = local
				return nil
			})
		}
		_ = grp.Wait()

		next := make([]float64, n)
		for i := range next {
			next[i] = base + danglingTerm
		}
		for _, local := range partials {
			for j, v := range local {
				next[j] += v
			}
		}

		for _, v := range next {
			if !support.IsFinite(v) {
				return nil, graphina.NewConvergenceFailed(op, iter+1, "pagerank diverged to a non-finite value")
			}
		}

		if support.L1Delta(r, next) < c.tolerance {
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

