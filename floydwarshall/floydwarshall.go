package floydwarshall

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/support"
)

// Result holds the dense all-pairs distance matrix and the next-hop
// table needed to reconstruct any shortest path, keyed through a
// compact IndexMap rather than NodeID internals.
type Result struct {
	Index *support.IndexMap
	Dist  *mat.Dense // n x n; math.Inf(1) marks "no path"
	next  [][]int    // next[i][j] = compact index of the hop after i toward j, -1 if none
}

// DistanceBetween returns the shortest-path distance from -> to, or
// false if either node is unknown to this result or no path exists.
func (r *Result) DistanceBetween(from, to core.NodeID) (float64, bool) {
	fi, ok := r.Index.IndexOf(from)
	if !ok {
		return 0, false
	}
	ti, ok := r.Index.IndexOf(to)
	if !ok {
		return 0, false
	}
	d := r.Dist.At(fi, ti)
	if math.IsInf(d, 1) {
		return 0, false
	}
	return d, true
}

// PathTo reconstructs one shortest path from -> to by following the
// next-hop table, or reports false if no path exists.
func (r *Result) PathTo(from, to core.NodeID) ([]core.NodeID, bool) {
	fi, ok := r.Index.IndexOf(from)
	if !ok {
		return nil, false
	}
	ti, ok := r.Index.IndexOf(to)
	if !ok {
		return nil, false
	}
	if math.IsInf(r.Dist.At(fi, ti), 1) {
		return nil, false
	}

	path := []core.NodeID{from}
	cur := fi
	for cur != ti {
		cur = r.next[cur][ti]
		if cur == -1 {
			return nil, false
		}
		path = append(path, r.Index.NodeAt(cur))
	}
	return path, true
}

// FloydWarshall computes all-pairs shortest distances over g. Weights
// are converted to float64 for the dense matrix; a negative diagonal
// entry after closure indicates a negative cycle, reported as
// GraphError wrapping ErrNegativeCycle (the witness node names one
// vertex on the cycle, not the whole cycle — APSP has no single source
// to anchor a full witness path the way BellmanFord does).
func FloydWarshall[A any, W core.Number](g *core.Graph[A, W], opts ...Option) (*Result, *graphina.GraphError) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	idx := support.NewIndexMap(g.NodeIDs())
	n := idx.Len()

	dist := mat.NewDense(n, n, nil)
	next := make([][]int, n)
	for i := 0; i < n; i++ {
		next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			next[i][j] = -1
			if i == j {
				dist.Set(i, j, 0)
			} else {
				dist.Set(i, j, math.Inf(1))
			}
		}
	}

	directed := g.IsDirected()
	for _, e := range g.Edges() {
		fi, _ := idx.IndexOf(e.From)
		ti, _ := idx.IndexOf(e.To)
		w := float64(e.Weight)

		if w < dist.At(fi, ti) {
			dist.Set(fi, ti, w)
			next[fi][ti] = ti
		}
		if !directed && fi != ti && w < dist.At(ti, fi) {
			dist.Set(ti, fi, w)
			next[ti][fi] = fi
		}
	}

	for k := 0; k < n; k++ {
		select {
		case <-o.ctx.Done():
			return nil, graphina.Wrap(graphina.KindInvalidArgument, "floydwarshall.FloydWarshall", o.ctx.Err())
		default:
		}

		for i := 0; i < n; i++ {
			dik := dist.At(i, k)
			if math.IsInf(dik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				dkj := dist.At(k, j)
				if math.IsInf(dkj, 1) {
					continue
				}
				cand := dik + dkj
				if cand < dist.At(i, j) {
					dist.Set(i, j, cand)
					next[i][j] = next[i][k]
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if dist.At(i, i) < 0 {
			return nil, graphina.NewNegativeCycle("floydwarshall.FloydWarshall", idx.NodeAt(i))
		}
	}

	return &Result{Index: idx, Dist: dist, next: next}, nil
}
