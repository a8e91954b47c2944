package centrality

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/scratch"
)

// BetweennessOption configures a Betweenness run.
type BetweennessOption func(*betweennessOptions)

type betweennessOptions struct {
	normalize bool
	pool      *BetweennessPool
}

func defaultBetweennessOptions() betweennessOptions { return betweennessOptions{} }

// WithNormalize scales node scores by 1/((n-1)(n-2)) (directed) or
// 2/((n-1)(n-2)) (undirected) when n>2; normalization is skipped
// entirely for n<=2, where the denominator would be zero.
func WithNormalize(normalize bool) BetweennessOption {
	return func(o *betweennessOptions) { o.normalize = normalize }
}

// BetweennessPool bundles the scratch pools Betweenness acquires its
// per-source sigma/dist accumulators from, one fresh pair per source
// node in the outer loop.
type BetweennessPool struct {
	Sigma *scratch.Pool[map[core.NodeID]float64]
	Dist  *scratch.Pool[map[core.NodeID]int]
}

// NewBetweennessPool builds a BetweennessPool sized for a graph with the
// given node count.
func NewBetweennessPool(capacity int) *BetweennessPool {
	distPool := scratch.NewPool(
		func() map[core.NodeID]int { return make(map[core.NodeID]int, capacity) },
		func(m map[core.NodeID]int) {
			for k := range m {
				delete(m, k)
			}
		},
	)
	return &BetweennessPool{
		Sigma: scratch.NewNodeFloatMapPool[core.NodeID](capacity),
		Dist:  distPool,
	}
}

// WithPool supplies a BetweennessPool that each source iteration's
// sigma/dist maps are acquired from and released back to, instead of
// allocating fresh ones on every source. Passing nil (the default)
// keeps the usual per-source allocation; the pool never changes the
// returned BetweennessResult, only where its scratch memory comes from.
func WithPool(pool *BetweennessPool) BetweennessOption {
	return func(o *betweennessOptions) { o.pool = pool }
}

// BetweennessResult holds node betweenness scores and, for each pair of
// adjacent nodes that lay on at least one shortest path together, an
// edge betweenness score. When several parallel edges connect the same
// pair, the pair's score is split evenly across their EdgeIDs.
type BetweennessResult struct {
	Node *core.NodeMap[float64]
	Edge map[core.EdgeID]float64
}

// Betweenness computes unweighted Brandes betweenness centrality: for
// each node, the sum over all source-target pairs of the fraction of
// shortest paths passing through it.
//
// The BFS frontier re-reads dist[w] after any update before comparing
// it against dist[v]+1 — comparing against a stale local copy would
// silently collapse every sigma/delta accumulation to zero.
//
// Complexity: O(V*E) time, O(V+E) space.
func Betweenness[A any, W core.Number](g *core.Graph[A, W], opts ...BetweennessOption) (*BetweennessResult, *graphina.GraphError) {
	o := defaultBetweennessOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ids := g.NodeIDs()
	n := len(ids)
	nodeScore := core.NewNodeMap[float64](n)
	for _, id := range ids {
		nodeScore.Set(id, 0)
	}
	pairScore := make(map[pairKey]float64)

	for _, s := range ids {
		stack, sigma, dist, pred, release := brandesFrontier(g, s, o.pool)

		delta := make(map[core.NodeID]float64, n)
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range pred[w] {
				if sigma[w] == 0 {
					continue
				}
				contrib := (sigma[v] / sigma[w]) * (1 + delta[w])
				delta[v] += contrib
				pairScore[pairKey{v, w}] += contrib
			}
			if w != s {
				cur, _ := nodeScore.Get(w)
				nodeScore.Set(w, cur+delta[w])
			}
		}
		_ = dist
		release()
	}

	if o.normalize && n > 2 {
		scale := 1.0 / (float64(n-1) * float64(n-2))
		if !g.IsDirected() {
			scale *= 2
		}
		for _, id := range ids {
			v, _ := nodeScore.Get(id)
			nodeScore.Set(id, v*scale)
		}
	}

	edgeScore := make(map[core.EdgeID]float64)
	for pk, score := range pairScore {
		eids := g.FindEdges(pk.from, pk.to)
		if len(eids) == 0 {
			continue
		}
		share := score / float64(len(eids))
		for _, eid := range eids {
			edgeScore[eid] += share
		}
	}

	return &BetweennessResult{Node: nodeScore, Edge: edgeScore}, nil
}

type pairKey struct{ from, to core.NodeID }

// brandesFrontier runs one BFS from s, returning the visit stack
// (reverse-BFS accumulation order), shortest-path counts sigma, BFS
// distances, predecessor lists, and a release func the caller must
// invoke once it is done reading sigma/dist — the single-source half of
// Brandes' algorithm, shared by node and edge betweenness.
//
// When pool is non-nil, sigma and dist are acquired from it instead of
// freshly allocated; release returns them. When pool is nil, release is
// a no-op.
func brandesFrontier[A any, W core.Number](g *core.Graph[A, W], s core.NodeID, pool *BetweennessPool) ([]core.NodeID, map[core.NodeID]float64, map[core.NodeID]int, map[core.NodeID][]core.NodeID, func()) {
	var sigma map[core.NodeID]float64
	var dist map[core.NodeID]int
	release := func() {}
	if pool != nil {
		sigmaH := pool.Sigma.Acquire()
		distH := pool.Dist.Acquire()
		sigma, dist = sigmaH.Value, distH.Value
		release = func() {
			sigmaH.Release()
			distH.Release()
		}
	} else {
		sigma = make(map[core.NodeID]float64, g.NodeCount())
		dist = make(map[core.NodeID]int, g.NodeCount())
	}
	sigma[s] = 1
	dist[s] = 0
	pred := make(map[core.NodeID][]core.NodeID)
	stack := make([]core.NodeID, 0)
	queue := []core.NodeID{s}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		stack = append(stack, v)
		for _, w := range g.Neighbors(v) {
			if w == v {
				continue // self-loop contributes no shortest-path structure
			}
			if _, seen := dist[w]; !seen {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
			// Re-read dist[w] after the possible update above: comparing
			// against a value captured before the update would silently
			// zero out every sigma/pred accumulation.
			if dist[w] == dist[v]+1 {
				sigma[w] += sigma[v]
				pred[w] = append(pred[w], v)
			}
		}
	}

	return stack, sigma, dist, pred, release
}
