package centrality

import (
	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/dijkstra"
)

// Closeness computes Wasserman-Faust closeness centrality for every
// live node: for source v with k other nodes reachable and sumDist the
// sum of distances to them, score = (k/(n-1)) * (k/sumDist). This
// reduces to the classic (n-1)/sumDist when every other node is
// reachable (k == n-1), and degrades gracefully on disconnected graphs
// instead of scoring every node 0.
//
// Distances come from a per-source dijkstra.Dijkstra run rather than a
// separate unweighted BFS path: graphina's weights are always
// core.Number-typed, so a uniform weight of 1 already reduces Dijkstra
// to BFS and there is no need for two code paths.
func Closeness[A any, W core.Number](g *core.Graph[A, W]) (*core.NodeMap[float64], *graphina.GraphError) {
	const op = "centrality.Closeness"
	return closenessLike(g, op, func(k, n int, sumDist float64) float64 {
		if sumDist == 0 {
			return 0
		}
		return (float64(k) / float64(n-1)) * (float64(k) / sumDist)
	})
}

// Harmonic computes harmonic centrality for every live node: the sum of
// 1/d(v,u) over every other node u reachable from v, with unreachable
// nodes contributing 0 simply by being absent from the sum.
func Harmonic[A any, W core.Number](g *core.Graph[A, W]) (*core.NodeMap[float64], *graphina.GraphError) {
	const op = "centrality.Harmonic"
	ids := g.NodeIDs()
	result := core.NewNodeMap[float64](len(ids))

	for _, s := range ids {
		res, derr := dijkstra.Dijkstra[A, W](g, s)
		if derr != nil {
			return nil, graphina.Wrap(graphina.KindInvalidArgument, op, derr)
		}

		score := 0.0
		for _, u := range ids {
			if u == s {
				continue
			}
			d, ok := res.Dist.Get(u)
			if !ok || !d.IsSome() {
				continue
			}
			dist := float64(d.MustGet())
			if dist > 0 {
				score += 1 / dist
			}
		}
		result.Set(s, score)
	}

	return result, nil
}

// closenessLike runs the shared per-source Dijkstra sweep and applies
// score to each node's (reachable count, n, distance sum).
func closenessLike[A any, W core.Number](g *core.Graph[A, W], op string, score func(k, n int, sumDist float64) float64) (*core.NodeMap[float64], *graphina.GraphError) {
	ids := g.NodeIDs()
	n := len(ids)
	result := core.NewNodeMap[float64](n)

	for _, s := range ids {
		res, derr := dijkstra.Dijkstra[A, W](g, s)
		if derr != nil {
			return nil, graphina.Wrap(graphina.KindInvalidArgument, op, derr)
		}

		k := 0
		sumDist := 0.0
		for _, u := range ids {
			if u == s {
				continue
			}
			d, ok := res.Dist.Get(u)
			if !ok || !d.IsSome() {
				continue
			}
			k++
			sumDist += float64(d.MustGet())
		}

		if n <= 1 {
			result.Set(s, 0)
			continue
		}
		result.Set(s, score(k, n, sumDist))
	}

	return result, nil
}
