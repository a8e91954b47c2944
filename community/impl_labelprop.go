package community

import (
	"math/rand"

	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/support"
)

// LabelPropagationOption configures a LabelPropagation run.
type LabelPropagationOption func(*labelPropagationOptions)

type labelPropagationOptions struct {
	rng     *rand.Rand
	maxIter int
}

func defaultLabelPropagationOptions() labelPropagationOptions {
	return labelPropagationOptions{maxIter: 100}
}

// WithLabelPropagationSeed makes the per-round node visitation order
// (and thus the run) deterministic.
func WithLabelPropagationSeed(seed int64) LabelPropagationOption {
	return func(o *labelPropagationOptions) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithLabelPropagationMaxIter caps the number of sweeps (default 100).
// Label propagation is defined to stop at max_iter and return whatever
// labels it has even if it hasn't stabilized — it never reports
// ConvergenceFailed.
func WithLabelPropagationMaxIter(maxIter int) LabelPropagationOption {
	return func(o *labelPropagationOptions) { o.maxIter = maxIter }
}

// LabelPropagation assigns every node a unique label, then repeatedly
// visits nodes in a seeded-random order and adopts the label most
// frequent among each node's neighbors, breaking ties by smallest label
// id for determinism. It stops early on a sweep with no changes, or
// after max_iter sweeps, whichever comes first.
func LabelPropagation[A any, W core.Number](g *core.Graph[A, W], opts ...LabelPropagationOption) *Partition {
	o := defaultLabelPropagationOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(1))
	}

	idx := support.NewIndexMap(g.NodeIDs())
	n := idx.Len()
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	if n == 0 {
		return &Partition{Community: core.NewNodeMap[int](0), Count: 0}
	}

	neighborIdx := make([][]int, n)
	for i := 0; i < n; i++ {
		for _, nb := range g.Neighbors(idx.NodeAt(i)) {
			j, ok := idx.IndexOf(nb)
			if !ok || j == i {
				continue
			}
			neighborIdx[i] = append(neighborIdx[i], j)
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	for iter := 0; iter < o.maxIter; iter++ {
		o.rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

		changed := false
		for _, i := range order {
			if len(neighborIdx[i]) == 0 {
				continue
			}
			counts := make(map[int]int, len(neighborIdx[i]))
			for _, j := range neighborIdx[i] {
				counts[label[j]]++
			}
			best, bestCount := label[i], -1
			for lbl, count := range counts {
				if count > bestCount || (count == bestCount && lbl < best) {
					best, bestCount = lbl, count
				}
			}
			if best != label[i] {
				label[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	canonical := make(map[int]int)
	result := core.NewNodeMap[int](n)
	for i := 0; i < n; i++ {
		cid, ok := canonical[label[i]]
		if !ok {
			cid = len(canonical)
			canonical[label[i]] = cid
		}
		result.Set(idx.NodeAt(i), cid)
	}

	return &Partition{Community: result, Count: len(canonical)}
}
