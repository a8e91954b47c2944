package community

import (
	"math/rand"

	"github.com/katalvlaran/graphina/core"
	"github.com/katalvlaran/graphina/support"
)

// LouvainOption configures a Louvain run.
type LouvainOption func(*louvainOptions)

type louvainOptions struct {
	rng       *rand.Rand
	maxSweeps int
	maxLevels int
}

func defaultLouvainOptions() louvainOptions {
	return louvainOptions{maxSweeps: 100, maxLevels: 100}
}

// WithLouvainSeed fixes iteration order and tie-breaking, making a run
// reproducible.
func WithLouvainSeed(seed int64) LouvainOption {
	return func(o *louvainOptions) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithLouvainMaxSweeps caps the number of local-moving passes per level
// (default 100).
func WithLouvainMaxSweeps(maxSweeps int) LouvainOption {
	return func(o *louvainOptions) { o.maxSweeps = maxSweeps }
}

// louvainEdge is one aggregated (i,j,weight) edge in a working level's
// graph; undirected, i<=j, self-loops have i==j.
type louvainEdge struct {
	i, j int
	w    float64
}

// louvainLevel is the compact working graph for one Louvain level: a
// node list {0,...,n-1}, its adjacency (parallel-edge weights already
// accumulated), weighted degree (self-loops counted twice, the
// standard convention), and total edge weight m (so 2m is the sum of
// degrees).
type louvainLevel struct {
	n      int
	adj    [][]louvainEdge // adj[i] holds every edge incident to i, including a synthetic loop entry
	degree []float64
	m      float64
}

// Louvain partitions g by greedy modularity optimization: alternating
// local-moving sweeps (each node joins whichever neighboring community
// yields the largest modularity gain) and aggregation (communities
// collapse into super-nodes) until a full local-moving pass makes no
// move.
func Louvain[A any, W core.Number](g *core.Graph[A, W], opts ...LouvainOption) *Partition {
	o := defaultLouvainOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(1))
	}

	idx := support.NewIndexMap(g.NodeIDs())
	n := idx.Len()
	if n == 0 {
		return &Partition{Community: core.NewNodeMap[int](0), Count: 0}
	}
	if n == 1 {
		result := core.NewNodeMap[int](1)
		result.Set(idx.NodeAt(0), 0)
		return &Partition{Community: result, Count: 1}
	}

	level := buildLouvainLevel(g, idx)
	if level.m == 0 {
		// No edges (or all-zero weight): every node is its own community.
		result := core.NewNodeMap[int](n)
		for i := 0; i < n; i++ {
			result.Set(idx.NodeAt(i), i)
		}
		return &Partition{Community: result, Count: n}
	}

	// levelMap[i] is, for the current level's node i, which original
	// compact index (0..n-1) it represents — identity at level 0, then
	// composed across aggregations.
	levelMap := make([]int, n)
	for i := range levelMap {
		levelMap[i] = i
	}
	// finalComm[origIdx] accumulates the answer; rebuilt every level.
	finalComm := make([]int, n)

	for levelIdx := 0; levelIdx < o.maxLevels; levelIdx++ {
		comm, moved := louvainLocalMoving(level, o)

		for origIdx, lvlIdx := range levelMap {
			finalComm[origIdx] = comm[lvlIdx]
		}

		if !moved {
			break
		}

		nextLevel, nextOwner := louvainAggregate(level, comm)
		if nextLevel.n == level.n {
			// Aggregation didn't actually merge anything further.
			break
		}

		nextLevelMap := make([]int, n)
		for origIdx, lvlIdx := range levelMap {
			nextLevelMap[origIdx] = nextOwner[comm[lvlIdx]]
		}
		levelMap = nextLevelMap
		level = nextLevel
	}

	canonical := make(map[int]int)
	result := core.NewNodeMap[int](n)
	for i := 0; i < n; i++ {
		cid, ok := canonical[finalComm[i]]
		if !ok {
			cid = len(canonical)
			canonical[finalComm[i]] = cid
		}
		result.Set(idx.NodeAt(i), cid)
	}

	return &Partition{Community: result, Count: len(canonical)}
}

// buildLouvainLevel constructs the level-0 working graph from g over
// idx's compact indices, accumulating parallel-edge weights.
func buildLouvainLevel[A any, W core.Number](g *core.Graph[A, W], idx *support.IndexMap) *louvainLevel {
	n := idx.Len()
	weight := make(map[[2]int]float64)
	selfLoop := make(map[int]float64)

	for _, e := range g.Edges() {
		i, iok := idx.IndexOf(e.From)
		j, jok := idx.IndexOf(e.To)
		if !iok || !jok {
			continue
		}
		w := float64(e.Weight)
		if i == j {
			selfLoop[i] += w
			continue
		}
		key := [2]int{i, j}
		if i > j {
			key = [2]int{j, i}
		}
		weight[key] += w
	}

	adj := make([][]louvainEdge, n)
	degree := make([]float64, n)
	m := 0.0
	for key, w := range weight {
		i, j := key[0], key[1]
		adj[i] = append(adj[i], louvainEdge{i: i, j: j, w: w})
		adj[j] = append(adj[j], louvainEdge{i: j, j: i, w: w})
		degree[i] += w
		degree[j] += w
		m += w
	}
	for i, w := range selfLoop {
		adj[i] = append(adj[i], louvainEdge{i: i, j: i, w: w})
		degree[i] += 2 * w
		m += w
	}

	return &louvainLevel{n: n, adj: adj, degree: degree, m: m}
}

// louvainLocalMoving runs repeated sweeps over level's nodes, each node
// joining whichever neighboring community (including its own) yields
// the largest modularity gain, until a full sweep makes no move or
// maxSweeps is exhausted. Returns the final community assignment and
// whether any node ever moved.
func louvainLocalMoving(level *louvainLevel, o louvainOptions) ([]int, bool) {
	n := level.n
	comm := make([]int, n)
	for i := range comm {
		comm[i] = i
	}
	sumTot := make([]float64, n)
	copy(sumTot, level.degree)

	twoM := 2 * level.m
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	everMoved := false
	for sweep := 0; sweep < o.maxSweeps; sweep++ {
		o.rng.Shuffle(n, func(a, b int) { order[a], order[b] = order[b], order[a] })

		changed := false
		for _, i := range order {
			current := comm[i]
			sumTot[current] -= level.degree[i]

			kIn := make(map[int]float64)
			for _, e := range level.adj[i] {
				if e.j == i {
					continue // self-loop contributes no inter-community signal
				}
				kIn[comm[e.j]] += e.w
			}

			best, bestGain := current, 0.0
			for c, k := range kIn {
				gain := k - sumTot[c]*level.degree[i]/twoM
				if gain > bestGain+1e-10 || (gain > bestGain-1e-10 && c < best) {
					best, bestGain = c, gain
				}
			}

			sumTot[best] += level.degree[i]
			if best != current {
				comm[i] = best
				changed = true
				everMoved = true
			}
		}

		if !changed {
			break
		}
	}

	return comm, everMoved
}

// louvainAggregate builds the next level's super-graph from level's
// edges grouped by comm, plus nextOwner mapping each live community id
// to its new compact index.
func louvainAggregate(level *louvainLevel, comm []int) (*louvainLevel, []int) {
	nextOwner := make([]int, level.n)
	for i := range nextOwner {
		nextOwner[i] = -1
	}
	nextN := 0
	for _, c := range comm {
		if nextOwner[c] == -1 {
			nextOwner[c] = nextN
			nextN++
		}
	}

	weight := make(map[[2]int]float64)
	selfLoop := make(map[int]float64)
	for i := 0; i < level.n; i++ {
		ci := nextOwner[comm[i]]
		for _, e := range level.adj[i] {
			if e.j < i {
				continue // count each undirected edge once
			}
			cj := nextOwner[comm[e.j]]
			if e.j == i {
				selfLoop[ci] += e.w
				continue
			}
			if ci == cj {
				selfLoop[ci] += e.w
				continue
			}
			key := [2]int{ci, cj}
			if ci > cj {
				key = [2]int{cj, ci}
			}
			weight[key] += e.w
		}
	}

	adj := make([][]louvainEdge, nextN)
	degree := make([]float64, nextN)
	m := 0.0
	for key, w := range weight {
		i, j := key[0], key[1]
		adj[i] = append(adj[i], louvainEdge{i: i, j: j, w: w})
		adj[j] = append(adj[j], louvainEdge{i: j, j: i, w: w})
		degree[i] += w
		degree[j] += w
		m += w
	}
	for i, w := range selfLoop {
		adj[i] = append(adj[i], louvainEdge{i: i, j: i, w: w})
		degree[i] += 2 * w
		m += w
	}

	return &louvainLevel{n: nextN, adj: adj, degree: degree, m: m}, nextOwner
}
