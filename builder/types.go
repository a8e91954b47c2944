package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphina/core"
)

// NodeFn produces the node payload assigned at construction index idx
// (0-based, in the order a generator adds nodes). It is a labeling
// convenience only; callers address nodes through the NodeID slice a
// generator returns, never through idx or NodeFn's output.
type NodeFn[A any] func(idx int) A

// WeightFn produces the weight for an edge a generator is about to add.
// rng is nil unless the caller configured one via WithRand/WithSeed;
// implementations that need randomness should treat a nil rng as a
// programmer error upstream (callers requesting a stochastic WeightFn
// must also supply a source).
type WeightFn[W core.Number] func(rng *rand.Rand) W

// Option customizes a generator's config before it runs.
type Option[A any, W core.Number] func(*config[A, W])

// config holds every knob a generator consults. It is unexported:
// callers only ever touch it through Option values.
type config[A any, W core.Number] struct {
	rng      *rand.Rand
	nodeFn   NodeFn[A]
	weightFn WeightFn[W]
}

// newConfig resolves a config from defaults plus the supplied options.
func newConfig[A any, W core.Number](opts ...Option[A, W]) *config[A, W] {
	cfg := &config[A, W]{
		nodeFn:   defaultNodeFn[A],
		weightFn: DefaultWeightFn[W](),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// defaultNodeFn assigns the zero value of A to every index. A generic A
// has no canonical distinct-per-index rendering the way the teacher's
// string IDs did, and graphina doesn't need one: node identity lives in
// the opaque NodeID a generator already hands back.
func defaultNodeFn[A any](int) A {
	var zero A
	return zero
}

// WithRand supplies an explicit RNG for stochastic generators and
// weight functions.
func WithRand[A any, W core.Number](r *rand.Rand) Option[A, W] {
	return func(c *config[A, W]) { c.rng = r }
}

// WithSeed creates a new deterministic *rand.Rand from seed. Prefer
// this in tests and examples over WithRand to lock outcomes.
func WithSeed[A any, W core.Number](seed int64) Option[A, W] {
	return func(c *config[A, W]) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithNodeFn overrides the per-index node payload generator.
func WithNodeFn[A any, W core.Number](fn NodeFn[A]) Option[A, W] {
	return func(c *config[A, W]) { c.nodeFn = fn }
}

// WithWeightFn overrides the per-edge weight generator.
func WithWeightFn[A any, W core.Number](fn WeightFn[W]) Option[A, W] {
	return func(c *config[A, W]) { c.weightFn = fn }
}

// StarResult names a Star's hub and its leaves explicitly, since a
// star's two node roles aren't interchangeable the way a path's or
// cycle's are.
type StarResult struct {
	Center core.NodeID
	Leaves []core.NodeID
}

// WheelResult names a Wheel's hub and its outer rim explicitly.
type WheelResult struct {
	Center core.NodeID
	Rim    []core.NodeID
}

// BipartiteResult names a CompleteBipartite graph's two partitions.
type BipartiteResult struct {
	Left  []core.NodeID
	Right []core.NodeID
}

// GridResult holds a Grid's nodes indexed [row][col], row-major.
type GridResult struct {
	Nodes [][]core.NodeID
}
