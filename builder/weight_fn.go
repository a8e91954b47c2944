package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/graphina/core"
)

// DefaultWeightFn returns a WeightFn that always yields 1 (converted to
// W), matching the teacher's constant default-weight policy.
func DefaultWeightFn[W core.Number]() WeightFn[W] {
	return ConstantWeightFn[W](1)
}

// ConstantWeightFn returns a WeightFn that always yields v, ignoring rng.
func ConstantWeightFn[W core.Number](v W) WeightFn[W] {
	return func(*rand.Rand) W { return v }
}

// UniformWeightFn returns a WeightFn sampling uniformly in [lo, hi).
// Panics if hi < lo. A nil rng yields the constant lo, the same
// deterministic-fallback posture the teacher's weight functions take.
func UniformWeightFn[W core.Number](lo, hi float64) WeightFn[W] {
	if hi < lo {
		panic(fmt.Sprintf("builder: UniformWeightFn requires lo <= hi, got lo=%g, hi=%g", lo, hi))
	}
	return func(rng *rand.Rand) W {
		if rng == nil || hi == lo {
			return W(lo)
		}
		return W(lo + rng.Float64()*(hi-lo))
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev),
// clipped to be non-negative. Panics if stddev < 0.
func NormalWeightFn[W core.Number](mean, stddev float64) WeightFn[W] {
	if stddev < 0 {
		panic(fmt.Sprintf("builder: NormalWeightFn requires stddev >= 0, got %g", stddev))
	}
	return func(rng *rand.Rand) W {
		if rng == nil {
			return W(mean)
		}
		sample := rng.NormFloat64()*stddev + mean
		if sample < 0 {
			sample = 0
		}
		return W(sample)
	}
}

// ExponentialWeightFn returns a WeightFn sampling from Exp(rate).
// Panics if rate <= 0.
func ExponentialWeightFn[W core.Number](rate float64) WeightFn[W] {
	if rate <= 0 {
		panic(fmt.Sprintf("builder: ExponentialWeightFn requires rate > 0, got %g", rate))
	}
	return func(rng *rand.Rand) W {
		if rng == nil {
			return W(1 / rate)
		}
		return W(math.Abs(rng.ExpFloat64() / rate))
	}
}
