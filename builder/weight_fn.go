package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is used when no WeightFn is configured and for every
// edge of an unweighted graph.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always yields value. Negative values are allowed so
// fixtures for Bellman–Ford can be generated; panics on NaN.
func ConstantWeightFn(value float64) WeightFn {
	if value != value {
		panic("ConstantWeightFn: value is NaN")
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformIntWeightFn samples an integer weight uniformly in [lo, hi].
// Without an RNG it yields lo. Panics if hi < lo.
func UniformIntWeightFn(lo, hi int) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformIntWeightFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || lo == hi {
			return float64(lo)
		}
		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// UniformWeightFn samples uniformly in [lo, hi). Without an RNG it yields
// lo. Panics if hi < lo.
func UniformWeightFn(lo, hi float64) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || lo == hi {
			return lo
		}
		return lo + rng.Float64()*(hi-lo)
	}
}

// WithConstantWeight sets a fixed edge weight.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithIntWeights draws integer weights uniformly in [lo, hi].
func WithIntWeights(lo, hi int) BuilderOption {
	return WithWeightFn(UniformIntWeightFn(lo, hi))
}
