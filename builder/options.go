package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the resolved builderConfig before construction
// begins. Option constructors panic on meaningless input.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on
// nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG, making stochastic constructors reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithCanvas sets the layout area. Panics on a non-positive dimension.
func WithCanvas(width, height float64) BuilderOption {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("builder: WithCanvas(%g, %g): dimensions must be > 0", width, height))
	}

	return func(c *builderConfig) { c.canvas = Canvas{Width: width, Height: height} }
}

// WithWallProbability makes Grid block each interior cell with
// probability p. Panics unless 0 ≤ p ≤ 1.
func WithWallProbability(p float64) BuilderOption {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: WithWallProbability(%g): want 0 ≤ p ≤ 1", p))
	}

	return func(c *builderConfig) { c.wallProb = p }
}
