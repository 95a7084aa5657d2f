package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors. It is passed
// by value; constructors never mutate it.
type builderConfig struct {
	// idFn maps a vertex index to its ID. Grid ignores it in favour of "r_c".
	idFn IDFn
	// rng drives every stochastic choice; nil means no randomness.
	rng *rand.Rand
	// weightFn draws one edge weight; observed only on weighted graphs.
	weightFn WeightFn
	// canvas bounds every generated layout position.
	canvas Canvas
	// wallProb is the chance that Grid blocks an interior cell.
	wallProb float64
}

// newBuilderConfig starts from deterministic defaults and applies opts in
// order; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
		canvas:   DefaultCanvas,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight, or DefaultEdgeWeight when g does not
// observe weights.
func (c builderConfig) weight(weighted bool) float64 {
	if !weighted {
		return DefaultEdgeWeight
	}

	return c.weightFn(c.rng)
}
