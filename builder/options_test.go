package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/builder"
)

func TestOptions_PanicOnMeaninglessInput(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"WithIDScheme(nil)":           func() { builder.WithIDScheme(nil) },
		"WithRand(nil)":               func() { builder.WithRand(nil) },
		"WithWeightFn(nil)":           func() { builder.WithWeightFn(nil) },
		"WithCanvas(0,1)":             func() { builder.WithCanvas(0, 1) },
		"WithWallProbability(1.5)":    func() { builder.WithWallProbability(1.5) },
		"WithWallProbability(-0.1)":   func() { builder.WithWallProbability(-0.1) },
		"UniformIntWeightFn(5,4)":     func() { builder.UniformIntWeightFn(5, 4) },
		"UniformWeightFn(2,1)":        func() { builder.UniformWeightFn(2, 1) },
		"ExcelColumnIDFn(-1)":         func() { builder.ExcelColumnIDFn(-1) },
		"SymbolNumberIDFn(\"v\")(-1)": func() { builder.SymbolNumberIDFn("v")(-1) },
	}
	for name, fn := range cases {
		assert.Panics(t, fn, name)
	}
}

func TestIDFns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", builder.DefaultIDFn(42))
	for idx, want := range map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"} {
		assert.Equal(t, want, builder.ExcelColumnIDFn(idx), "idx %d", idx)
	}
	assert.Equal(t, "v7", builder.SymbolNumberIDFn("v")(7))
}

func TestWeightFns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, -3.0, builder.ConstantWeightFn(-3)(nil))
	assert.Equal(t, 4.0, builder.UniformIntWeightFn(4, 9)(nil), "no rng yields lo")
	assert.Equal(t, 2.5, builder.UniformWeightFn(2.5, 3)(nil))

	rng := rand.New(rand.NewSource(1))
	ints := builder.UniformIntWeightFn(1, 3)
	seen := map[float64]bool{}
	for i := 0; i < 200; i++ {
		w := ints(rng)
		assert.Contains(t, []float64{1, 2, 3}, w)
		seen[w] = true
	}
	assert.Len(t, seen, 3, "every value in range is drawn")

	floats := builder.UniformWeightFn(1, 2)
	for i := 0; i < 50; i++ {
		w := floats(rng)
		assert.GreaterOrEqual(t, w, 1.0)
		assert.Less(t, w, 2.0)
	}
}
