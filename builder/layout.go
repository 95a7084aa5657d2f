package builder

import (
	"math"
	"math/rand"
)

// Canvas is the rectangle node positions are laid out in.
type Canvas struct {
	Width, Height float64
}

// DefaultCanvas matches the visualizer's default drawing area.
var DefaultCanvas = Canvas{Width: 800, Height: 500}

const (
	layoutMargin  = 40.0
	gridPadding   = 50.0
	circleRadius  = 0.35 // fraction of the shorter canvas side
	circleJitter  = 30.0
	spiralJitter  = 20.0
	cliqueRadius  = 60.0
	spiralStart   = 40.0
	spiralStep    = 15.0
	spiralTurnDiv = 7.0
)

func (c Canvas) center() (float64, float64) { return c.Width / 2, c.Height / 2 }

// clamp keeps (x, y) at least layoutMargin away from every border.
func (c Canvas) clamp(x, y float64) (float64, float64) {
	return clampTo(x, layoutMargin, c.Width-layoutMargin), clampTo(y, layoutMargin, c.Height-layoutMargin)
}

func clampTo(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}

	return math.Max(lo, math.Min(hi, v))
}

// onCircle returns the position of point i of n evenly spaced on a circle
// around the canvas centre.
func (c Canvas) onCircle(i, n int) (float64, float64) {
	cx, cy := c.center()
	r := math.Min(c.Width, c.Height) * circleRadius
	angle := 2 * math.Pi * float64(i) / float64(n)

	return cx + r*math.Cos(angle), cy + r*math.Sin(angle)
}

// jittered is onCircle displaced by up to ±circleJitter when rng is set.
func (c Canvas) jittered(i, n int, rng *rand.Rand) (float64, float64) {
	x, y := c.onCircle(i, n)
	if rng != nil {
		x += uniform(rng, circleJitter)
		y += uniform(rng, circleJitter)
	}

	return c.clamp(x, y)
}

// gridCell returns the position of cell (r, c) spread across the canvas.
func (c Canvas) gridCell(r, col, rows, cols int) (float64, float64) {
	cellW := (c.Width - 2*gridPadding) / float64(max(cols-1, 1))
	cellH := (c.Height - 2*gridPadding) / float64(max(rows-1, 1))

	return gridPadding + float64(col)*cellW, gridPadding + float64(r)*cellH
}

// spiral places the i-th grown node of a scale-free graph.
func (c Canvas) spiral(i int, rng *rand.Rand) (float64, float64) {
	cx, cy := c.center()
	angle := 2 * math.Pi * float64(i) / spiralTurnDiv
	rad := spiralStart + float64(i)*spiralStep
	x, y := cx+rad*math.Cos(angle), cy+rad*math.Sin(angle)
	if rng != nil {
		x += uniform(rng, spiralJitter)
		y += uniform(rng, spiralJitter)
	}

	return c.clamp(x, y)
}

// uniform draws from [-span, span).
func uniform(rng *rand.Rand, span float64) float64 {
	return (rng.Float64()*2 - 1) * span
}
