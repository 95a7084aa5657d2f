// File: impl_random.go
// Role: RandomConnected(n, p) and ScaleFree(n, m) constructors.
// Determinism:
//   - All randomness comes from cfg.rng; both constructors require it.
//   - Trial order is fixed (i asc, j asc), so a seed reproduces the graph.

package builder

import (
	"fmt"
	"math"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
)

const (
	methodRandomConnected = "RandomConnected"
	methodScaleFree       = "ScaleFree"
	minRandomVertices     = 1
	minAttach             = 1
	attachAttemptsPerEdge = 20
)

// RandomConnected returns a Constructor that samples an Erdős–Rényi graph
// over n vertices with edge probability p, then threads a spanning backbone
// through a shuffled vertex order so that every vertex is reachable.
// On directed graphs the backbone is a single directed chain.
func RandomConnected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomConnected, n, minRandomVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%g not in [0,1]: %w", methodRandomConnected, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}

		if err := addCircle(methodRandomConnected, g, cfg, n, true); err != nil {
			return err
		}

		weighted, directed := g.Weighted(), g.Directed()
		add := func(u, v string) error {
			w := cfg.weight(weighted)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodRandomConnected, u, v, w, err)
			}
			return nil
		}

		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || cfg.rng.Float64() >= p {
					continue
				}
				if err := add(cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		order := cfg.rng.Perm(n)
		for k := 1; k < n; k++ {
			u, v := cfg.idFn(order[k-1]), cfg.idFn(order[k])
			if _, ok := g.EdgeBetween(u, v); ok {
				continue
			}
			if err := add(u, v); err != nil {
				return err
			}
		}

		return nil
	}
}

// ScaleFree returns a Constructor for a preferential-attachment graph: a
// clique of min(m+1, n) seed vertices, then each new vertex links to up to
// m distinct existing vertices picked with probability proportional to
// their degree (floored at 1). The result has a few hubs and many leaves.
func ScaleFree(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodScaleFree, n, minRandomVertices, ErrTooFewVertices)
		}
		if m < minAttach {
			return fmt.Errorf("%s: m=%d < min=%d: %w", methodScaleFree, m, minAttach, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodScaleFree, ErrNeedRandSource)
		}

		weighted := g.Weighted()
		add := func(u, v string) error {
			w := cfg.weight(weighted)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodScaleFree, u, v, w, err)
			}
			return nil
		}

		seed := min(m+1, n)
		cx, cy := cfg.canvas.center()
		ids := make([]string, 0, n)
		degree := make([]int, 0, n)
		for i := 0; i < seed; i++ {
			angle := 2 * math.Pi * float64(i) / float64(seed)
			id := cfg.idFn(i)
			if err := g.CreateNode(id, cx+cliqueRadius*math.Cos(angle), cy+cliqueRadius*math.Sin(angle)); err != nil {
				return fmt.Errorf("%s: CreateNode(%s): %w", methodScaleFree, id, err)
			}
			ids = append(ids, id)
			degree = append(degree, seed-1)
		}
		for i := 0; i < seed; i++ {
			for j := i + 1; j < seed; j++ {
				if err := add(ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		for i := seed; i < n; i++ {
			id := cfg.idFn(i)
			x, y := cfg.canvas.spiral(i, cfg.rng)
			if err := g.CreateNode(id, x, y); err != nil {
				return fmt.Errorf("%s: CreateNode(%s): %w", methodScaleFree, id, err)
			}

			targets := pickByDegree(cfg, degree, m)
			ids = append(ids, id)
			degree = append(degree, 0)
			for _, t := range targets {
				if err := add(id, ids[t]); err != nil {
					return err
				}
				degree[i]++
				degree[t]++
			}
		}

		return nil
	}
}

// pickByDegree draws up to m distinct indices into degree, each with
// probability proportional to max(degree, 1). Indices are returned in the
// order they were first drawn.
func pickByDegree(cfg builderConfig, degree []int, m int) []int {
	total := 0
	for _, d := range degree {
		total += max(d, 1)
	}

	picked := make([]int, 0, m)
	seen := make(map[int]bool, m)
	for attempt := 0; len(picked) < m && len(picked) < len(degree) && attempt < m*attachAttemptsPerEdge; attempt++ {
		r := cfg.rng.Float64() * float64(total)
		cum := 0
		for i, d := range degree {
			cum += max(d, 1)
			if float64(cum) >= r {
				if !seen[i] {
					seen[i] = true
					picked = append(picked, i)
				}
				break
			}
		}
	}

	return picked
}
