// File: impl_path.go
// Role: Path(n) and Cycle(n) constructors.
// Determinism:
//   - Vertices via cfg.idFn in index order, laid out on a circle.
//   - Edges (i-1)→i in increasing i; Cycle closes with (n-1)→0.

package builder

import (
	"fmt"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return ring(methodPath, g, cfg, n, false)
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return ring(methodCycle, g, cfg, n, true)
	}
}

func ring(method string, g *core.Graph, cfg builderConfig, n int, closed bool) error {
	if err := addCircle(method, g, cfg, n, false); err != nil {
		return err
	}

	weighted := g.Weighted()
	last := n
	if closed {
		last = n + 1
	}
	for i := 1; i < last; i++ {
		u, v := cfg.idFn(i-1), cfg.idFn(i%n)
		w := cfg.weight(weighted)
		if _, err := g.AddEdge(u, v, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
		}
	}

	return nil
}

// addCircle adds vertices cfg.idFn(0..n-1) evenly spaced on a circle,
// jittered by cfg.rng when jitter is set.
func addCircle(method string, g *core.Graph, cfg builderConfig, n int, jitter bool) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		x, y := cfg.canvas.onCircle(i, n)
		if jitter {
			x, y = cfg.canvas.jittered(i, n, cfg.rng)
		}
		if err := g.CreateNode(id, x, y); err != nil {
			return fmt.Errorf("%s: CreateNode(%s): %w", method, id, err)
		}
	}

	return nil
}
