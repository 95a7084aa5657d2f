// File: impl_grid.go
// Role: Grid(rows, cols) constructor, the maze fixture.
// Determinism:
//   - Vertices in row-major order with fixed IDs "r_c" (cfg.idFn is ignored
//     so coordinates stay readable).
//   - Walls are drawn in row-major order over interior cells only, so the
//     border ring always stays open.
//   - For each cell emit Right then Bottom; directed graphs get the reverse
//     arc immediately after each forward arc.

package builder

import (
	"fmt"
	"strconv"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridID returns the vertex ID of cell (r, c): "r_c".
func GridID(r, c int) string {
	return strconv.Itoa(r) + "_" + strconv.Itoa(c)
}

// Grid returns a Constructor that builds a rows×cols 4-connected grid laid
// out across the canvas. With WithWallProbability each interior cell is
// blocked with that probability; blocked cells keep their edges.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if cfg.wallProb > 0 && cfg.rng == nil {
			return fmt.Errorf("%s: walls need an rng: %w", methodGrid, ErrNeedRandSource)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				x, y := cfg.canvas.gridCell(r, c, rows, cols)
				interior := r > 0 && r < rows-1 && c > 0 && c < cols-1
				n := core.Node{
					ID:      GridID(r, c),
					X:       x,
					Y:       y,
					Blocked: interior && cfg.wallProb > 0 && cfg.rng.Float64() < cfg.wallProb,
				}
				if err := g.AddNode(n); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", methodGrid, n.ID, err)
				}
			}
		}

		weighted := g.Weighted()
		link := func(u, v string) error {
			w := cfg.weight(weighted)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodGrid, u, v, w, err)
			}
			if g.Directed() {
				if _, err := g.AddEdge(v, u, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodGrid, v, u, w, err)
				}
			}
			return nil
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
