// File: impl_adjacency.go
// Role: text import. AdjacencyList and AdjacencyMatrix constructors.
// Determinism:
//   - Vertices in order of first appearance, laid out on a circle.
//   - Edges in input order; repeated pairs keep the first occurrence
//     (unordered pairs on undirected graphs, ordered pairs otherwise).

package builder

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
)

const (
	methodAdjacencyList   = "AdjacencyList"
	methodAdjacencyMatrix = "AdjacencyMatrix"
	commentPrefix         = "#"
)

// listSeparators are tried in order; the first one present splits a line.
var listSeparators = []string{":", "→", "->"}

type arc struct {
	from, to string
	w        float64
}

// AdjacencyList returns a Constructor that parses one source per line:
//
//	A: B C D        A links to B, C and D with weight 1
//	A: B(3) C(7)    explicit weights
//	0 -> 1, 2       arrow syntax, commas allowed
//	# comment
//	E               a node without edges
//
// Unweighted graphs ignore the given weights.
func AdjacencyList(text string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		var (
			order []string
			seen  = make(map[string]bool)
			arcs  []arc
		)
		declare := func(id string) {
			if !seen[id] {
				seen[id] = true
				order = append(order, id)
			}
		}

		for n, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, commentPrefix) {
				continue
			}
			src, rest, _ := cutAny(line, listSeparators)
			src = strings.TrimSpace(src)
			if src == "" {
				return fmt.Errorf("%s: line %d: missing source: %w", methodAdjacencyList, n+1, ErrBadAdjacency)
			}
			declare(src)

			for _, tok := range strings.Fields(strings.ReplaceAll(rest, ",", " ")) {
				dst, w, err := parseTarget(tok)
				if err != nil {
					return fmt.Errorf("%s: line %d: %q: %w", methodAdjacencyList, n+1, tok, err)
				}
				declare(dst)
				arcs = append(arcs, arc{from: src, to: dst, w: w})
			}
		}

		return place(methodAdjacencyList, g, cfg, order, arcs)
	}
}

// AdjacencyMatrix returns a Constructor that parses a square matrix of
// whitespace- or comma-separated numbers. 0, -1 and inf mean "no edge";
// any other value is the weight. A non-numeric first row names the
// vertices; otherwise IDs come from the configured ID scheme.
func AdjacencyMatrix(text string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		var rows [][]string
		for _, line := range strings.Split(text, "\n") {
			if f := strings.Fields(strings.ReplaceAll(line, ",", " ")); len(f) > 0 {
				rows = append(rows, f)
			}
		}
		if len(rows) == 0 {
			return nil
		}

		var labels []string
		if !numeric(rows[0]) {
			labels, rows = rows[0], rows[1:]
		}
		n := len(rows)
		if labels == nil {
			for i := 0; i < n; i++ {
				labels = append(labels, cfg.idFn(i))
			}
		}
		if len(labels) != n {
			return fmt.Errorf("%s: %d labels for %d rows: %w", methodAdjacencyMatrix, len(labels), n, ErrBadAdjacency)
		}

		var arcs []arc
		for i, row := range rows {
			if len(row) != n {
				return fmt.Errorf("%s: row %d has %d columns, want %d: %w", methodAdjacencyMatrix, i, len(row), n, ErrBadAdjacency)
			}
			for j, cell := range row {
				v, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					return fmt.Errorf("%s: row %d col %d: %q: %w", methodAdjacencyMatrix, i, j, cell, ErrBadAdjacency)
				}
				if v == 0 || v == -1 || math.IsInf(v, 1) {
					continue
				}
				arcs = append(arcs, arc{from: labels[i], to: labels[j], w: v})
			}
		}

		return place(methodAdjacencyMatrix, g, cfg, labels, arcs)
	}
}

// place lays order out on a circle and adds arcs, collapsing repeats.
func place(method string, g *core.Graph, cfg builderConfig, order []string, arcs []arc) error {
	for i, id := range order {
		x, y := cfg.canvas.onCircle(i, len(order))
		if err := g.CreateNode(id, x, y); err != nil {
			return fmt.Errorf("%s: CreateNode(%s): %w", method, id, err)
		}
	}

	weighted, directed := g.Weighted(), g.Directed()
	added := make(map[[2]string]bool, len(arcs))
	for _, a := range arcs {
		key := [2]string{a.from, a.to}
		if !directed && a.to < a.from {
			key = [2]string{a.to, a.from}
		}
		if added[key] {
			continue
		}
		added[key] = true

		w := a.w
		if !weighted {
			w = DefaultEdgeWeight
		}
		if _, err := g.AddEdge(a.from, a.to, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, a.from, a.to, w, err)
		}
	}

	return nil
}

// parseTarget splits "B(3)" into ("B", 3); a bare "B" weighs DefaultEdgeWeight.
func parseTarget(tok string) (string, float64, error) {
	name, rest, ok := strings.Cut(tok, "(")
	if !ok {
		return tok, DefaultEdgeWeight, nil
	}
	num, ok := strings.CutSuffix(rest, ")")
	if !ok || name == "" {
		return "", 0, ErrBadAdjacency
	}
	w, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(w) {
		return "", 0, ErrBadAdjacency
	}

	return name, w, nil
}

// cutAny cuts s around the first separator in seps that it contains.
func cutAny(s string, seps []string) (before, after string, found bool) {
	for _, sep := range seps {
		if b, a, ok := strings.Cut(s, sep); ok {
			return b, a, true
		}
	}

	return s, "", false
}

func numeric(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return false
		}
	}

	return true
}
