// Package heuristic provides the distance estimates used by informed
// searches (A*, greedy best-first). Every heuristic reads only the 2-D
// layout coordinates of the two nodes.
package heuristic

import (
	"math"
	"slices"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
)

// Func estimates the remaining cost from a to b.
type Func func(a, b *core.Node) float64

// Heuristic names.
const (
	NameManhattan = "manhattan"
	NameEuclidean = "euclidean"
	NameOctile    = "octile"
	NameZero      = "zero"

	// Default is used when a caller names no heuristic or an unknown one.
	Default = NameEuclidean
)

var table = map[string]Func{
	NameManhattan: Manhattan,
	NameEuclidean: Euclidean,
	NameOctile:    Octile,
	NameZero:      Zero,
}

// Manhattan is |dx| + |dy|; admissible on 4-connected unit grids.
func Manhattan(a, b *core.Node) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// Euclidean is the straight-line distance.
func Euclidean(a, b *core.Node) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Octile is max(dx,dy) + (sqrt2-1)*min(dx,dy); admissible on 8-connected grids.
func Octile(a, b *core.Node) float64 {
	dx, dy := math.Abs(a.X-b.X), math.Abs(a.Y-b.Y)

	return max(dx, dy) + (math.Sqrt2-1)*min(dx, dy)
}

// Zero always returns 0, turning A* into Dijkstra.
func Zero(_, _ *core.Node) float64 { return 0 }

// Lookup returns the heuristic registered under name.
func Lookup(name string) (Func, bool) {
	fn, ok := table[name]

	return fn, ok
}

// Resolve is Lookup with a fallback to Default. It returns the name
// actually used so traces can report it.
func Resolve(name string) (string, Func) {
	if fn, ok := table[name]; ok {
		return name, fn
	}

	return Default, table[Default]
}

// Names lists the known heuristics in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for n := range table {
		names = append(names, n)
	}
	slices.Sort(names)

	return names
}

// Cache memoizes h(node, target) for one run. Nodes or targets missing from
// the graph estimate 0.
type Cache struct {
	g      *core.Graph
	fn     Func
	target *core.Node
	vals   map[string]float64
}

// NewCache binds fn to g and target.
func NewCache(g *core.Graph, fn Func, target string) *Cache {
	c := &Cache{g: g, fn: fn, vals: make(map[string]float64)}
	if g != nil {
		c.target, _ = g.Node(target)
	}

	return c
}

// H returns the cached estimate for id, computing it on first use.
func (c *Cache) H(id string) float64 {
	if v, ok := c.vals[id]; ok {
		return v
	}
	var v float64
	if c.target != nil && c.g != nil {
		if n, ok := c.g.Node(id); ok {
			v = c.fn(n, c.target)
		}
	}
	c.vals[id] = v

	return v
}

// Known reports whether id has been estimated already.
func (c *Cache) Known(id string) bool {
	_, ok := c.vals[id]

	return ok
}

// Len returns the number of cached estimates.
func (c *Cache) Len() int { return len(c.vals) }
