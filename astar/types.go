package astar

import "github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/heuristic"

// Pseudocode lines highlighted by the trace, 0-based.
const (
	LineInit     = 2
	LinePop      = 6
	LineTarget   = 7
	LineRelax    = 10
	LineNotFound = 16
)

var pseudocode = []string{
	"def AStar(graph, source, target, h):",
	"    g[source] ← 0",
	"    f[source] ← h(source, target)",
	"    open_set ← [(f[source], source)]",
	"    parent ← {}",
	"    while open_set:",
	"        (_, node) ← open_set.pop_min()",
	"        if node == target: return path",
	"        closed.add(node)",
	"        for (nbr, w) in adj(node):",
	"            tentative_g ← g[node] + w",
	"            if tentative_g < g[nbr]:",
	"                parent[nbr] = node",
	"                g[nbr] ← tentative_g",
	"                f[nbr] ← g[nbr] + h(nbr)",
	"                open_set.push((f[nbr], nbr))",
	"    return NOT FOUND",
}

// Pseudocode returns a copy of the displayed listing.
func Pseudocode() []string {
	return append([]string(nil), pseudocode...)
}

// Options configures a traced run.
type Options struct {
	// Heuristic names a heuristic.Lookup entry; unknown names fall back
	// to heuristic.Default.
	Heuristic string
}

// Option configures Steps.
type Option func(*Options)

// WithHeuristic selects the distance estimate by name.
func WithHeuristic(name string) Option {
	return func(o *Options) { o.Heuristic = name }
}

// DefaultOptions returns the default heuristic.
func DefaultOptions() Options {
	return Options{Heuristic: heuristic.Default}
}
