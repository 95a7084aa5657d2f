package greedy

import "github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/heuristic"

// Pseudocode lines highlighted by the trace, 0-based.
const (
	LineInit     = 1
	LinePop      = 7
	LineTarget   = 8
	LinePush     = 12
	LineNotFound = 13
)

var pseudocode = []string{
	"def GreedyBFS(graph, source, target, h):",
	"    open_set ← [(h(source), source)]",
	"    visited ← {}",
	"    parent ← {}",
	"    while open_set:",
	"        (_, node) ← open_set.pop_min()",
	"        if node in visited: continue",
	"        visited.add(node)",
	"        if node == target: return path",
	"        for (nbr, _) in adj(node):",
	"            if nbr not in visited:",
	"                parent[nbr] = node",
	"                open_set.push((h(nbr), nbr))",
	"    return NOT FOUND",
}

// Pseudocode returns a copy of the displayed listing.
func Pseudocode() []string {
	return append([]string(nil), pseudocode...)
}

// Options configures a traced run.
type Options struct {
	Heuristic string
}

// Option configures Steps.
type Option func(*Options)

// WithHeuristic selects the distance estimate by name; unknown names fall
// back to heuristic.Default.
func WithHeuristic(name string) Option {
	return func(o *Options) { o.Heuristic = name }
}

// DefaultOptions returns the default heuristic.
func DefaultOptions() Options {
	return Options{Heuristic: heuristic.Default}
}
