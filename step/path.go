package step

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
)

// CheckEndpoints returns a human-readable reason why a search between
// source and target cannot start, or "" when it can. Generators turn a
// non-empty reason into an immediate not-found step. A blocked endpoint
// can never be entered, so it ends the search before any expansion.
func CheckEndpoints(g *core.Graph, source, target string) string {
	switch {
	case g == nil:
		return "there is no graph to search"
	case !g.HasNode(source):
		return fmt.Sprintf("source '%s' does not exist", source)
	case !g.HasNode(target):
		return fmt.Sprintf("target '%s' does not exist", target)
	case g.IsBlocked(source):
		return fmt.Sprintf("source '%s' is blocked", source)
	case g.IsBlocked(target):
		return fmt.Sprintf("target '%s' is blocked", target)
	}

	return ""
}

// Reconstruct follows parent links from target back to source. It returns
// nil when target is not linked to source. Cyclic parent maps terminate.
func Reconstruct(parent map[string]string, source, target string) []string {
	path := []string{target}
	for cur := target; cur != source; {
		p, ok := parent[cur]
		if !ok || len(path) > len(parent)+1 {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path
}

// ChoosePath marks every hop of path as a chosen edge, resolving each hop
// with Graph.EdgeBetween.
func ChoosePath(b *Builder, g *core.Graph, path []string) {
	for i := 0; i+1 < len(path); i++ {
		if e, ok := g.EdgeBetween(path[i], path[i+1]); ok {
			b.ChooseEdge(e.ID)
		}
	}
}

// Arrow renders path as "A → B → C".
func Arrow(path []string) string {
	return strings.Join(path, " → ")
}
