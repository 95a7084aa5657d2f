package bellmanford

// Pseudocode lines highlighted by the trace, 0-based.
const (
	LineInit          = 2
	LineRound         = 4
	LineRelax         = 6
	LineDetector      = 10
	LineNegativeCycle = 12
	LineDone          = 13
)

var pseudocode = []string{
	"def BellmanFord(graph, source):",
	"    dist ← {v: ∞ for v in V}",
	"    dist[source] ← 0",
	"    parent ← {}",
	"    for i in 1 … |V|-1:",
	"        for each edge (u, v, w):",
	"            if dist[u] + w < dist[v]:",
	"                dist[v] ← dist[u] + w",
	"                parent[v] = u",
	"    // negative-cycle check:",
	"    for each edge (u, v, w):",
	"        if dist[u] + w < dist[v]:",
	"            return NEGATIVE CYCLE",
	"    return dist, parent",
}

// Pseudocode returns a copy of the displayed listing.
func Pseudocode() []string {
	return append([]string(nil), pseudocode...)
}
