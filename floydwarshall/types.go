package floydwarshall

// Pseudocode lines highlighted by the trace, 0-based.
const (
	LineInit    = 1
	LineRound   = 3
	LineUpdate  = 8
	LineExtract = 10
)

var pseudocode = []string{
	"def FloydWarshall(graph):",
	"    dist ← adjacency matrix",
	"    next ← initialise next-hop matrix",
	"    for k in 0 … n-1:",
	"        for i in 0 … n-1:",
	"            for j in 0 … n-1:",
	"                if dist[i][k]+dist[k][j]",
	"                      < dist[i][j]:",
	"                    dist[i][j] = …",
	"                    next[i][j] = next[i][k]",
	"    return dist, next",
}

// Pseudocode returns a copy of the displayed listing.
func Pseudocode() []string {
	return append([]string(nil), pseudocode...)
}
