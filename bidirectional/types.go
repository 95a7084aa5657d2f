package bidirectional

// Pseudocode lines highlighted by the trace, 0-based.
const (
	LineInit         = 1
	LineForward      = 6
	LineForwardMeet  = 8
	LineBackward     = 10
	LineBackwardMeet = 12
	LineNotFound     = 13
)

var pseudocode = []string{
	"def BidiBFS(graph, source, target):",
	"    qF ← [source];  visitedF ← {source}",
	"    qB ← [target];  visitedB ← {target}",
	"    parentF, parentB ← {}, {}",
	"    while qF or qB:",
	"        if qF:",
	"            expand one layer of qF",
	"            if frontier intersects visitedB:",
	"                reconstruct & return path",
	"        if qB:",
	"            expand one layer of qB",
	"            if frontier intersects visitedF:",
	"                reconstruct & return path",
	"    return NOT FOUND",
}

// Pseudocode returns a copy of the displayed listing.
func Pseudocode() []string {
	return append([]string(nil), pseudocode...)
}
