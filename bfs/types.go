package bfs

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is the panic value of an Option constructor that was
// given a meaningless argument.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Pseudocode lines highlighted by the trace, 0-based.
const (
	LineInit     = 1
	LineDequeue  = 5
	LineTarget   = 6
	LineExamine  = 7
	LineEnqueue  = 11
	LineNotFound = 12
)

var pseudocode = []string{
	"def BFS(graph, source, target):",
	"    queue ← [source]",
	"    visited ← {source}",
	"    parent ← {}",
	"    while queue is not empty:",
	"        node ← queue.dequeue()",
	"        if node == target: return path",
	"        for neighbour in adj(node):",
	"            if neighbour not visited:",
	"                visited.add(neighbour)",
	"                parent[neighbour] = node",
	"                queue.enqueue(neighbour)",
	"    return NOT FOUND",
}

// Pseudocode returns a copy of the displayed listing.
func Pseudocode() []string {
	return append([]string(nil), pseudocode...)
}

// Options tunes a traced search.
type Options struct {
	// MaxDepth, if > 0, stops discovery beyond this many hops from the source.
	MaxDepth int

	// FilterNeighbor can veto the edge curr→nbr by returning false.
	FilterNeighbor func(curr, nbr string) bool
}

// Option configures Steps.
type Option func(*Options)

// DefaultOptions returns no depth limit and no filtering.
func DefaultOptions() Options {
	return Options{
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithMaxDepth limits discovery to d hops (d == 0 means unlimited).
// It panics on a negative depth.
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic(fmt.Sprintf("%v: MaxDepth cannot be negative (%d)", ErrOptionViolation, d))
	}

	return func(o *Options) { o.MaxDepth = d }
}

// WithFilterNeighbor installs an edge veto. A nil fn is ignored.
func WithFilterNeighbor(fn func(curr, nbr string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
