package dfs

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is the panic value of an Option constructor that was
// given a meaningless argument.
var ErrOptionViolation = errors.New("dfs: invalid option supplied")

// Pseudocode lines highlighted by the trace, 0-based.
const (
	LineInit     = 1
	LineSkip     = 6
	LineVisit    = 7
	LineTarget   = 8
	LineExamine  = 9
	LinePush     = 12
	LineNotFound = 13
)

var pseudocode = []string{
	"def DFS(graph, source, target):",
	"    stack ← [source]",
	"    visited ← {}",
	"    parent ← {}",
	"    while stack is not empty:",
	"        node ← stack.pop()",
	"        if node in visited: continue",
	"        visited.add(node)",
	"        if node == target: return path",
	"        for neighbour in adj(node):",
	"            if neighbour not visited:",
	"                parent[neighbour] = node",
	"                stack.push(neighbour)",
	"    return NOT FOUND",
}

// Pseudocode returns a copy of the displayed listing.
func Pseudocode() []string {
	return append([]string(nil), pseudocode...)
}

// Options tunes a traced search.
type Options struct {
	// MaxDepth, if > 0, refuses to push nodes deeper than this many hops
	// along the current parent chain.
	MaxDepth int

	// FilterNeighbor can veto the edge curr→nbr by returning false.
	FilterNeighbor func(curr, nbr string) bool
}

// Option configures Steps.
type Option func(*Options)

// DefaultOptions returns no depth limit and no filtering.
func DefaultOptions() Options {
	return Options{FilterNeighbor: func(_, _ string) bool { return true }}
}

// WithMaxDepth limits pushes to d hops (d == 0 means unlimited).
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
