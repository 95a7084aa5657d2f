// Package dijkstra traces Dijkstra's single-pair shortest-path search on a
// weighted core.Graph.
//
// Dijkstra maintains a min-priority queue of tentative distances and
// finalises one node per pop. The trace uses the "lazy decrease-key"
// strategy: improved distances are pushed as new entries and outdated
// entries are reported as stale when popped.
//
// Complexity:
//
//	– Time:  O((V + E) log V) for the search itself.
//	– Space: O(V + E); the queue may hold one entry per relaxation.
//
// Options:
//
//	– MaxDistance:      tentative distances above this cap are never queued.
//	– InfEdgeThreshold: edges with weight >= this threshold are impassable.
//
// Correctness requires non-negative weights. Negative edges are traced
// as-is; callers that need them should use Bellman–Ford.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors used as panic values by Option constructors.
var (
	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative
	// or NaN, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Pseudocode lines highlighted by the trace, 0-based.
const (
	LineInit      = 2
	LinePop       = 6
	LineStale     = 7
	LineTarget    = 8
	LineFinalized = 9
	LineRelax     = 10
	LineNotFound  = 15
)

var pseudocode = []string{
	"def Dijkstra(graph, source, target):",
	"    dist ← {v: ∞ for v in V}",
	"    dist[source] ← 0",
	"    pq ← [(0, source)]",
	"    parent ← {}",
	"    while pq is not empty:",
	"        (d, node) ← pq.pop_min()",
	"        if d > dist[node]: continue",
	"        if node == target: return path",
	"        for (neighbour, w) in adj(node):",
	"            new_dist ← dist[node] + w",
	"            if new_dist < dist[neighbour]:",
	"                dist[neighbour] ← new_dist",
	"                parent[neighbour] = node",
	"                pq.push((new_dist, nbr))",
	"    return NOT FOUND",
}

// Pseudocode returns a copy of the displayed listing.
func Pseudocode() []string {
	return append([]string(nil), pseudocode...)
}

// Options configures a traced run.
//
// MaxDistance      – tentative distances above this value are not queued.
// InfEdgeThreshold – edges with weight ≥ this value are skipped entirely.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Steps.
type Option func(*Options)

// WithMaxDistance caps the explored distance. It panics on a negative cap.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// It panics on a non-positive threshold.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// DefaultOptions returns no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
