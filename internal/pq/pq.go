// Package pq is the lazy min-priority queue shared by the weighted
// searches. Entries are ordered by (priority, node ID, insertion order) so
// traces never depend on heap internals.
package pq

import (
	"container/heap"
	"slices"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

type item struct {
	node     string
	priority float64
	seq      uint64
}

func less(a, b item) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.node != b.node {
		return a.node < b.node
	}

	return a.seq < b.seq
}

// items implements heap.Interface.
type items []item

func (h items) Len() int           { return len(h) }
func (h items) Less(i, j int) bool { return less(h[i], h[j]) }
func (h items) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *items) Push(x any)        { *h = append(*h, x.(item)) }
func (h *items) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// Queue is a min-heap of (node, priority) with lazy decrease-key: callers
// push duplicates and discard stale entries on pop.
type Queue struct {
	h   items
	seq uint64
}

// New returns an empty queue.
func New() *Queue { return &Queue{} }

// Push inserts node with the given priority.
func (q *Queue) Push(node string, priority float64) {
	q.seq++
	heap.Push(&q.h, item{node: node, priority: priority, seq: q.seq})
}

// Pop removes and returns the minimum entry.
func (q *Queue) Pop() (step.Entry, bool) {
	if len(q.h) == 0 {
		return step.Entry{}, false
	}
	it := heap.Pop(&q.h).(item)

	return step.Entry{Node: it.node, Priority: it.priority}, true
}

// Len returns the number of entries, stale ones included.
func (q *Queue) Len() int { return len(q.h) }

// Entries returns the queue contents in pop order, skipping nodes for
// which skip returns true. A nil skip keeps everything.
func (q *Queue) Entries(skip func(node string) bool) []step.Entry {
	sorted := slices.Clone(q.h)
	slices.SortFunc(sorted, func(a, b item) int {
		if less(a, b) {
			return -1
		}
		if less(b, a) {
			return 1
		}

		return 0
	})
	out := make([]step.Entry, 0, len(sorted))
	for _, it := range sorted {
		if skip != nil && skip(it.node) {
			continue
		}
		out = append(out, step.Entry{Node: it.node, Priority: it.priority})
	}

	return out
}

// Nodes returns the distinct nodes of Entries(skip) in pop order.
func (q *Queue) Nodes(skip func(node string) bool) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range q.Entries(skip) {
		if seen[e.Node] {
			continue
		}
		seen[e.Node] = true
		out = append(out, e.Node)
	}

	return out
}
