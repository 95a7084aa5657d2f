// Package dfs traces iterative depth-first search over a core.Graph.
//
// The search uses an explicit stack and marks nodes visited when they are
// popped. A node pushed more than once is reported as skipped on its later
// pops. Its parent is the node that pushed it last before its first pop,
// so the reported path always follows the edge the search actually took.
//
// Steps are emitted for initialisation, skip, visit, edge examination,
// push, target found and stack exhausted. The StackOverlay lists the stack
// bottom first.
//
// Complexity:
//
//   - Time:   O(V + E) pushes and pops (a node may be pushed once per incoming edge).
//   - Memory: O(E) for the stack in the worst case.
//
// Options:
//
//   - WithMaxDepth(d)          refuses pushes deeper than d hops.
//   - WithFilterNeighbor(fn)   vetoes individual edges.
package dfs
