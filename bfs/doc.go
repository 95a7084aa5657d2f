// Package bfs traces breadth-first search over a core.Graph as a sequence
// of step.Step snapshots.
//
// What
//
//   - Explores nodes in non-decreasing hop count from the source.
//   - Emits a step at every meaningful event: initialisation, dequeue,
//     edge examination, enqueue, target reached, queue exhausted.
//   - The final step of a successful search carries the fewest-hop path with
//     every path edge marked chosen.
//
// Determinism
//
//	Neighbours are examined in core.Graph.Neighbors order (edge creation
//	order), so the trace is fully reproducible for a given graph.
//
// Obstacles
//
//	Blocked neighbours are skipped silently. A blocked or missing source,
//	a missing target, or a nil graph yields a single not-found step.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E) search, O(V·(V + E)) including step snapshots.
//   - Memory: O(V) live state; the consumer decides how many steps to keep.
//
// Usage
//
//	for s := range bfs.Steps(g, "A", "F") {
//		fmt.Println(s.Number, s.Explanation)
//	}
package bfs
