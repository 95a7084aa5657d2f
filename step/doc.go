// Package step defines the snapshot model shared by every algorithm
// generator: the immutable Step, its algorithm-specific Overlay variants,
// the mutable Builder a generator fills between yields, and the Trace that
// numbers steps and carries running tallies.
//
// Generators are iter.Seq[Step] functions. Pull turns one into a Generator
// for consumers that need to advance step by step and abandon early:
//
//	gen := step.Pull(bfs.Steps(g, "A", "F"))
//	defer gen.Stop()
//	for s, ok := gen.Next(); ok; s, ok = gen.Next() {
//		render(s)
//	}
//
// Steps are values; every container in a Step is a private copy.
package step
