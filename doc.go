// Package visualizer records classic graph algorithms one instant at a
// time, so a search can be paused, stepped backwards, replayed and
// compared instead of only returning its answer.
//
// Every algorithm is a step generator: a lazy iter.Seq[step.Step] that
// yields an immutable snapshot of the search (node and edge states,
// visited set, frontier, distances, pseudocode line, narration and an
// algorithm-specific overlay) after each meaningful action.
//
// The module is organized into small packages:
//
//	core/          - thread-safe Graph, Node, Edge and their visual states
//	step/          - Step, the Builder generators fill, tracing helpers
//	heuristic/     - manhattan, euclidean, octile and zero estimates
//	bfs/ dfs/      - unweighted traversals
//	dijkstra/      - single-source shortest paths, non-negative weights
//	astar/         - heuristic-guided shortest path
//	bidirectional/ - BFS from both endpoints until the frontiers meet
//	bellmanford/   - round-based relaxation with negative-cycle detection
//	floydwarshall/ - all-pairs distances with a matrix overlay
//	greedy/        - greedy best-first search
//	registry/      - the catalogue of algorithms and their pseudocode
//	stepper/       - cursor and auto-play state machine over a generator
//	recorder/      - full runs, metrics, snapshots and comparisons
//	builder/       - grids, mazes, random and scale-free graphs, text import
//	store/         - in-memory and SQLite run archives
//	emit/          - run and step events to logs, traces or a buffer
//	telemetry/     - Prometheus metrics of completed runs
//	cmd/visualizer - the command line front end
//
// Quick example:
//
//	g, _ := builder.ParseAdjacencyList("A: B(4) C(1)\nC: B(2)\nB: D(1)")
//	rec := recorder.New()
//	_ = rec.Start(registry.KeyDijkstra, "A", "D", g, "")
//	m, _ := rec.RunToCompletion()
//	fmt.Println(m.PathCost, m.TotalSteps)
package visualizer
