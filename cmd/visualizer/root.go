package main

import (
	"github.com/spf13/cobra"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/internal/logging"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "visualizer",
		Short: "Step through classic graph algorithms",
		Long: `visualizer records graph algorithms one step at a time.

Build or load a graph, run BFS, DFS, Dijkstra, A*, bidirectional BFS,
Bellman-Ford, Floyd-Warshall or greedy best-first search on it, then
print the trace, replay it at a chosen speed or compare two algorithms.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd.Context()); err != nil {
				return err
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "log format (text, json)")
	pf.StringVar(&a.flags.archive, "archive", "", "SQLite run archive; empty keeps runs in memory")
	pf.StringVar(&a.flags.metricsOut, "metrics-out", "", `write Prometheus metrics to this file ("-" for stderr)`)
	pf.BoolVar(&a.flags.tracing, "trace", false, "print OpenTelemetry spans to stderr")

	root.AddCommand(
		newListCmd(a),
		newGraphCmd(a),
		newRunCmd(a),
		newCompareCmd(a),
		newReplayCmd(a),
		newRunsCmd(a),
	)

	return root
}
