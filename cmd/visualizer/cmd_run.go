package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/internal/logging"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/recorder"
)

// endpointFlags name the search endpoints and heuristic.
type endpointFlags struct {
	source    string
	target    string
	heuristic string
}

func (e *endpointFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&e.source, "from", "s", "", "source node (default: lowest node ID)")
	cmd.Flags().StringVarP(&e.target, "to", "t", "", "target node (default: highest node ID)")
	cmd.Flags().StringVar(&e.heuristic, "heuristic", "", "heuristic for A* and greedy (default from config)")
}

func newRunCmd(a *app) *cobra.Command {
	var (
		gf      graphFlags
		ef      endpointFlags
		steps   bool
		verbose bool
		asJSON  bool
		export  string
		save    bool
	)
	cmd := &cobra.Command{
		Use:   "run ALGORITHM",
		Short: "Record one algorithm run and print its metrics",
		Example: `  visualizer run dijkstra --kind random -n 12 --max-weight 9 --seed 3 --steps
  visualizer run astar --graph maze.json --from 0_0 --to 9_9 --heuristic manhattan --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gf.load(cmd.InOrStdin())
			if err != nil {
				return &exitError{code: exitUsage, err: err}
			}
			rec, m, err := a.record(cmd.Context(), args[0], g, ef)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(m)
			}
			p := newStepPrinter(a.stdout, rec.Algorithm(), verbose)
			if steps {
				for _, s := range rec.Steps() {
					p.print(s)
				}
				fmt.Fprintln(a.stdout)
			}
			p.summary(m)

			if export == "" && !save {
				return nil
			}
			snap, err := rec.Export()
			if err != nil {
				return err
			}
			if export != "" {
				if err := writeSnapshot(export, snap); err != nil {
					return err
				}
				a.logger.Info("run exported", "run_id", snap.RunID, "path", export)
			}
			if save {
				if err := a.archive.Save(cmd.Context(), snap); err != nil {
					return fmt.Errorf("save run: %w", err)
				}
				a.logger.Info("run archived", "run_id", snap.RunID)
			}

			return nil
		},
	}
	gf.bind(cmd.Flags())
	ef.bind(cmd)
	cmd.Flags().BoolVar(&steps, "steps", false, "print every step's explanation")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "with --steps, also print pseudocode and state")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the metrics as JSON")
	cmd.Flags().StringVarP(&export, "export", "e", "", "write the run snapshot to this file")
	cmd.Flags().BoolVar(&save, "save", false, "store the run in the archive")

	return cmd
}

// record runs algo on g to completion. Argument errors map to exitUsage.
func (a *app) record(ctx context.Context, algo string, g *core.Graph, ef endpointFlags) (*recorder.Recorder, recorder.RunMetrics, error) {
	if err := ctx.Err(); err != nil {
		return nil, recorder.RunMetrics{}, err
	}
	source, target := defaultEndpoints(g, ef.source, ef.target)
	h := ef.heuristic
	if h == "" {
		h = a.cfg.Algorithm.Heuristic
	}

	rec := a.recorder()
	if err := rec.Start(algo, source, target, g, h); err != nil {
		if errors.Is(err, recorder.ErrUnknownAlgorithm) || errors.Is(err, core.ErrNodeNotFound) {
			return nil, recorder.RunMetrics{}, &exitError{code: exitUsage, err: err}
		}
		return nil, recorder.RunMetrics{}, err
	}
	m, err := rec.RunToCompletion()
	if err != nil {
		return nil, recorder.RunMetrics{}, err
	}
	logging.FromContext(ctx).Info("run recorded",
		"run_id", m.RunID,
		"algo", m.AlgoKey,
		"steps", m.TotalSteps,
		"path_found", m.PathFound)

	return rec, m, nil
}

func writeSnapshot(path string, snap recorder.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := snap.Encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("export: %w", err)
	}

	return f.Close()
}
