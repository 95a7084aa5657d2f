package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/recorder"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/stepper"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/store"
)

func newReplayCmd(a *app) *cobra.Command {
	var (
		file    string
		play    bool
		speed   string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "replay [RUN_ID]",
		Short: "Replay a recorded run from a snapshot file or the archive",
		Example: `  visualizer replay --file run.json --play --speed fast
  visualizer replay 0f8c2d1e-... --archive runs.db -v`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.loadSnapshot(cmd.Context(), file, args)
			if err != nil {
				return err
			}
			info, _ := a.registry.Lookup(snap.AlgoKey)
			p := newStepPrinter(a.stdout, info, verbose)

			st, err := recorder.Replay(snap,
				stepper.WithLogger(a.logger),
				stepper.WithOnStep(func(s *step.Step) { p.print(*s) }),
			)
			if err != nil {
				return err
			}
			if !play {
				for {
					ok, err := st.NextStep()
					if err != nil {
						return err
					}
					if !ok {
						break
					}
				}
			} else {
				if speed == "" {
					speed = a.cfg.Playback.Speed
				}
				if err := st.SetSpeed(speed); err != nil {
					return &exitError{code: exitUsage, err: fmt.Errorf("--speed %q: %w", speed, err)}
				}
				if err := autoplay(cmd.Context(), st); err != nil {
					return err
				}
			}

			fmt.Fprintln(a.stdout)
			p.summary(snap.Metrics)

			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "snapshot file written by run --export")
	cmd.Flags().BoolVar(&play, "play", false, "advance at the playback speed instead of printing at once")
	cmd.Flags().StringVar(&speed, "speed", "", "playback speed: slow, medium, fast, turbo (default from config)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print pseudocode and state with every step")

	return cmd
}

// autoplay drives st's cooperative Tick until the trace ends or ctx is
// cancelled.
func autoplay(ctx context.Context, st *stepper.Stepper) error {
	if err := st.Play(); err != nil {
		return err
	}
	ticker := time.NewTicker(max(st.Interval()/4, stepper.MinInterval/2))
	defer ticker.Stop()

	for !st.IsFinished() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if _, err := st.Tick(); err != nil {
			return err
		}
	}

	return nil
}

// loadSnapshot reads a snapshot from file or, with a run ID argument, from
// the archive.
func (a *app) loadSnapshot(ctx context.Context, file string, args []string) (recorder.Snapshot, error) {
	switch {
	case file != "" && len(args) > 0:
		return recorder.Snapshot{}, &exitError{code: exitUsage, err: errors.New("give either --file or a run ID, not both")}
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return recorder.Snapshot{}, fmt.Errorf("replay: %w", err)
		}
		defer f.Close()
		return recorder.DecodeSnapshot(f)
	case len(args) == 1:
		snap, err := a.archive.Load(ctx, args[0])
		if errors.Is(err, store.ErrNotFound) {
			return recorder.Snapshot{}, &exitError{code: exitNotFound, err: err}
		}
		return snap, err
	default:
		return recorder.Snapshot{}, &exitError{code: exitUsage, err: errors.New("nothing to replay: pass --file or a run ID")}
	}
}
