package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/store"
)

func newRunsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect the run archive",
	}
	cmd.AddCommand(newRunsListCmd(a), newRunsShowCmd(a), newRunsDeleteCmd(a))

	return cmd
}

func newRunsListCmd(a *app) *cobra.Command {
	var (
		f      store.Filter
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := a.archive.List(cmd.Context(), f)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			tw := newTable(a.stdout)
			fmt.Fprintln(tw, "RUN\tALGORITHM\tFROM\tTO\tPATH\tSTEPS\tCREATED")
			for _, s := range rows {
				path := "none"
				if s.PathFound {
					path = fmt.Sprintf("cost %g", s.PathCost)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
					s.RunID, s.AlgoKey, s.Source, s.Target, path, s.TotalSteps, s.CreatedAt.Format(time.DateTime))
			}

			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&f.AlgoKey, "algo", "", "only runs of this algorithm")
	cmd.Flags().IntVar(&f.Limit, "limit", 0, "show at most this many runs")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the listing as JSON")

	return cmd
}

func newRunsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show RUN_ID",
		Short: "Print the metrics of an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.loadSnapshot(cmd.Context(), "", args)
			if err != nil {
				return err
			}
			info, _ := a.registry.Lookup(snap.AlgoKey)
			newStepPrinter(a.stdout, info, false).summary(snap.Metrics)

			return nil
		},
	}
}

func newRunsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete RUN_ID...",
		Aliases: []string{"rm"},
		Short:   "Remove runs from the archive",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var missing []error
			for _, id := range args {
				err := a.archive.Delete(cmd.Context(), id)
				switch {
				case errors.Is(err, store.ErrNotFound):
					missing = append(missing, fmt.Errorf("%s: %w", id, err))
				case err != nil:
					return err
				default:
					fmt.Fprintf(a.stdout, "deleted %s\n", id)
				}
			}
			if len(missing) > 0 {
				return &exitError{code: exitNotFound, err: errors.Join(missing...)}
			}

			return nil
		},
	}
}
