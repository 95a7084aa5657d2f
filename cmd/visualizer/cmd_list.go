package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/heuristic"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/registry"
)

func newListCmd(a *app) *cobra.Command {
	var (
		tag     string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the available algorithms",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			algos := a.registry.All()
			if tag != "" {
				algos = a.registry.ByTag(tag)
			}

			tw := newTable(a.stdout)
			fmt.Fprintln(tw, "KEY\tNAME\tTIME\tSPACE\tTAGS")
			for _, info := range algos {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					info.Key, info.Label, info.TimeComplexity, info.SpaceComplexity, strings.Join(info.Tags, ","))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if verbose {
				for _, info := range algos {
					printInfo(a, info)
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "only list algorithms carrying this tag")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print descriptions and pseudocode")

	return cmd
}

func printInfo(a *app, info registry.AlgoInfo) {
	fmt.Fprintf(a.stdout, "\n%s (%s)\n", info.Label, info.Key)
	if info.Description != "" {
		fmt.Fprintf(a.stdout, "  %s\n", info.Description)
	}
	if info.HasHeuristic {
		fmt.Fprintf(a.stdout, "  heuristics: %s\n", strings.Join(heuristic.Names(), ", "))
	}
	for i, line := range info.Pseudocode {
		fmt.Fprintf(a.stdout, "  %2d  %s\n", i, line)
	}
}
