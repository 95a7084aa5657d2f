package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/recorder"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/registry"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// stepPrinter renders trace steps as text. With color set the current
// pseudocode line and the outcome are highlighted with ANSI escapes.
type stepPrinter struct {
	w          io.Writer
	color      bool
	pseudocode []string
	verbose    bool
}

func newStepPrinter(w io.Writer, info registry.AlgoInfo, verbose bool) *stepPrinter {
	return &stepPrinter{w: w, color: isTerminal(w), pseudocode: info.Pseudocode, verbose: verbose}
}

func (p *stepPrinter) paint(code, s string) string {
	if !p.color {
		return s
	}

	return code + s + ansiReset
}

func (p *stepPrinter) print(s step.Step) {
	fmt.Fprintf(p.w, "%s %s\n", p.paint(ansiBold, fmt.Sprintf("[%d]", s.Number)), s.Explanation)
	if !p.verbose {
		return
	}
	if s.PseudocodeLine >= 0 && s.PseudocodeLine < len(p.pseudocode) {
		fmt.Fprintf(p.w, "     %s\n", p.paint(ansiDim, fmt.Sprintf("%2d  %s", s.PseudocodeLine, p.pseudocode[s.PseudocodeLine])))
	}
	if s.CurrentNode != "" {
		fmt.Fprintf(p.w, "     current:  %s\n", s.CurrentNode)
	}
	fmt.Fprintf(p.w, "     visited:  %s\n", list(s.Visited))
	fmt.Fprintf(p.w, "     frontier: %s\n", list(s.Frontier))
	if len(s.Distances) > 0 {
		fmt.Fprintf(p.w, "     dist:     %s\n", distances(s.Distances))
	}
	if s.Overlay != nil {
		fmt.Fprintf(p.w, "     overlay:  %s\n", s.Overlay.Kind())
	}
	if len(s.Path) > 0 {
		fmt.Fprintf(p.w, "     path:     %s\n", p.paint(ansiGreen, step.Arrow(s.Path)))
	}
}

// summary prints the metrics block of a completed run.
func (p *stepPrinter) summary(m recorder.RunMetrics) {
	outcome := p.paint(ansiGreen, "path found")
	switch {
	case m.NegativeCycle:
		outcome = p.paint(ansiRed, "negative cycle")
	case !m.PathFound:
		outcome = p.paint(ansiRed, "no path")
	}

	tw := newTable(p.w)
	fmt.Fprintf(tw, "algorithm\t%s\n", m.AlgoLabel)
	fmt.Fprintf(tw, "run\t%s\n", m.RunID)
	fmt.Fprintf(tw, "outcome\t%s\n", outcome)
	if m.PathFound {
		fmt.Fprintf(tw, "path length\t%d\n", m.PathLength)
		fmt.Fprintf(tw, "path cost\t%g\n", m.PathCost)
	}
	if m.Heuristic != "" {
		fmt.Fprintf(tw, "heuristic\t%s\n", m.Heuristic)
	}
	fmt.Fprintf(tw, "nodes visited\t%d\n", m.NodesVisited)
	fmt.Fprintf(tw, "edges relaxed\t%d\n", m.EdgesRelaxed)
	fmt.Fprintf(tw, "steps\t%d\n", m.TotalSteps)
	fmt.Fprintf(tw, "wall time\t%s\n", m.WallTime)
	fmt.Fprintf(tw, "memory\t~%d B\n", m.MemoryBytes)
	_ = tw.Flush()
}

func list(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}

	return strings.Join(ids, " ")
}

func distances(d map[string]float64) string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%g", k, d[k])
	}

	return strings.Join(parts, " ")
}
