package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/builder"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
)

// Graph sources.
const (
	kindGrid      = "grid"
	kindRandom    = "random"
	kindScaleFree = "scale-free"
	kindPath      = "path"
	kindCycle     = "cycle"

	formatAuto   = "auto"
	formatJSON   = "json"
	formatList   = "list"
	formatMatrix = "matrix"
)

var errGraphSource = errors.New("invalid graph source")

// graphFlags select where a command's graph comes from: a file in one of
// the text formats, or one of the builder topologies.
type graphFlags struct {
	file   string
	format string

	kind     string
	rows     int
	cols     int
	n        int
	m        int
	p        float64
	walls    float64
	seed     int64
	directed bool
	letters  bool
	minW     int
	maxW     int
}

func (f *graphFlags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.file, "graph", "g", "", `graph file ("-" for stdin); overrides --kind`)
	fs.StringVar(&f.format, "format", formatAuto, "graph file format: auto, json, list, matrix")
	fs.StringVar(&f.kind, "kind", kindGrid, "generated topology: grid, random, scale-free, path, cycle")
	fs.IntVar(&f.rows, "rows", 5, "grid rows")
	fs.IntVar(&f.cols, "cols", 5, "grid columns")
	fs.IntVarP(&f.n, "nodes", "n", 8, "node count for random, scale-free, path and cycle")
	fs.IntVarP(&f.m, "attach", "m", 2, "edges per new node for scale-free")
	fs.Float64VarP(&f.p, "prob", "p", 0.2, "edge probability for random")
	fs.Float64Var(&f.walls, "walls", 0, "probability of blocking an interior grid cell")
	fs.Int64Var(&f.seed, "seed", 0, "random seed; 0 uses the clock")
	fs.BoolVar(&f.directed, "directed", false, "build a directed graph")
	fs.BoolVar(&f.letters, "letters", false, "name generated nodes A, B, ..., AA (grids keep row_col IDs)")
	fs.IntVar(&f.minW, "min-weight", 1, "smallest generated edge weight")
	fs.IntVar(&f.maxW, "max-weight", 0, "largest generated edge weight; 0 builds an unweighted graph")
}

// load returns the graph the flags describe, reading from stdin for "-".
func (f *graphFlags) load(stdin io.Reader) (*core.Graph, error) {
	if f.file != "" {
		return f.read(stdin)
	}

	return f.generate()
}

func (f *graphFlags) read(stdin io.Reader) (*core.Graph, error) {
	var (
		data []byte
		err  error
	)
	if f.file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(f.file)
	}
	if err != nil {
		return nil, fmt.Errorf("read graph: %w", err)
	}

	gopts := []core.GraphOption{core.WithDirected(f.directed)}
	format := f.format
	if format == formatAuto {
		format = detectFormat(string(data))
	}
	switch format {
	case formatJSON:
		g := core.NewGraph()
		if err := json.Unmarshal(data, g); err != nil {
			return nil, fmt.Errorf("read graph %s: %w", f.file, err)
		}
		return g, nil
	case formatList:
		return builder.ParseAdjacencyList(string(data), gopts...)
	case formatMatrix:
		return builder.ParseAdjacencyMatrix(string(data), gopts...)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", errGraphSource, f.format)
	}
}

// detectFormat picks JSON for an object and adjacency-list text otherwise.
// Matrices must be named explicitly.
func detectFormat(text string) string {
	if strings.HasPrefix(strings.TrimSpace(text), "{") {
		return formatJSON
	}

	return formatList
}

func (f *graphFlags) generate() (*core.Graph, error) {
	if f.maxW != 0 && f.maxW < f.minW {
		return nil, fmt.Errorf("%w: --max-weight %d < --min-weight %d", errGraphSource, f.maxW, f.minW)
	}
	if f.walls < 0 || f.walls > 1 {
		return nil, fmt.Errorf("%w: --walls %g not in [0,1]", errGraphSource, f.walls)
	}

	seed := f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	weighted := f.maxW > 0
	gopts := []core.GraphOption{core.WithDirected(f.directed), core.WithWeighted(weighted)}
	bopts := []builder.BuilderOption{builder.WithSeed(seed)}
	if weighted {
		bopts = append(bopts, builder.WithIntWeights(f.minW, f.maxW))
	}
	if f.letters {
		bopts = append(bopts, builder.WithLetterIDs())
	}

	var cons builder.Constructor
	switch f.kind {
	case kindGrid:
		bopts = append(bopts, builder.WithWallProbability(f.walls))
		cons = builder.Grid(f.rows, f.cols)
	case kindRandom:
		cons = builder.RandomConnected(f.n, f.p)
	case kindScaleFree:
		cons = builder.ScaleFree(f.n, f.m)
	case kindPath:
		cons = builder.Path(f.n)
	case kindCycle:
		cons = builder.Cycle(f.n)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", errGraphSource, f.kind)
	}

	return builder.BuildGraph(gopts, bopts, cons)
}

// defaultEndpoints fills empty endpoints with the first and last node so
// generated graphs can be searched without naming IDs.
func defaultEndpoints(g *core.Graph, source, target string) (string, string) {
	ids := g.NodeIDs()
	if len(ids) == 0 {
		return source, target
	}
	if source == "" {
		source = ids[0]
	}
	if target == "" {
		target = ids[len(ids)-1]
	}

	return source, target
}
