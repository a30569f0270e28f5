package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchtrace/builder"
	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/graphfile"
	"github.com/katalvlaran/searchtrace/gridgraph"
)

// graphFlags selects where a command's graph comes from.
type graphFlags struct {
	file     string
	sample   string
	grid     string
	maze     string
	diagMove bool
	seed     int64
	diagonal float64
	start    string
	goal     string

	// endpointsOptional lets a graph without start/goal through.
	endpointsOptional bool
}

func (f *graphFlags) register(cmd *cobra.Command, endpoints bool) {
	fs := cmd.Flags()
	fs.StringVar(&f.file, "graph", "", "graph file (.yaml, .yml, .toml, .json)")
	fs.StringVar(&f.sample, "sample", "", "embedded sample graph (see 'searchtrace samples')")
	fs.StringVar(&f.grid, "grid", "", "generate a ROWSxCOLS grid (default from config)")
	fs.StringVar(&f.maze, "maze", "", "ASCII maze file ('#' wall, '.' open, 1-9 cost, S start, G goal)")
	fs.BoolVar(&f.diagMove, "diagonal-moves", false, "with --maze, allow diagonal moves")
	fs.Int64Var(&f.seed, "seed", 0, "grid random seed (default from config)")
	fs.Float64Var(&f.diagonal, "diagonal-probability", 0, "grid diagonal edge probability (default from config)")
	if endpoints {
		fs.StringVar(&f.start, "start", "", "start node (default: graph's start or top-left grid cell)")
		fs.StringVar(&f.goal, "goal", "", "goal node (default: graph's goal or bottom-right grid cell)")
	}
}

// loadedGraph is a resolved graph plus its query endpoints.
type loadedGraph struct {
	g      *core.Graph
	doc    *graphfile.Document
	maze   *gridgraph.Map
	start  string
	goal   string
	rows   int
	cols   int
	source string
}

// isGrid reports whether the graph was generated as a grid and can be drawn.
func (l *loadedGraph) isGrid() bool { return l.rows > 0 && l.cols > 0 }

// loadGraph resolves f against the loaded configuration.
func (c *CLI) loadGraph(cmd *cobra.Command, f *graphFlags) (*loadedGraph, error) {
	sources := 0
	for _, s := range []string{f.file, f.sample, f.grid, f.maze} {
		if s != "" {
			sources++
		}
	}
	if sources > 1 {
		return nil, ErrConflictingSources
	}

	var (
		lg  *loadedGraph
		err error
	)
	switch {
	case f.file != "":
		lg, err = loadDocument(graphfile.Load(f.file))
		if lg != nil {
			lg.source = f.file
		}
	case f.sample != "":
		lg, err = loadDocument(graphfile.Sample(f.sample))
		if lg != nil {
			lg.source = "sample " + f.sample
		}
	case f.maze != "":
		lg, err = loadMaze(f)
	default:
		lg, err = c.loadGrid(cmd, f)
	}
	if err != nil {
		return nil, err
	}

	if f.start != "" {
		lg.start = f.start
	}
	if f.goal != "" {
		lg.goal = f.goal
	}
	if (lg.start == "" || lg.goal == "") && !f.endpointsOptional {
		return nil, ErrNoEndpoints
	}
	if lg.maze != nil && f.goal != "" && lg.g.HasNode(lg.goal) {
		if err := builder.AssignHeuristics(lg.g, lg.goal, builder.DefaultSpacing); err != nil {
			return nil, err
		}
	}
	if lg.isGrid() && lg.maze == nil && lg.goal != builder.GridID(lg.rows-1, lg.cols-1) && lg.g.HasNode(lg.goal) {
		if err := builder.AssignHeuristics(lg.g, lg.goal, builder.DefaultHeuristicScale); err != nil {
			return nil, err
		}
	}
	loggerFromContext(cmd.Context()).Debug("graph loaded",
		"source", lg.source, "nodes", lg.g.NodeCount(), "edges", lg.g.EdgeCount(),
		"start", lg.start, "goal", lg.goal)

	return lg, nil
}

func loadDocument(d *graphfile.Document, err error) (*loadedGraph, error) {
	if err != nil {
		return nil, err
	}
	g, err := d.Graph()
	if err != nil {
		return nil, err
	}

	return &loadedGraph{g: g, doc: d, start: d.Start, goal: d.Goal}, nil
}

func loadMaze(f *graphFlags) (*loadedGraph, error) {
	opts := gridgraph.DefaultGridOptions()
	if f.diagMove {
		opts.Conn = gridgraph.Conn8
	}
	m, err := gridgraph.Load(f.maze, opts)
	if err != nil {
		return nil, err
	}
	g, err := m.Graph()
	if err != nil {
		return nil, err
	}
	lg := &loadedGraph{g: g, maze: m, rows: m.Height, cols: m.Width, source: "maze " + f.maze}
	if m.Start != nil {
		lg.start = m.Start.ID()
	}
	if m.Goal != nil {
		lg.goal = m.Goal.ID()
	}

	return lg, nil
}

func (c *CLI) loadGrid(cmd *cobra.Command, f *graphFlags) (*loadedGraph, error) {
	rows, cols := c.cfg.Grid.Rows, c.cfg.Grid.Cols
	if f.grid != "" {
		var err error
		if rows, cols, err = parseGridSize(f.grid); err != nil {
			return nil, err
		}
	}
	seed := c.cfg.Grid.Seed
	if cmd.Flags().Changed("seed") {
		seed = f.seed
	}
	p := c.cfg.Grid.DiagonalProbability
	if cmd.Flags().Changed("diagonal-probability") {
		p = f.diagonal
	}

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithDiagonalProbability(p)},
		builder.Grid(rows, cols),
	)
	if err != nil {
		return nil, err
	}

	return &loadedGraph{
		g:      g,
		start:  builder.GridID(0, 0),
		goal:   builder.GridID(rows-1, cols-1),
		rows:   rows,
		cols:   cols,
		source: fmt.Sprintf("grid %dx%d seed %d", rows, cols, seed),
	}, nil
}

// parseGridSize accepts "RxC", "RXC" or a single "N" meaning NxN.
func parseGridSize(s string) (int, int, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadGridSize, s)
	}
	rows, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	cols, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadGridSize, s)
	}

	return rows, cols, nil
}
