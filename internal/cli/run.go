package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchtrace/internal/config"
	"github.com/katalvlaran/searchtrace/strategy"
	"github.com/katalvlaran/searchtrace/trace"
)

// searchFlags are shared by run and compare.
type searchFlags struct {
	maxExpansions int
	jsonOut       bool
	noStateMaps   bool
}

func (f *searchFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.maxExpansions, "max-expansions", 0, "stop after N expansions (default from config, 0 = unlimited)")
	fs.BoolVar(&f.jsonOut, "json", false, "print the full trace as JSON")
	fs.BoolVar(&f.noStateMaps, "no-state-maps", false, "omit distance and parent snapshots from steps")
}

// searchOptions turns the flags and configuration into trace options.
func (c *CLI) searchOptions(cmd *cobra.Command, f *searchFlags) []trace.Option {
	limit := c.cfg.MaxExpansions
	if cmd.Flags().Changed("max-expansions") {
		limit = f.maxExpansions
	}
	opts := []trace.Option{
		trace.WithContext(cmd.Context()),
		trace.WithMaxExpansions(limit),
		trace.WithLogger(loggerFromContext(cmd.Context())),
	}
	if f.noStateMaps {
		opts = append(opts, trace.WithoutStateMaps())
	}

	return opts
}

func (c *CLI) wantJSON(f *searchFlags) bool {
	return f.jsonOut || c.cfg.Output == config.OutputJSON
}

func (c *CLI) runCommand() *cobra.Command {
	var (
		gf        graphFlags
		sf        searchFlags
		algorithm string
		steps     bool
		show      bool
		at        int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one search and print its trace",
		Long: `Run one search algorithm and print the outcome.

With --steps every step is listed; with --show a generated grid is drawn at
the terminal step (or at --at N).`,
		Example: `  searchtrace run -a astar --grid 10x10 --seed 3 --show
  searchtrace run -a dijkstra --sample weighted --steps
  searchtrace run -a bfs --graph city.yaml --start A --goal F --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := algorithm
			if name == "" {
				name = c.cfg.Algorithm
			}
			alg, err := strategy.Parse(name)
			if err != nil {
				return err
			}
			lg, err := c.loadGraph(cmd, &gf)
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			res, err := strategy.Run(alg, lg.g, lg.start, lg.goal, c.searchOptions(cmd, &sf)...)
			if err != nil {
				return fmt.Errorf("%s: %w", alg, err)
			}
			prog.done(alg.Name(), "outcome", res.Outcome, "expanded", res.NodesExpanded)

			if c.wantJSON(&sf) {
				enc := json.NewEncoder(c.out)
				enc.SetIndent("", "  ")

				return enc.Encode(res)
			}

			if steps {
				for i, s := range res.Steps {
					printStep(c.out, i, s)
				}
				fmt.Fprintln(c.out)
			}
			if show {
				if !lg.isGrid() {
					printInfo(c.out, "--show draws generated grids only")
				} else if len(res.Steps) > 0 {
					i := len(res.Steps) - 1
					if cmd.Flags().Changed("at") {
						i = clamp(at, 0, len(res.Steps)-1)
					}
					printDetail(c.out, "step %d of %d: %s", i, len(res.Steps)-1, res.Steps[i].Message)
					renderGrid(c.out, lg.g, res.Steps[i], lg.rows, lg.cols)
					fmt.Fprintln(c.out)
				}
			}
			printResult(c.out, lg, alg.Name(), res)
			if res.Outcome == trace.OutcomeNoPath && lg.maze != nil {
				printWallsHint(c.out, lg)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "bfs, dfs, dijkstra, astar or greedy (default from config)")
	cmd.Flags().BoolVar(&steps, "steps", false, "list every step")
	cmd.Flags().BoolVar(&show, "show", false, "draw the grid")
	cmd.Flags().IntVar(&at, "at", 0, "with --show, draw step N instead of the last one")
	gf.register(cmd, true)
	sf.register(cmd)

	return cmd
}

// printWallsHint tells how many maze walls separate start and goal.
func printWallsHint(w io.Writer, lg *loadedGraph) {
	a, okA := lg.maze.CellOf(lg.start)
	b, okB := lg.maze.CellOf(lg.goal)
	if !okA || !okB {
		return
	}
	_, walls, err := lg.maze.WallsBetween(a, b)
	if err != nil || walls == 0 {
		return
	}
	printDetail(w, "opening %d wall(s) would connect %s and %s", walls, lg.start, lg.goal)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
