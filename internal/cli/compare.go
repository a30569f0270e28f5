package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchtrace/strategy"
	"github.com/katalvlaran/searchtrace/trace"
)

// comparisonJSON is the --json shape of compare.
type comparisonJSON struct {
	Start   string                               `json:"start"`
	Goal    string                               `json:"goal"`
	Ranking []strategy.Algorithm                 `json:"ranking"`
	Results map[strategy.Algorithm]*trace.Result `json:"results"`
}

func (c *CLI) compareCommand() *cobra.Command {
	var (
		gf   graphFlags
		sf   searchFlags
		algs string
		at   int
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run several algorithms on the same query and rank them",
		Long: `Run several algorithms concurrently over the same graph and query.

Results are ranked: found paths first, then by recorded cost, then by nodes
expanded. --at N prints the synchronized frame N of every trace.`,
		Example: `  searchtrace compare --grid 12x12 --seed 9
  searchtrace compare --algorithms bfs,dijkstra --sample weighted --at 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := strategy.ParseList(algs)
			if err != nil {
				return err
			}
			lg, err := c.loadGraph(cmd, &gf)
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			cmp, err := strategy.Compare(cmd.Context(), lg.g, lg.start, lg.goal, list, c.searchOptions(cmd, &sf)...)
			if err != nil {
				return err
			}
			ranking := cmp.Ranking()
			prog.done("compared", "algorithms", len(ranking), "frames", cmp.MaxSteps())

			if c.wantJSON(&sf) {
				enc := json.NewEncoder(c.out)
				enc.SetIndent("", "  ")

				return enc.Encode(comparisonJSON{Start: cmp.Start, Goal: cmp.Goal, Ranking: ranking, Results: cmp.Results})
			}

			fmt.Fprintln(c.out, styleTitle.Render("Comparison "+lg.start+" "+iconArrow+" "+lg.goal))
			printKeyValue(c.out, "graph", lg.source)
			c.printRanking(lg, cmp, ranking)
			if cmd.Flags().Changed("at") {
				fmt.Fprintln(c.out)
				printFrame(c.out, cmp, ranking, at)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&algs, "algorithms", "", "comma-separated algorithms (default all)")
	cmd.Flags().IntVar(&at, "at", 0, "print synchronized frame N")
	gf.register(cmd, true)
	sf.register(cmd)

	return cmd
}

var compareColumns = []struct {
	title string
	width int
}{
	{"#", 3}, {"algorithm", 26}, {"outcome", 13}, {"cost", 8}, {"weight", 8}, {"expanded", 9}, {"steps", 6},
}

func (c *CLI) printRanking(lg *loadedGraph, cmp *strategy.Comparison, ranking []strategy.Algorithm) {
	cell := func(i int, s string, st lipgloss.Style) string {
		return st.Width(compareColumns[i].width).Render(s)
	}

	header := ""
	for i, col := range compareColumns {
		header += cell(i, col.title, styleHeader)
	}
	fmt.Fprintln(c.out, header)

	for rank, alg := range ranking {
		res := cmp.Result(alg)
		cost, weight := "-", "-"
		if res.Found() {
			cost = trace.FormatCost(res.TotalCost)
			if w, ok := trace.PathCost(lg.g, res.FinalPath); ok {
				weight = trace.FormatCost(w)
			}
		}
		outcome := styleIconSuccess
		if !res.Found() {
			outcome = styleIconError
		}
		fmt.Fprintln(c.out,
			cell(0, strconv.Itoa(rank+1), styleNumber)+
				cell(1, alg.Name(), styleValue)+
				cell(2, res.Outcome.String(), outcome)+
				cell(3, cost, styleValue)+
				cell(4, weight, styleDim)+
				cell(5, strconv.Itoa(res.NodesExpanded), styleValue)+
				cell(6, strconv.Itoa(len(res.Steps)), styleDim))
	}
	for _, alg := range ranking {
		if res := cmp.Result(alg); res.Found() {
			printDetail(c.out, "%-6s %s", alg, formatPath(res.FinalPath))
		}
	}
}

// printFrame prints step i of every trace side by side.
func printFrame(w io.Writer, cmp *strategy.Comparison, ranking []strategy.Algorithm, i int) {
	frame := cmp.StepAt(i)
	printInfo(w, "frame %d of %d", i, cmp.MaxSteps()-1)
	for _, alg := range ranking {
		s, ok := frame[alg]
		if !ok {
			continue
		}
		current := s.Current
		if s.IsTerminal() {
			current = "(done)"
		}
		printKeyValue(w, alg.String(), fmt.Sprintf("%-8s %s", current, s.Message))
	}
}
