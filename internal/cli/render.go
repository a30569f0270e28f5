package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/searchtrace/builder"
	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/trace"
)

// renderGrid draws one step of a search over a grid graph, one glyph per
// cell colored by its trace.NodeState. Cells without a node are walls.
func renderGrid(w io.Writer, g *core.Graph, s trace.Step, rows, cols int) {
	var b strings.Builder
	for r := 0; r < rows; r++ {
		b.WriteString("  ")
		for c := 0; c < cols; c++ {
			id := builder.GridID(r, c)
			if !g.HasNode(id) {
				b.WriteString(styleWall.Render(glyphWall))
			} else {
				st := s.State(id)
				b.WriteString(stateStyles[st].Render(stateGlyphs[st]))
			}
			if c < cols-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(w, b.String())
	printLegend(w)
}

// printStep prints a one-line digest of step i.
func printStep(w io.Writer, i int, s trace.Step) {
	idx := styleNumber.Render(fmt.Sprintf("%4d", i))
	if s.IsTerminal() {
		fmt.Fprintf(w, "%s %s\n", idx, styleTitle.Render(s.Message))

		return
	}
	counts := styleDim.Render(fmt.Sprintf("frontier=%d visited=%d", s.Frontier.Len(), s.Visited.Len()))
	fmt.Fprintf(w, "%s %-8s %s  %s\n", idx, s.Current, counts, s.Message)
}

// printResult prints the summary block of one search.
func printResult(w io.Writer, lg *loadedGraph, name string, res *trace.Result) {
	fmt.Fprintln(w, styleTitle.Render(name))
	printKeyValue(w, "graph", lg.source)
	printKeyValue(w, "nodes", fmt.Sprintf("%d nodes · %d edges", lg.g.NodeCount(), lg.g.EdgeCount()))
	printKeyValue(w, "query", res.Start+" "+iconArrow+" "+res.Goal)
	printKeyValue(w, "outcome", res.Outcome.String())
	printKeyValue(w, "expanded", fmt.Sprintf("%d", res.NodesExpanded))
	if res.Found() {
		printKeyValue(w, "cost", trace.FormatCost(res.TotalCost))
		printKeyValue(w, "hops", fmt.Sprintf("%d", len(res.FinalPath)-1))
		printKeyValue(w, "path", formatPath(res.FinalPath))
		if c, ok := trace.PathCost(lg.g, res.FinalPath); ok && c != res.TotalCost {
			printDetail(w, "edge-weight cost of this path: %s", trace.FormatCost(c))
		}
	}
	printOutcome(w, res)
}
