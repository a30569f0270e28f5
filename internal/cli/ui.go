package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/searchtrace/trace"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorPurple = lipgloss.Color("141")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorGray)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleWall = lipgloss.NewStyle().Foreground(colorGray)
)

const glyphWall = "▓"

// stateStyles colors grid cells by trace.NodeState.
var stateStyles = map[trace.NodeState]lipgloss.Style{
	trace.StateUnexplored: lipgloss.NewStyle().Foreground(colorDim),
	trace.StateFrontier:   lipgloss.NewStyle().Foreground(colorYellow),
	trace.StateVisited:    lipgloss.NewStyle().Foreground(colorBlue),
	trace.StateCurrent:    lipgloss.NewStyle().Bold(true).Foreground(colorRed),
	trace.StatePath:       lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
	trace.StateBestPath:   lipgloss.NewStyle().Foreground(colorPurple),
}

// stateGlyphs draws one cell per trace.NodeState.
var stateGlyphs = map[trace.NodeState]string{
	trace.StateUnexplored: "·",
	trace.StateFrontier:   "○",
	trace.StateVisited:    "•",
	trace.StateCurrent:    "◉",
	trace.StatePath:       "█",
	trace.StateBestPath:   "◆",
}

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printFailure(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(value))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

// printOutcome prints the one-line verdict of a search.
func printOutcome(w io.Writer, res *trace.Result) {
	if res.Found() {
		printSuccess(w, "%s", res.Summary())

		return
	}
	printFailure(w, "%s", res.Summary())
}

// formatPath joins ids with arrows, "-" for an empty path.
func formatPath(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}

	return strings.Join(ids, " "+iconArrow+" ")
}

// printLegend prints the glyph legend used by renderGrid.
func printLegend(w io.Writer) {
	states := []trace.NodeState{
		trace.StateCurrent, trace.StateFrontier, trace.StateVisited,
		trace.StateBestPath, trace.StatePath, trace.StateUnexplored,
	}
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = stateStyles[s].Render(stateGlyphs[s]) + " " + styleDim.Render(s.String())
	}
	fmt.Fprintln(w, "  "+strings.Join(parts, styleDim.Render(" · ")))
}
