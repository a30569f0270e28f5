package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ASCII map characters.
const (
	GlyphWall  = '#'
	GlyphOpen  = '.'
	GlyphStart = 'S'
	GlyphGoal  = 'G'
)

// Parse reads an ASCII map. Trailing blank lines are ignored; every other
// line is one row. '#' is a wall, '.' costs 1, '1'..'9' cost their digit,
// 'S' and 'G' mark the start and goal (cost 1).
func Parse(r io.Reader, opts GridOptions) (*Map, error) {
	var (
		rows        [][]int
		start, goal *Cell
	)
	sc := bufio.NewScanner(r)
	for y := 0; sc.Scan(); y++ {
		line := strings.TrimRight(sc.Text(), "\r")
		row := make([]int, 0, len(line))
		for x, ch := range []rune(line) {
			switch {
			case ch == GlyphWall:
				row = append(row, Wall)
			case ch == GlyphOpen:
				row = append(row, 1)
			case ch >= '1' && ch <= '9':
				row = append(row, int(ch-'0'))
			case ch == GlyphStart || ch == GlyphGoal:
				marker := &start
				if ch == GlyphGoal {
					marker = &goal
				}
				if *marker != nil {
					return nil, fmt.Errorf("%w: %q at line %d", ErrDuplicateMarker, ch, y+1)
				}
				*marker = &Cell{X: x, Y: y}
				row = append(row, 1)
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrBadGlyph, ch, y+1, x+1)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	m, err := New(rows, opts)
	if err != nil {
		return nil, err
	}
	m.Start, m.Goal = start, goal

	return m, nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts GridOptions) (*Map, error) {
	return Parse(strings.NewReader(s), opts)
}

// Load parses the ASCII map at path.
func Load(path string, opts GridOptions) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: %w", err)
	}
	defer f.Close()

	return Parse(f, opts)
}

// String renders m back as an ASCII map. Costs above 9 print as '9'.
func (m *Map) String() string {
	var b strings.Builder
	for y, row := range m.Cells {
		for x, v := range row {
			c := Cell{X: x, Y: y}
			switch {
			case m.Start != nil && *m.Start == c:
				b.WriteRune(GlyphStart)
			case m.Goal != nil && *m.Goal == c:
				b.WriteRune(GlyphGoal)
			case v == Wall:
				b.WriteRune(GlyphWall)
			case v == 1:
				b.WriteRune(GlyphOpen)
			case v > 9:
				b.WriteByte('9')
			default:
				b.WriteByte(byte('0' + v))
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
