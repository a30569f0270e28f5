package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/searchtrace/builder"
	"github.com/katalvlaran/searchtrace/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// New constructs a Map from a non-empty, rectangular 2D slice.
// It deep-copies the input.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNegativeCell.
// Complexity: O(W×H).
func New(values [][]int, opts GridOptions) (*Map, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrNegativeCell, x, y, v)
			}
		}
		cells[y] = append([]int(nil), row...)
	}
	if opts.Spacing <= 0 {
		opts.Spacing = builder.DefaultSpacing
	}
	m := &Map{Width: w, Height: h, Cells: cells, opts: opts, offsets: offsets4}
	if opts.Conn == Conn8 {
		m.offsets = offsets8
	}

	return m, nil
}

// InBounds reports whether c lies within the map.
func (m *Map) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

// Open reports whether c is inside the map and not a wall.
func (m *Map) Open(c Cell) bool {
	return m.InBounds(c) && m.Cells[c.Y][c.X] != Wall
}

// CellOf maps a node ID back to its cell.
func (m *Map) CellOf(id string) (Cell, bool) {
	var c Cell
	if n, err := fmt.Sscanf(id, "A%d-%d", &c.Y, &c.X); err != nil || n != 2 || c.ID() != id {
		return Cell{}, false
	}

	return c, m.InBounds(c)
}

// neighbors returns the open cells reachable from c in one move, in
// offset order. Diagonals require both orthogonal cells open.
func (m *Map) neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(m.offsets))
	for _, d := range m.offsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if !m.Open(n) {
			continue
		}
		if d[0] != 0 && d[1] != 0 && (!m.Open(Cell{X: c.X + d[0], Y: c.Y}) || !m.Open(Cell{X: c.X, Y: c.Y + d[1]})) {
			continue
		}
		out = append(out, n)
	}

	return out
}

// Graph converts the map into a *core.Graph. Every open cell becomes a node
// placed at origin + (x,y)·spacing; every legal move u→v becomes an edge
// weighing the cost of v, times √2 on diagonals. With a Goal marker, node
// heuristics are the Euclidean distance to it in cells, which is admissible
// since every move costs at least its length.
// Complexity: O(W×H×d).
func (m *Map) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := Cell{X: x, Y: y}
			if !m.Open(c) {
				continue
			}
			pos := core.Position{
				X: m.opts.OriginX + float64(x)*m.opts.Spacing,
				Y: m.opts.OriginY + float64(y)*m.opts.Spacing,
			}
			if err := g.AddNode(c.ID(), pos); err != nil {
				return nil, err
			}
		}
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			u := Cell{X: x, Y: y}
			if !m.Open(u) {
				continue
			}
			for _, v := range m.neighbors(u) {
				w := float64(m.Cells[v.Y][v.X])
				if v.X != u.X && v.Y != u.Y {
					w *= math.Sqrt2
				}
				if _, err := g.AddEdge(u.ID(), v.ID(), w); err != nil {
					return nil, err
				}
			}
		}
	}
	if m.Goal != nil {
		if err := builder.AssignHeuristics(g, m.Goal.ID(), m.opts.Spacing); err != nil {
			return nil, err
		}
	}

	return g, nil
}
