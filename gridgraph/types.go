package gridgraph

import (
	"errors"

	"github.com/katalvlaran/searchtrace/builder"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCell indicates a cell value below zero.
	ErrNegativeCell = errors.New("gridgraph: cell values must be non-negative")
	// ErrBadGlyph indicates an unknown character in an ASCII map.
	ErrBadGlyph = errors.New("gridgraph: unknown map character")
	// ErrDuplicateMarker indicates more than one 'S' or 'G' in an ASCII map.
	ErrDuplicateMarker = errors.New("gridgraph: start or goal marker appears twice")
	// ErrOutOfBounds indicates a cell outside the map.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBlocked indicates a cell that is a wall where an open cell is required.
	ErrBlocked = errors.New("gridgraph: cell is a wall")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Wall is the cell value of an impassable cell.
const Wall = 0

// Cell is a grid coordinate: X is the column, Y the row.
type Cell struct {
	X, Y int
}

// ID returns the graph node ID of c.
func (c Cell) ID() string { return builder.GridID(c.Y, c.X) }

// GridOptions contains tunable parameters for graph conversion.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Spacing is the distance between neighboring cell centers.
	Spacing float64
	// OriginX, OriginY place cell (0,0).
	OriginX, OriginY float64
}

// DefaultGridOptions returns Conn4 with the builder's default layout
// (spacing 60, origin 50,50).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:    Conn4,
		Spacing: builder.DefaultSpacing,
		OriginX: builder.DefaultOrigin,
		OriginY: builder.DefaultOrigin,
	}
}

// Map is an immutable rectangular cell map.
// Cells[y][x] holds the cost of entering (x,y), or Wall.
// Start and Goal are optional markers, set by Parse.
type Map struct {
	Width, Height int
	Cells         [][]int
	Start, Goal   *Cell
	opts          GridOptions
	offsets       [][2]int
}
