// Package gridgraph turns 2D cell maps (mazes, terrain) into search graphs.
//
// What:
//
//   - Map wraps a rectangular [][]int: 0 is a wall, a positive value is the
//     cost of entering that cell.
//   - Parse reads ASCII maps: '#' wall, '.' cost 1, '1'..'9' cost, 'S' start,
//     'G' goal (both cost 1).
//   - Graph converts a Map into a *core.Graph. Node IDs follow the builder
//     grid scheme ("A<row>-<col>"), walls get no node, and the edge u→v
//     weighs the cost of entering v (times √2 on diagonals).
//   - Components finds the connected regions of open cells.
//   - WallsBetween finds the fewest walls to remove so that two cells connect.
//
// Connectivity:
//
//   - Conn4: N, E, S, W.
//   - Conn8: adds diagonals; a diagonal move needs both orthogonal cells
//     it passes open (no corner cutting).
//
// Complexity:
//
//   - Graph, Components: O(W×H×d), d = 4 or 8.
//   - WallsBetween:      O(W×H×d) (0-1 BFS).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrNegativeCell: bad input grid.
//   - ErrBadGlyph, ErrDuplicateMarker: bad ASCII map.
//   - ErrOutOfBounds, ErrBlocked: a cell argument outside the map or on a wall.
package gridgraph
