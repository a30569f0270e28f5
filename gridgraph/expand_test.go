// File: gridgraph/expand_test.go
package gridgraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWallsBetween_SingleWall: one wall column of width 1 separates the halves.
//
//	S . # . G
//	. . # . .
func TestWallsBetween_SingleWall(t *testing.T) {
	m, err := ParseString("S.#.G\n..#..\n", DefaultGridOptions())
	require.NoError(t, err)

	path, walls, err := m.WallsBetween(*m.Start, *m.Goal)
	require.NoError(t, err)
	assert.Equal(t, 1, walls)
	assert.Equal(t, *m.Start, path[0])
	assert.Equal(t, *m.Goal, path[len(path)-1])

	opened := 0
	for _, c := range path {
		if m.Cells[c.Y][c.X] == Wall {
			opened++
		}
	}
	assert.Equal(t, walls, opened, "wall cells on the path are the ones to open")
}

func TestWallsBetween_AlreadyConnected(t *testing.T) {
	m, err := ParseString("S..\n##.\nG..\n", DefaultGridOptions())
	require.NoError(t, err)

	path, walls, err := m.WallsBetween(*m.Start, *m.Goal)
	require.NoError(t, err)
	assert.Zero(t, walls)
	assert.Len(t, path, 7)
}

func TestWallsBetween_Thick(t *testing.T) {
	m, err := ParseString("S###G\n", DefaultGridOptions())
	require.NoError(t, err)

	_, walls, err := m.WallsBetween(*m.Start, *m.Goal)
	require.NoError(t, err)
	assert.Equal(t, 3, walls)

	_, walls, err = m.WallsBetween(Cell{1, 0}, Cell{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, walls, "a wall endpoint counts itself")

	_, _, err = m.WallsBetween(Cell{0, 0}, Cell{5, 0})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("want ErrOutOfBounds, got %v", err)
	}
}
