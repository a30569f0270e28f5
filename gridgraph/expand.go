package gridgraph

import (
	"container/list"
	"fmt"
)

// WallsBetween finds the fewest walls that must be opened so that a path
// connects a to b. Moves follow the map's offsets; entering a wall costs 1,
// entering an open cell costs 0. The returned path includes a and b; its
// wall cells are the ones to open.
//
// Behavior:
//  1. Validate both cells are inside the map.
//  2. 0-1 BFS from a: cost-0 moves go to the deque front, cost-1 to the back.
//  3. Stop when b is dequeued; rebuild the path from predecessors.
//
// Complexity: O(W·H·d), Memory: O(W·H).
func (m *Map) WallsBetween(a, b Cell) (path []Cell, walls int, err error) {
	for _, c := range []Cell{a, b} {
		if !m.InBounds(c) {
			return nil, 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y)
		}
	}

	n := m.Width * m.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := m.index(a), m.index(b)
	dist[src] = m.wallCost(a)
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		uc := m.cell(u)
		for _, d := range m.offsets {
			vc := Cell{X: uc.X + d[0], Y: uc.Y + d[1]}
			if !m.InBounds(vc) {
				continue
			}
			v := m.index(vc)
			step := m.wallCost(vc)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := dst; at >= 0; at = prev[at] {
		path = append([]Cell{m.cell(at)}, path...)
	}

	return path, dist[dst], nil
}

func (m *Map) wallCost(c Cell) int {
	if m.Cells[c.Y][c.X] == Wall {
		return 1
	}

	return 0
}
