package gridgraph

// Components finds all connected regions of open cells under the map's
// connectivity. Regions are listed in row-major order of their first cell;
// cells within a region are in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (m *Map) Components() [][]Cell {
	seen := make([]bool, m.Width*m.Height)
	var comps [][]Cell

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c0 := Cell{X: x, Y: y}
			if !m.Open(c0) || seen[m.index(c0)] {
				continue
			}
			seen[m.index(c0)] = true
			queue := []Cell{c0}
			for qi := 0; qi < len(queue); qi++ {
				for _, v := range m.neighbors(queue[qi]) {
					if !seen[m.index(v)] {
						seen[m.index(v)] = true
						queue = append(queue, v)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// Connected reports whether open cells a and b lie in the same region.
func (m *Map) Connected(a, b Cell) bool {
	if !m.Open(a) || !m.Open(b) {
		return false
	}
	for _, comp := range m.Components() {
		var hasA, hasB bool
		for _, c := range comp {
			hasA = hasA || c == a
			hasB = hasB || c == b
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}

	return false
}

// index maps c to a row-major index: y*Width + x.
func (m *Map) index(c Cell) int {
	return c.Y*m.Width + c.X
}

// cell converts a row-major index back to a Cell.
func (m *Map) cell(idx int) Cell {
	return Cell{X: idx % m.Width, Y: idx / m.Width}
}
