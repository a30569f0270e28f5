// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/searchtrace/gridgraph"
	"github.com/katalvlaran/searchtrace/strategy"
)

// ExampleMap_Graph parses a small maze and searches it with A*.
// The cost-9 swamp in the middle row makes the detour cheaper.
func ExampleMap_Graph() {
	m, _ := gridgraph.ParseString(`
S.9.G
.#9#.
.....
`[1:], gridgraph.DefaultGridOptions())
	g, _ := m.Graph()

	res, _ := strategy.Run(strategy.AStar, g, m.Start.ID(), m.Goal.ID())
	fmt.Println(res.TotalCost)
	fmt.Println(res.FinalPath)

	// Output:
	// 8
	// [A0-0 A1-0 A2-0 A2-1 A2-2 A2-3 A2-4 A1-4 A0-4]
}

// ExampleMap_WallsBetween reports how many walls separate two regions.
func ExampleMap_WallsBetween() {
	m, _ := gridgraph.ParseString("S.#.\n..##\n##.G\n", gridgraph.DefaultGridOptions())

	fmt.Println(m.Connected(*m.Start, *m.Goal))
	_, walls, _ := m.WallsBetween(*m.Start, *m.Goal)
	fmt.Println(walls)

	// Output:
	// false
	// 1
}
