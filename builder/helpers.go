// Package builder provides internal helper functions used by Constructor
// implementations to place nodes and emit edges.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the constructor name for uniform reporting.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/searchtrace/core"
)

// addNode inserts id at pos, wrapping any core error with method context.
func addNode(g *core.Graph, method, id string, pos core.Position) error {
	if err := g.AddNode(id, pos); err != nil {
		return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
	}

	return nil
}

// link connects u and v with weight w: a bidirectional pair by default, a
// single arc u→v when cfg.directed is set.
func link(g *core.Graph, cfg builderConfig, method, u, v string, w float64) error {
	var opts []core.EdgeOption
	if !cfg.directed {
		opts = append(opts, core.WithBidirectional())
	}
	if _, err := g.AddEdge(u, v, w, opts...); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// ringPositions lays n nodes on a circle whose chord between neighbors is
// roughly cfg.spacing; the circle's bounding box starts at the origin.
// Complexity: O(n) time and space.
func ringPositions(cfg builderConfig, n int) []core.Position {
	pos := make([]core.Position, n)
	radius := cfg.spacing * float64(n) / (2 * math.Pi)
	cx, cy := cfg.originX+radius, cfg.originY+radius
	var i int
	for i = 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pos[i] = core.Position{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		}
	}

	return pos
}

// addRing inserts n nodes with cfg.idFn IDs on ringPositions and returns
// their IDs in index order.
func addRing(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	pos := ringPositions(cfg, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := addNode(g, method, ids[i], pos[i]); err != nil {
			return nil, err
		}
	}

	return ids, nil
}
