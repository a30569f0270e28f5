// SPDX-License-Identifier: MIT
// Package: searchtrace/builder
//
// impl_diamond.go - the fixed four-node diamond fixture.
//
// Canonical model:
//   - Nodes A, B, C, D; B and C side by side between A (top) and D (bottom).
//   - Directed edges, emitted in this order: A→B(1), A→C(4), B→D(1), C→D(1).
//   - No heuristics; WithDirected and weight options are ignored.
//
// The shortest A→D path is A,B,D with cost 2; A,C,D costs 5.

package builder

import (
	"github.com/katalvlaran/searchtrace/core"
)

// diamondEdges lists the fixture arcs in emission order.
var diamondEdges = []struct {
	from, to string
	weight   float64
}{
	{"A", "B", 1},
	{"A", "C", 4},
	{"B", "D", 1},
	{"C", "D", 1},
}

// Diamond returns a Constructor that adds the diamond fixture.
func Diamond() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		s := cfg.spacing
		nodes := []struct {
			id  string
			pos core.Position
		}{
			{"A", core.Position{X: cfg.originX + s, Y: cfg.originY}},
			{"B", core.Position{X: cfg.originX, Y: cfg.originY + s}},
			{"C", core.Position{X: cfg.originX + 2*s, Y: cfg.originY + s}},
			{"D", core.Position{X: cfg.originX + s, Y: cfg.originY + 2*s}},
		}
		for _, n := range nodes {
			if err := addNode(g, MethodDiamond, n.id, n.pos); err != nil {
				return err
			}
		}

		one := builderConfig{directed: true}
		for _, e := range diamondEdges {
			if err := link(g, one, MethodDiamond, e.from, e.to, e.weight); err != nil {
				return err
			}
		}

		return nil
	}
}
