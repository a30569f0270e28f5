// SPDX-License-Identifier: MIT
// Package: searchtrace/builder
//
// heuristics.go - Euclidean cost-to-goal estimates from node positions.
//
// Admissibility is NOT guaranteed: with the default scale of 50 and grid
// spacing of 60, one orthogonal hop is estimated at 1.2 while the cheapest
// edge weighs 1. Use WithHeuristicScale(spacing) for an admissible grid.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/searchtrace/core"
)

// EuclideanHeuristic returns the straight-line distance between a and b
// divided by scale. A non-positive scale is treated as 1.
func EuclideanHeuristic(a, b core.Position, scale float64) float64 {
	if !(scale > 0) {
		scale = 1
	}

	return math.Hypot(b.X-a.X, b.Y-a.Y) / scale
}

// AssignHeuristics sets every node's heuristic to EuclideanHeuristic toward
// goal. Returns core.ErrNodeNotFound (wrapped) if goal is absent.
// Complexity: O(V).
func AssignHeuristics(g *core.Graph, goal string, scale float64) error {
	target, ok := g.Node(goal)
	if !ok {
		return fmt.Errorf("%s: goal %q: %w", MethodHeuristics, goal, core.ErrNodeNotFound)
	}
	for _, n := range g.Nodes() {
		if err := g.SetHeuristic(n.ID, EuclideanHeuristic(n.Position, target.Position, scale)); err != nil {
			return fmt.Errorf("%s: %w", MethodHeuristics, err)
		}
	}

	return nil
}
