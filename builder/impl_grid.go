// SPDX-License-Identifier: MIT
// Package: searchtrace/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Canonical model (the sample grid):
//   • Node (r,c) has ID GridID(r,c) and position (originX + c·spacing, originY + r·spacing).
//   • Per cell, in this order: Right edge, Bottom edge, diagonal to (r+1,c+1)
//     with probability diagonalProb, anti-diagonal to (r+1,c-1) with probability diagonalProb.
//   • Orthogonal weights default to integers 1..9, diagonals to 2..10.
//   • Edges are bidirectional pairs unless WithDirected is set.
//   • Heuristics default to Euclidean distance / heuristicScale toward the
//     bottom-right corner (unless WithHeuristicTo or WithoutHeuristics).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • RNG required when 0 < diagonalProb < 1 (else ErrNeedRandSource).
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(rows*cols) edges.
//   • Space: O(1) extra.
//
// Determinism:
//   • Stable vertex order: row-major.
//   • Stable RNG draw order: for each cell Right, Bottom, coin+Diag, coin+Anti;
//     a coin is only drawn when the diagonal target exists.

package builder

import (
	"github.com/katalvlaran/searchtrace/core"
)

// Grid returns a Constructor that builds the rows×cols sample grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		if err := validateRand(MethodGrid, cfg, cfg.diagonalProb); err != nil {
			return err
		}

		// 2) Add all vertices in row-major order.
		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				pos := core.Position{
					X: cfg.originX + float64(c)*cfg.spacing,
					Y: cfg.originY + float64(r)*cfg.spacing,
				}
				if err := addNode(g, MethodGrid, GridID(r, c), pos); err != nil {
					return err
				}
			}
		}

		// 3) Emit edges cell by cell.
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				if err := gridCell(g, cfg, rows, cols, r, c); err != nil {
					return err
				}
			}
		}

		// 4) Default heuristics toward the bottom-right corner.
		if cfg.noHeuristics || cfg.heuristicGoal != "" {
			return nil
		}

		return AssignHeuristics(g, GridID(rows-1, cols-1), cfg.heuristicScale)
	}
}

// gridCell emits the outgoing connections of cell (r,c).
func gridCell(g *core.Graph, cfg builderConfig, rows, cols, r, c int) error {
	u := GridID(r, c)

	// Right neighbor (r, c+1).
	if c+1 < cols {
		if err := link(g, cfg, MethodGrid, u, GridID(r, c+1), cfg.weight(gridWeightFn)); err != nil {
			return err
		}
	}
	// Bottom neighbor (r+1, c).
	if r+1 < rows {
		if err := link(g, cfg, MethodGrid, u, GridID(r+1, c), cfg.weight(gridWeightFn)); err != nil {
			return err
		}
	}
	// Diagonal (r+1, c+1).
	if r+1 < rows && c+1 < cols && coin(cfg) {
		if err := link(g, cfg, MethodGrid, u, GridID(r+1, c+1), cfg.diagonalWeight(diagonalWeightFn)); err != nil {
			return err
		}
	}
	// Anti-diagonal (r+1, c-1).
	if r+1 < rows && c > 0 && coin(cfg) {
		if err := link(g, cfg, MethodGrid, u, GridID(r+1, c-1), cfg.diagonalWeight(diagonalWeightFn)); err != nil {
			return err
		}
	}

	return nil
}

// coin reports whether a diagonal should be emitted. Probabilities 0 and 1
// never consume the RNG.
func coin(cfg builderConfig) bool {
	switch {
	case cfg.diagonalProb <= MinProbability:
		return false
	case cfg.diagonalProb >= MaxProbability:
		return true
	default:
		return cfg.rng.Float64() < cfg.diagonalProb
	}
}
