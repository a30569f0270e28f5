// SPDX-License-Identifier: MIT
// Package: searchtrace/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1), laid out
//     on a horizontal line starting at the origin.
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng), default DefaultEdgeWeight.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/searchtrace/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			pos := core.Position{X: cfg.originX + float64(i)*cfg.spacing, Y: cfg.originY}
			if err := addNode(g, MethodPath, cfg.idFn(i), pos); err != nil {
				return err
			}
		}

		for i := 1; i < n; i++ {
			if err := link(g, cfg, MethodPath, cfg.idFn(i-1), cfg.idFn(i), cfg.weight(DefaultWeightFn)); err != nil {
				return err
			}
		}

		return nil
	}
}
