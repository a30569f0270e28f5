// SPDX-License-Identifier: MIT
// Package: searchtrace/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1) on a circle.
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//   • Weight policy: cfg.weightFn(cfg.rng), default DefaultEdgeWeight.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(n) for the ID slice.

package builder

import (
	"github.com/katalvlaran/searchtrace/core"
)

// Cycle returns a Constructor that builds an n-vertex ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		ids, err := addRing(g, cfg, MethodCycle, n)
		if err != nil {
			return err
		}

		// Emit edges in ascending i; for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err = link(g, cfg, MethodCycle, ids[i], ids[(i+1)%n], cfg.weight(DefaultWeightFn)); err != nil {
				return err
			}
		}

		return nil
	}
}
