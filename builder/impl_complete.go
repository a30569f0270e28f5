// SPDX-License-Identifier: MIT
// Package: searchtrace/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1) on a circle.
//   • Emits each unordered pair {i,j} with i<j exactly once (as a
//     bidirectional pair, or i→j only under WithDirected).
//   • Weight policy: cfg.weightFn(cfg.rng), default DefaultEdgeWeight.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges emission.
//   • Space: O(n) extra for the ID slice.
//
// Determinism:
//   • Deterministic pair order: lexicographic by (i,j), i<j.

package builder

import (
	"github.com/katalvlaran/searchtrace/core"
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		ids, err := addRing(g, cfg, MethodComplete, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = link(g, cfg, MethodComplete, ids[i], ids[j], cfg.weight(DefaultWeightFn)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
