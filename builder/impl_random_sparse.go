// SPDX-License-Identifier: MIT
// Package: searchtrace/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Default: iterate unordered pairs {i,j} with i<j, emit bidirectional pairs.
//   - WithDirected: iterate ordered pairs (i,j), i≠j, emit one-way arcs.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1) on a circle.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//   - Space: O(n) for the ID slice.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc; a weight is drawn
//     right after each successful trial.

package builder

import (
	"github.com/katalvlaran/searchtrace/core"
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if err := validateRand(MethodRandomSparse, cfg, p); err != nil {
			return err
		}

		// 2) Add all vertices deterministically via cfg.idFn.
		ids, err := addRing(g, cfg, MethodRandomSparse, n)
		if err != nil {
			return err
		}

		// 3) Sample edges with a stable, documented order.
		var i, j int
		for i = 0; i < n; i++ {
			start := i + 1
			if cfg.directed {
				start = 0
			}
			for j = start; j < n; j++ {
				if i == j || !trial(cfg, p) {
					continue
				}
				if err = link(g, cfg, MethodRandomSparse, ids[i], ids[j], cfg.weight(DefaultWeightFn)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial is one Bernoulli draw; p ∈ {0,1} never consumes the RNG.
func trial(cfg builderConfig, p float64) bool {
	switch {
	case p <= MinProbability:
		return false
	case p >= MaxProbability:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
