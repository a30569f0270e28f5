// SPDX-License-Identifier: MIT
// Package: searchtrace/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn           = DefaultIDFn        ("0","1","2",...)
//   • rng            = nil                (pure/deterministic unless seeded)
//   • weightFn       = nil                (constructor default)
//   • spacing        = DefaultSpacing     (60)
//   • origin         = DefaultOrigin      (50,50)
//   • diagonalProb   = DefaultDiagonalProbability (0.3)
//   • heuristicScale = DefaultHeuristicScale (50)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy for index-based topologies.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Edge weight generators; nil selects the constructor default.
	weightFn         WeightFn
	diagonalWeightFn WeightFn

	// Layout: distance between neighbors and top-left origin.
	spacing float64
	originX float64
	originY float64

	// Grid diagonal probability in [0,1].
	diagonalProb float64

	// Heuristic assignment: goal ("" = constructor default) and divisor.
	heuristicGoal  string
	heuristicScale float64
	noHeuristics   bool

	// directed emits one-way arcs instead of bidirectional pairs.
	directed bool

	// err records the first invalid option; BuildGraph surfaces it.
	err error
}

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultSpacing is the distance between adjacent layout positions.
	DefaultSpacing = 60.0
	// DefaultOrigin is the X and Y of the first layout position.
	DefaultOrigin = 50.0
	// DefaultDiagonalProbability is the chance of each grid diagonal.
	DefaultDiagonalProbability = 0.3
	// DefaultHeuristicScale divides Euclidean distance into a heuristic.
	DefaultHeuristicScale = 50.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:           DefaultIDFn,
		spacing:        DefaultSpacing,
		originX:        DefaultOrigin,
		originY:        DefaultOrigin,
		diagonalProb:   DefaultDiagonalProbability,
		heuristicScale: DefaultHeuristicScale,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// weight draws one edge weight from the configured generator, or from def
// when none was configured.
func (c builderConfig) weight(def WeightFn) float64 {
	if c.weightFn != nil {
		return c.weightFn(c.rng)
	}

	return def(c.rng)
}

// diagonalWeight draws one grid diagonal weight.
func (c builderConfig) diagonalWeight(def WeightFn) float64 {
	if c.diagonalWeightFn != nil {
		return c.diagonalWeightFn(c.rng)
	}

	return def(c.rng)
}

// violate records the first option violation.
func (c *builderConfig) violate(err error) {
	if c.err == nil {
		c.err = err
	}
}
