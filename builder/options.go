// SPDX-License-Identifier: MIT
// Package: searchtrace/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Meaningless inputs are recorded as ErrOptionViolation and reported by
//     BuildGraph; option constructors never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Nil is ignored.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand provides an explicit RNG for stochastic builders. Nil is ignored.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Nil restores the
// constructor default.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithDiagonalWeightFn overrides the weight generator for grid diagonals.
func WithDiagonalWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		c.diagonalWeightFn = fn
	}
}

// WithSpacing sets the distance between adjacent layout positions (> 0).
func WithSpacing(d float64) BuilderOption {
	return func(c *builderConfig) {
		if !(d > 0) || math.IsInf(d, 0) {
			c.violate(fmt.Errorf("%w: spacing=%g", ErrOptionViolation, d))
			return
		}
		c.spacing = d
	}
}

// WithOrigin sets the position of the first laid-out node.
func WithOrigin(x, y float64) BuilderOption {
	return func(c *builderConfig) {
		c.originX, c.originY = x, y
	}
}

// WithDiagonalProbability sets the chance of each grid diagonal, in [0,1].
func WithDiagonalProbability(p float64) BuilderOption {
	return func(c *builderConfig) {
		if p < MinProbability || p > MaxProbability || math.IsNaN(p) {
			c.violate(fmt.Errorf("%w: diagonal p=%g: %w", ErrOptionViolation, p, ErrInvalidProbability))
			return
		}
		c.diagonalProb = p
	}
}

// WithHeuristicTo assigns heuristics toward goal after all constructors ran.
func WithHeuristicTo(goal string) BuilderOption {
	return func(c *builderConfig) {
		c.heuristicGoal = goal
		c.noHeuristics = false
	}
}

// WithHeuristicScale sets the divisor applied to Euclidean distance (> 0).
// A scale equal to the spacing keeps grid heuristics admissible.
func WithHeuristicScale(scale float64) BuilderOption {
	return func(c *builderConfig) {
		if !(scale > 0) || math.IsInf(scale, 0) {
			c.violate(fmt.Errorf("%w: heuristic scale=%g", ErrOptionViolation, scale))
			return
		}
		c.heuristicScale = scale
	}
}

// WithoutHeuristics disables every heuristic assignment.
func WithoutHeuristics() BuilderOption {
	return func(c *builderConfig) {
		c.noHeuristics = true
		c.heuristicGoal = ""
	}
}

// WithDirected emits one-way arcs u→v instead of bidirectional pairs.
func WithDirected() BuilderOption {
	return func(c *builderConfig) {
		c.directed = true
	}
}
