// Package builder provides internal helper functions and types
// for configuring edge‐weight distributions in graph constructors.
package builder

import (
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed. Negative results are
// rejected by core.Graph.AddEdge and surface as errors from BuildGraph.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
// Complexity: O(1) time, O(1) space.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
func ConstantWeightFn(value float64) WeightFn {
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// If rng is nil, yields DefaultEdgeWeight to maintain deterministic fallback.
func UniformWeightFn(min, max float64) WeightFn {
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max <= min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// UniformIntWeightFn returns a WeightFn sampling an integer uniformly in
// [min, max] inclusive, the distribution of the sample grid generator.
// If rng is nil, yields min.
func UniformIntWeightFn(min, max int) WeightFn {
	return func(rng *rand.Rand) float64 {
		if rng == nil || max <= min {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev),
// rounding to nearest integer and clipping at 0.
// If rng is nil, yields DefaultEdgeWeight.
func NormalWeightFn(mean, stddev float64) WeightFn {
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		sample := rng.NormFloat64()*math.Abs(stddev) + mean
		if sample < 0 {
			return 0
		}

		return math.Round(sample)
	}
}

// gridWeightFn and diagonalWeightFn are the sample generator defaults.
var (
	gridWeightFn     = UniformIntWeightFn(GridMinWeight, GridMaxWeight)
	diagonalWeightFn = UniformIntWeightFn(DiagonalMinWeight, DiagonalMaxWeight)
)

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntWeights sets integer weights ∼ U{min..max} via UniformIntWeightFn.
func WithIntWeights(min, max int) BuilderOption {
	return WithWeightFn(UniformIntWeightFn(min, max))
}

// WithNormalWeight sets weights ∼ N(mean,stddev) via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}
