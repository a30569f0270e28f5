// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a sentinel-wrapped error with the constructor name
// as prefix when its precondition is violated.
package builder

import "fmt"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Complexity: O(1) time and space.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability || p != p {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateRand requires an RNG whenever 0 < p < 1 (true stochastic sampling).
func validateRand(method string, cfg builderConfig, p float64) error {
	if cfg.rng == nil && p > MinProbability && p < MaxProbability {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}
