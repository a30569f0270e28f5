// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// TestDefaults pins the deterministic defaults.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil")
	}
	if got := cfg.idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}
	if cfg.spacing != 60 || cfg.originX != 50 || cfg.originY != 50 {
		t.Errorf("default layout: got spacing=%g origin=(%g,%g)", cfg.spacing, cfg.originX, cfg.originY)
	}
	if cfg.diagonalProb != 0.3 || cfg.heuristicScale != 50 {
		t.Errorf("default grid knobs: got p=%g scale=%g", cfg.diagonalProb, cfg.heuristicScale)
	}
	if w := cfg.weight(gridWeightFn); w != GridMinWeight {
		t.Errorf("grid weight without rng: expected %d, got %g", GridMinWeight, w)
	}
}

// TestIDSchemeOptions verifies that ID scheme options are applied in order
// and that nil schemes are ignored (no-op).
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	if got := newBuilderConfig(WithExcelColumnIDs()).idFn(27); got != "AB" {
		t.Errorf("WithExcelColumnIDs: expected \"AB\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbNumb("n")).idFn(2); got != "n2" {
		t.Errorf("WithSymbNumb: expected \"n2\", got %q", got)
	}
	if got := newBuilderConfig(WithExcelColumnIDs(), WithDefaultIDs()).idFn(3); got != "3" {
		t.Errorf("WithDefaultIDs override: expected \"3\", got %q", got)
	}
	if got := newBuilderConfig(WithIDScheme(nil)).idFn(5); got != "5" {
		t.Errorf("WithIDScheme(nil): expected default \"5\", got %q", got)
	}
}

// TestRNGOptions verifies reproducibility with WithSeed and that nil in
// WithRand is ignored.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	if a.rng.Int63() != b.rng.Int63() {
		t.Errorf("WithSeed: equal seeds must produce equal streams")
	}

	r := rand.New(rand.NewSource(1))
	if c := newBuilderConfig(WithRand(r)); c.rng != r {
		t.Errorf("WithRand: rng not attached")
	}
	if c := newBuilderConfig(WithRand(r), WithRand(nil)); c.rng != r {
		t.Errorf("WithRand(nil): must be ignored")
	}
}

// TestOptionViolations verifies that meaningless values are recorded, not panicked on.
func TestOptionViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opt  BuilderOption
	}{
		{"spacing_zero", WithSpacing(0)},
		{"spacing_inf", WithSpacing(math.Inf(1))},
		{"probability_high", WithDiagonalProbability(1.5)},
		{"probability_nan", WithDiagonalProbability(math.NaN())},
		{"scale_negative", WithHeuristicScale(-1)},
	}
	for _, tc := range tests {
		cfg := newBuilderConfig(tc.opt)
		if !errors.Is(cfg.err, ErrOptionViolation) {
			t.Errorf("%s: expected ErrOptionViolation, got %v", tc.name, cfg.err)
		}
	}

	cfg := newBuilderConfig(WithDiagonalProbability(2))
	if !errors.Is(cfg.err, ErrInvalidProbability) {
		t.Errorf("diagonal probability: expected ErrInvalidProbability in chain, got %v", cfg.err)
	}

	cfg = newBuilderConfig(WithSpacing(0), WithSpacing(10))
	if cfg.err == nil || cfg.spacing != 10 {
		t.Errorf("first violation must stick while later valid options still apply")
	}
}

// TestHeuristicOptions verifies last-wins between WithHeuristicTo and WithoutHeuristics.
func TestHeuristicOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithHeuristicTo("X"), WithoutHeuristics())
	if !cfg.noHeuristics || cfg.heuristicGoal != "" {
		t.Errorf("WithoutHeuristics must clear the goal")
	}
	cfg = newBuilderConfig(WithoutHeuristics(), WithHeuristicTo("X"))
	if cfg.noHeuristics || cfg.heuristicGoal != "X" {
		t.Errorf("WithHeuristicTo must re-enable heuristics")
	}
}
