// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/searchtrace/builder"
)

// TestWeightFnBehavior covers the runtime behavior of each WeightFn:
//   - DefaultWeightFn always returns DefaultEdgeWeight.
//   - ConstantWeightFn returns the fixed value.
//   - UniformWeightFn returns DefaultEdgeWeight on nil RNG, and values in [min,max).
//   - UniformIntWeightFn returns min on nil RNG, and integers in [min,max].
//   - NormalWeightFn returns DefaultEdgeWeight on nil RNG and non-negative samples.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	if w := builder.DefaultWeightFn(nil); w != builder.DefaultEdgeWeight {
		t.Errorf("DefaultWeightFn: expected %g, got %g", builder.DefaultEdgeWeight, w)
	}
	if w := builder.ConstantWeightFn(7.5)(nil); w != 7.5 {
		t.Errorf("ConstantWeightFn: expected 7.5, got %g", w)
	}
	if w := builder.UniformWeightFn(2, 3)(nil); w != builder.DefaultEdgeWeight {
		t.Errorf("UniformWeightFn(nil rng): expected default, got %g", w)
	}
	if w := builder.UniformIntWeightFn(4, 9)(nil); w != 4 {
		t.Errorf("UniformIntWeightFn(nil rng): expected 4, got %g", w)
	}
	if w := builder.NormalWeightFn(10, 1)(nil); w != builder.DefaultEdgeWeight {
		t.Errorf("NormalWeightFn(nil rng): expected default, got %g", w)
	}

	rng := rand.New(rand.NewSource(1))
	uniform := builder.UniformWeightFn(2, 3)
	ints := builder.UniformIntWeightFn(1, 9)
	normal := builder.NormalWeightFn(0, 5)
	seen := make(map[float64]bool)
	for i := 0; i < 500; i++ {
		if w := uniform(rng); w < 2 || w >= 3 {
			t.Fatalf("UniformWeightFn: %g out of [2,3)", w)
		}
		w := ints(rng)
		if w < 1 || w > 9 || w != float64(int(w)) {
			t.Fatalf("UniformIntWeightFn: %g is not an integer in [1,9]", w)
		}
		seen[w] = true
		if w := normal(rng); w < 0 {
			t.Fatalf("NormalWeightFn: negative sample %g", w)
		}
	}
	if len(seen) != 9 {
		t.Errorf("UniformIntWeightFn: expected all 9 values, saw %d", len(seen))
	}

	if w := builder.UniformIntWeightFn(3, 3)(rng); w != 3 {
		t.Errorf("UniformIntWeightFn degenerate: expected 3, got %g", w)
	}
}
