// SPDX-License-Identifier: MIT
// Package: searchtrace/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; invalid options and parameters surface as sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/searchtrace/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Assign a Position to every node they add.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. When WithHeuristicTo
// was supplied, heuristics toward that goal are assigned last.
//
// Any error is wrapped with the context "BuildGraph: %w" and returned
// immediately; no partial graph is returned.
//
// Errors:
//   - ErrOptionViolation for meaningless option values.
//   - Constructor sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//   - core errors (e.g. core.ErrNegativeWeight from a custom WeightFn).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", cfg.err)
	}

	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if cfg.heuristicGoal != "" {
		if err := AssignHeuristics(g, cfg.heuristicGoal, cfg.heuristicScale); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. Unless WithDirected is set,
// every connection is emitted as a bidirectional edge pair "u-v"/"v-u".

// Grid builds a rows×cols sample grid with IDs GridID(r,c), random integer
// weights and optional diagonals; heuristics point at the bottom-right corner.
//func Grid(rows, cols int) Constructor

// Path builds a simple path P_n (n ≥ 2) laid out on a horizontal line.
//func Path(n int) Constructor

// Cycle builds an n-vertex ring C_n (n ≥ 3) laid out on a circle.
//func Cycle(n int) Constructor

// Complete builds K_n (n ≥ 1) laid out on a circle.
//func Complete(n int) Constructor

// RandomSparse builds an Erdős–Rényi-like sparse graph; requires an RNG for 0<p<1.
//func RandomSparse(n int, p float64) Constructor

// Diamond builds the fixed four-node directed fixture A→{B,C}→D.
//func Diamond() Constructor
