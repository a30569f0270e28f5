// Package builder provides reusable “functional‐options”‐style graph
// fixtures for the search strategies: deterministic topologies with node
// positions, edge weights and heuristics.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        resolve options, run constructors in order.
//     – Constructor:       func(*core.Graph, builderConfig) error.
//   - Topologies:
//     – Grid:              the sample grid (IDs "A0-0", weights 1–9,
//     30 % diagonals weighted 2–10, heuristics to the far corner).
//     – Diamond:           A→{B,C}→D fixture with a known shortest path.
//     – Path, Cycle, Complete, RandomSparse.
//   - Vertex‐ID schemes (IDFn): DefaultIDFn, ExcelColumnIDFn,
//     SymbolNumberIDFn, and GridID for grid cells.
//   - Edge‐weight distributions (WeightFn): DefaultWeightFn,
//     ConstantWeightFn, UniformWeightFn, UniformIntWeightFn, NormalWeightFn.
//   - Heuristics: EuclideanHeuristic, AssignHeuristics, WithHeuristicTo,
//     WithHeuristicScale, WithoutHeuristics.
//
// Guarantees:
//
//   - Determinism: equal options (including WithSeed) and constructor order
//     produce identical graphs, including adjacency order.
//   - No panics: invalid options surface as ErrOptionViolation and invalid
//     parameters as sentinel errors from BuildGraph.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.Grid(15, 15),
//	)
package builder
