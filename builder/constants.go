// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodDiamond is the canonical name for the Diamond constructor.
	MethodDiamond = "Diamond"
	// MethodHeuristics is the canonical name for AssignHeuristics.
	MethodHeuristics = "AssignHeuristics"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a ring.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinCompleteNodes is the smallest size for K_n.
const MinCompleteNodes = 1

// MinRandomSparseNodes is the smallest size for RandomSparse.
const MinRandomSparseNodes = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

//-----------------------------------------------------------------------------
// Weights and Probability Bounds
//-----------------------------------------------------------------------------

// Grid weights drawn by the sample generator: orthogonal edges in
// [GridMinWeight, GridMaxWeight], diagonals in [DiagonalMinWeight, DiagonalMaxWeight].
const (
	GridMinWeight     = 1
	GridMaxWeight     = 9
	DiagonalMinWeight = 2
	DiagonalMaxWeight = 10
)

// MinProbability is the lower bound for a probability parameter, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for a probability parameter, inclusive.
const MaxProbability = 1.0
