// Package core provides the thread-safe, in-memory graph model shared by every
// search strategy in searchtrace.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Nodes carry an ID, a 2D Position, a display Label and an optional
//     heuristic (estimated cost-to-goal, read as 0 when absent).
//   - Edges are directed and weighted (float64, finite, ≥ 0). A two-way
//     connection is two edges with independent IDs and identical weight
//     (WithBidirectional).
//   - The adjacency index keeps outgoing neighbors in insertion order, so
//     every traversal over the same graph is reproducible.
//
// Construction invariants are enforced up front: edges may only reference
// existing nodes, weights must be finite and non-negative, IDs must be
// unique. A search therefore never sees a malformed graph.
//
// Search-facing contract (read-only, safe for concurrent readers):
//
//	Node(id string) (Node, bool)      // O(1)
//	HasNode(id string) bool           // O(1)
//	Neighbors(id string) []Neighbor   // O(d), insertion order, fresh copy
//	Heuristic(id string) float64      // O(1), 0 if absent
//
// Construction:
//
//	AddNode(id string, pos Position, opts ...NodeOption) error
//	AddEdge(from, to string, w float64, opts ...EdgeOption) (edgeID string, err error)
//	SetHeuristic(id string, h float64) error
//	ClearHeuristic(id string) error
//
// Catalog:
//
//	Nodes() []Node, NodeIDs() []string, Edges() []Edge  // sorted by ID
//	Edge(id), EdgeWeight(from,to), HasEdge(from,to)
//	NodeCount(), EdgeCount(), Clone(), Validate()
//
// Options:
//
//	WithLabel(label), WithHeuristic(h)              // NodeOption
//	WithEdgeID(id), WithBidirectional(),
//	WithReverseEdgeID(id)                           // EdgeOption
//
// Default edge IDs are "<from>-<to>", matching the sample generator in
// package builder.
package core
