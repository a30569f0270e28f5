// Package core defines the central Graph, Node, and Edge types used by every
// search strategy, and provides thread-safe primitives for building and
// querying graphs.
//
// A single sync.RWMutex guards nodes, edges and the adjacency index, so a
// built graph can be searched from many goroutines at once.
//
// This file declares Position, Node, Edge, Neighbor, Graph, the option types,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID           - node ID is the empty string.
//	ErrEmptyEdgeID           - explicit edge ID is the empty string.
//	ErrNodeNotFound          - requested node does not exist.
//	ErrEdgeNotFound          - requested edge does not exist.
//	ErrDuplicateNode         - node ID already present.
//	ErrDuplicateEdge         - edge ID already present.
//	ErrNegativeWeight        - edge weight below zero.
//	ErrBadWeight             - edge weight or heuristic is NaN or infinite.
//	ErrInconsistentAdjacency - adjacency index disagrees with the edge set.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrEmptyEdgeID indicates that an explicit edge ID was empty.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateNode indicates a node with the same ID already exists.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrDuplicateEdge indicates an edge with the same ID already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge ID")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates a NaN or infinite weight or heuristic value.
	ErrBadWeight = errors.New("core: weight must be a finite number")

	// ErrInconsistentAdjacency indicates the adjacency index and the edge
	// catalog no longer describe the same set of edges.
	ErrInconsistentAdjacency = errors.New("core: adjacency index inconsistent with edges")
)

// Position is a 2D coordinate. It is only used to derive heuristics.
type Position struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

// Node represents a vertex of the graph.
//
// Heuristic is the estimated cost-to-goal; nil means "absent" and is read as 0.
// Admissibility is the caller's responsibility.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	// Position is the 2D placement used by heuristic helpers.
	Position Position

	// Label is the display label. Defaults to ID.
	Label string

	// Heuristic is the optional cost-to-goal estimate.
	Heuristic *float64
}

// HeuristicValue returns the node heuristic, or 0 if it is absent.
func (n Node) HeuristicValue() float64 {
	if n.Heuristic == nil {
		return 0
	}

	return *n.Heuristic
}

// Edge is a directed, weighted connection From→To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source node ID.
	From string

	// To is the target node ID.
	To string

	// Weight is the non-negative traversal cost.
	Weight float64
}

// Neighbor is one entry of the adjacency index: a reachable node and the
// weight of the edge leading to it.
type Neighbor struct {
	ID     string
	Weight float64
}

// NodeOption configures a node when it is added.
type NodeOption func(*Node)

// WithLabel sets the display label of a node.
func WithLabel(label string) NodeOption {
	return func(n *Node) { n.Label = label }
}

// WithHeuristic sets the heuristic value of a node.
func WithHeuristic(h float64) NodeOption {
	return func(n *Node) {
		v := h
		n.Heuristic = &v
	}
}

// EdgeOption configures an edge when it is added.
type EdgeOption func(*edgeConfig)

// edgeConfig collects per-call edge settings.
type edgeConfig struct {
	id            string
	reverseID     string
	bidirectional bool
}

// WithEdgeID overrides the generated "<from>-<to>" edge ID.
func WithEdgeID(id string) EdgeOption {
	return func(c *edgeConfig) { c.id = id }
}

// WithBidirectional also adds the mirror edge To→From with the same weight.
// The mirror gets the ID "<to>-<from>" unless WithReverseEdgeID is given.
func WithBidirectional() EdgeOption {
	return func(c *edgeConfig) { c.bidirectional = true }
}

// WithReverseEdgeID sets the ID of the mirror edge and implies WithBidirectional.
func WithReverseEdgeID(id string) EdgeOption {
	return func(c *edgeConfig) {
		c.bidirectional = true
		c.reverseID = id
	}
}

// Graph is the in-memory search graph.
//
// nodes and edges are keyed by ID. adjacency keeps, for every node, the
// outgoing neighbors in edge insertion order; that order is what every
// strategy iterates and therefore what makes traces deterministic.
type Graph struct {
	mu sync.RWMutex // guards everything below

	nodes     map[string]*Node      // node ID → Node
	edges     map[string]*Edge      // edge ID → Edge
	adjacency map[string][]adjEntry // node ID → outgoing entries, insertion order
}

// adjEntry is the internal adjacency record; edgeID ties it back to the
// edge catalog so Validate can check the invariant both ways.
type adjEntry struct {
	to     string
	weight float64
	edgeID string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string][]adjEntry),
	}
}
