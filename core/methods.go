// Package core: Graph method implementations
//
// This file provides the construction surface (AddNode, AddEdge, heuristics)
// and the read-only search contract (Node, Neighbors, HasNode, Heuristic).
// All construction-time invariants are enforced here so that strategies never
// have to handle a malformed graph.

package core

import (
	"fmt"
	"math"
)

// AddNode inserts a node at pos. The label defaults to the ID.
// Returns ErrEmptyNodeID, ErrDuplicateNode, or ErrBadWeight for a non-finite heuristic.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, pos Position, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	n := &Node{ID: id, Position: pos, Label: id}
	for _, opt := range opts {
		opt(n)
	}
	if n.Label == "" {
		n.Label = id
	}
	if n.Heuristic != nil && !finite(*n.Heuristic) {
		return fmt.Errorf("%w: heuristic of %q", ErrBadWeight, id)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	g.nodes[id] = n
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}

	return nil
}

// AddEdge creates the directed edge from→to with the given weight and returns its ID.
// Both endpoints must already exist. With WithBidirectional the mirror edge is added
// in the same critical section; either both edges are stored or neither is.
//
// Returns ErrEmptyNodeID, ErrNodeNotFound, ErrNegativeWeight, ErrBadWeight,
// ErrEmptyEdgeID or ErrDuplicateEdge.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}
	if !finite(weight) {
		return "", fmt.Errorf("%w: edge %s→%s", ErrBadWeight, from, to)
	}
	if weight < 0 {
		return "", fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, from, to, weight)
	}

	// 2) Resolve options
	cfg := edgeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	eid := cfg.id
	if eid == "" {
		eid = defaultEdgeID(from, to)
	}
	rid := cfg.reverseID
	if rid == "" {
		rid = defaultEdgeID(to, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Endpoints must exist
	if _, ok := g.nodes[from]; !ok {
		return "", fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return "", fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}

	// 4) ID uniqueness, checked for both directions before any insert
	if _, dup := g.edges[eid]; dup {
		return "", fmt.Errorf("%w: %q", ErrDuplicateEdge, eid)
	}
	if cfg.bidirectional {
		if rid == eid {
			return "", fmt.Errorf("%w: %q", ErrDuplicateEdge, rid)
		}
		if _, dup := g.edges[rid]; dup {
			return "", fmt.Errorf("%w: %q", ErrDuplicateEdge, rid)
		}
	}

	// 5) Store
	g.insertEdge(&Edge{ID: eid, From: from, To: to, Weight: weight})
	if cfg.bidirectional {
		g.insertEdge(&Edge{ID: rid, From: to, To: from, Weight: weight})
	}

	return eid, nil
}

// insertEdge records e in the catalog and appends it to the adjacency of e.From.
// Caller holds the write lock.
func (g *Graph) insertEdge(e *Edge) {
	g.edges[e.ID] = e
	g.adjacency[e.From] = append(g.adjacency[e.From], adjEntry{to: e.To, weight: e.Weight, edgeID: e.ID})
}

// SetHeuristic assigns the heuristic value of node id.
// Returns ErrNodeNotFound or ErrBadWeight.
func (g *Graph) SetHeuristic(id string, h float64) error {
	if !finite(h) {
		return fmt.Errorf("%w: heuristic of %q", ErrBadWeight, id)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	v := h
	n.Heuristic = &v

	return nil
}

// ClearHeuristic removes the heuristic of node id, so it reads as 0 again.
func (g *Graph) ClearHeuristic(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	n.Heuristic = nil

	return nil
}

// Search-facing read contract.
////////////////////

// Node returns a copy of the node with the given ID.
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}

	return copyNode(n), true
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Neighbors returns the outgoing (neighbor, weight) pairs of id in edge
// insertion order. The slice is a fresh copy; it is empty when id has no
// outgoing edges or does not exist.
// Complexity: O(d).
func (g *Graph) Neighbors(id string) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()
	entries := g.adjacency[id]
	out := make([]Neighbor, len(entries))
	for i, e := range entries {
		out[i] = Neighbor{ID: e.to, Weight: e.weight}
	}

	return out
}

// Heuristic returns the heuristic of id, or 0 if it is absent or id is unknown.
// Complexity: O(1).
func (g *Graph) Heuristic(id string) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return 0
	}

	return n.HeuristicValue()
}

// Internal helpers:
////////////////////

// defaultEdgeID formats the "<from>-<to>" identifier used by the sample generator.
func defaultEdgeID(from, to string) string {
	return from + "-" + to
}

// copyNode returns a value copy that shares no pointers with the stored node.
func copyNode(n *Node) Node {
	out := *n
	if n.Heuristic != nil {
		h := *n.Heuristic
		out.Heuristic = &h
	}

	return out
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
