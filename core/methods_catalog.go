// File: methods_catalog.go
// Role: Enumeration, cloning and invariant checks.
// Determinism:
//   - Nodes(), NodeIDs() and Edges() return results sorted by ID.
//   - Neighbors() and EdgeWeight() follow adjacency insertion order.
// Concurrency:
//   - Read lock only; Clone returns an independent graph.

package core

import (
	"fmt"
	"sort"
)

// Nodes returns copies of all nodes sorted by ID.
// Complexity: O(V·log V)
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, copyNode(n))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeIDs returns all node IDs in sorted order.
// Complexity: O(V·log V)
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns copies of all edges sorted by ID.
// Complexity: O(E·log E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// OutEdges returns copies of the outgoing edges of id in adjacency
// insertion order. Re-adding them in this order reproduces Neighbors(id).
// Complexity: O(d)
func (g *Graph) OutEdges(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	entries := g.adjacency[id]
	out := make([]Edge, 0, len(entries))
	for _, e := range entries {
		out = append(out, *g.edges[e.edgeID])
	}

	return out
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, false
	}

	return *e, true
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of directed edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(d).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.EdgeWeight(from, to)

	return ok
}

// EdgeWeight returns the weight of the first from→to entry in adjacency order.
// With parallel edges the earliest inserted one wins.
// Complexity: O(d).
func (g *Graph) EdgeWeight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.adjacency[from] {
		if e.to == to {
			return e.weight, true
		}
	}

	return 0, false
}

// Clone returns a deep copy of the Graph: nodes, edges, and adjacency order.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	clone := &Graph{
		nodes:     make(map[string]*Node, len(g.nodes)),
		edges:     make(map[string]*Edge, len(g.edges)),
		adjacency: make(map[string][]adjEntry, len(g.adjacency)),
	}
	for id, n := range g.nodes {
		c := copyNode(n)
		clone.nodes[id] = &c
	}
	for id, e := range g.edges {
		ne := *e
		clone.edges[id] = &ne
	}
	for id, entries := range g.adjacency {
		clone.adjacency[id] = append([]adjEntry(nil), entries...)
	}

	return clone
}

// Validate re-checks the construction invariants: every edge references
// existing nodes and appears exactly once in the adjacency of its source,
// and every adjacency entry matches a stored edge.
// Returns nil or an error wrapping ErrInconsistentAdjacency.
// Complexity: O(V + E)
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[string]int, len(g.edges))
	for from, entries := range g.adjacency {
		if _, ok := g.nodes[from]; !ok {
			return fmt.Errorf("%w: adjacency for unknown node %q", ErrInconsistentAdjacency, from)
		}
		for _, a := range entries {
			e, ok := g.edges[a.edgeID]
			if !ok {
				return fmt.Errorf("%w: entry %s→%s has no edge", ErrInconsistentAdjacency, from, a.to)
			}
			if e.From != from || e.To != a.to || e.Weight != a.weight {
				return fmt.Errorf("%w: entry %s→%s disagrees with edge %q", ErrInconsistentAdjacency, from, a.to, e.ID)
			}
			seen[a.edgeID]++
		}
	}
	for id, e := range g.edges {
		if _, ok := g.nodes[e.From]; !ok {
			return fmt.Errorf("%w: edge %q source %q", ErrNodeNotFound, id, e.From)
		}
		if _, ok := g.nodes[e.To]; !ok {
			return fmt.Errorf("%w: edge %q target %q", ErrNodeNotFound, id, e.To)
		}
		if seen[id] != 1 {
			return fmt.Errorf("%w: edge %q indexed %d times", ErrInconsistentAdjacency, id, seen[id])
		}
	}

	return nil
}
