package trace

import "github.com/katalvlaran/searchtrace/core"

// ReconstructPath walks parents backward from goal until it reaches a root
// (a node whose parent is ""), and returns the path start→goal.
//
// It returns nil when goal was never discovered, when the walk hits a node
// without a parent entry, when it ends anywhere but start, or when it
// revisits a node (a cycle in the parent map).
// Complexity: O(len(path)).
func ReconstructPath(parents map[string]string, start, goal string) []string {
	if _, ok := parents[goal]; !ok {
		return nil
	}

	rev := []string{goal}
	seen := map[string]bool{goal: true}
	cur := goal
	for {
		p, ok := parents[cur]
		if !ok {
			return nil
		}
		if p == "" {
			break
		}
		if seen[p] {
			return nil
		}
		seen[p] = true
		rev = append(rev, p)
		cur = p
	}
	if cur != start {
		return nil
	}

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// PathCost sums edge weights along path, taking the first matching adjacency
// entry between consecutive nodes. ok is false if some hop has no edge.
func PathCost(g *core.Graph, path []string) (float64, bool) {
	var cost float64
	for i := 0; i+1 < len(path); i++ {
		w, ok := g.EdgeWeight(path[i], path[i+1])
		if !ok {
			return cost, false
		}
		cost += w
	}

	return cost, true
}

// HopCost is the unit-cost length of path (hops), 0 for an empty path.
func HopCost(path []string) float64 {
	if len(path) == 0 {
		return 0
	}

	return float64(len(path) - 1)
}
