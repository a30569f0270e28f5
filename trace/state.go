package trace

// NodeState classifies a node within one Step for display.
type NodeState int

const (
	// StateUnexplored: neither discovered nor expanded.
	StateUnexplored NodeState = iota
	// StateFrontier: pending in the frontier.
	StateFrontier
	// StateVisited: already expanded.
	StateVisited
	// StateCurrent: expanded in this step.
	StateCurrent
	// StatePath: on the final path (terminal step only).
	StatePath
	// StateBestPath: on the best start→goal chain known so far.
	StateBestPath
)

var nodeStateNames = [...]string{
	StateUnexplored: "unexplored",
	StateFrontier:   "frontier",
	StateVisited:    "visited",
	StateCurrent:    "current",
	StatePath:       "path",
	StateBestPath:   "best_path",
}

// String returns the lower-case state name.
func (s NodeState) String() string {
	if s < 0 || int(s) >= len(nodeStateNames) {
		return "unknown"
	}

	return nodeStateNames[s]
}

// State classifies id within s. Precedence, highest first: current, path,
// best path, frontier, visited, unexplored.
func (s Step) State(id string) NodeState {
	switch {
	case id == s.Current && id != "":
		return StateCurrent
	case contains(s.Path, id):
		return StatePath
	case contains(s.BestPath, id):
		return StateBestPath
	case s.Frontier.Has(id):
		return StateFrontier
	case s.Visited.Has(id):
		return StateVisited
	default:
		return StateUnexplored
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}

	return false
}
