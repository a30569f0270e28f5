package strategy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/searchtrace/astar"
	"github.com/katalvlaran/searchtrace/bfs"
	"github.com/katalvlaran/searchtrace/dfs"
	"github.com/katalvlaran/searchtrace/dijkstra"
	"github.com/katalvlaran/searchtrace/greedy"
)

// Sentinel errors for dispatch.
var (
	// ErrUnknownAlgorithm is returned for an Algorithm or name outside the enum.
	ErrUnknownAlgorithm = errors.New("strategy: unknown algorithm")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("strategy: graph is nil")
)

// Algorithm enumerates the traced search strategies.
type Algorithm int

const (
	BFS Algorithm = iota
	DFS
	Dijkstra
	AStar
	Greedy
)

// info mirrors the per-algorithm display configuration.
type info struct {
	tag               string
	name              string
	requiresHeuristic bool
	requiresWeights   bool
}

var catalog = [...]info{
	BFS:      {bfs.Name, "Breadth-First Search", false, false},
	DFS:      {dfs.Name, "Depth-First Search", false, false},
	Dijkstra: {dijkstra.Name, "Dijkstra's Algorithm", false, true},
	AStar:    {astar.Name, "A* Search", true, true},
	Greedy:   {greedy.Name, "Greedy Best-First Search", true, false},
}

// All returns every algorithm in enum order.
func All() []Algorithm {
	return []Algorithm{BFS, DFS, Dijkstra, AStar, Greedy}
}

// Valid reports whether a is a member of the enum.
func (a Algorithm) Valid() bool {
	return a >= BFS && int(a) < len(catalog)
}

// String returns the short tag ("bfs", "astar", ...), the same value the
// algorithm records in trace.Result.Algorithm.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return catalog[a].tag
}

// Name returns the display name, e.g. "Dijkstra's Algorithm".
func (a Algorithm) Name() string {
	if !a.Valid() {
		return a.String()
	}

	return catalog[a].name
}

// RequiresHeuristic reports whether node heuristics drive the selection.
func (a Algorithm) RequiresHeuristic() bool {
	return a.Valid() && catalog[a].requiresHeuristic
}

// RequiresWeights reports whether edge weights drive the selection.
func (a Algorithm) RequiresWeights() bool {
	return a.Valid() && catalog[a].requiresWeights
}

// MarshalText encodes the short tag.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText accepts anything Parse accepts.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// Parse maps a case-insensitive name to an Algorithm. Accepted: bfs, dfs,
// dijkstra, astar (or a*, a-star), greedy.
func Parse(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	case "greedy":
		return Greedy, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// ParseList parses a comma-separated list; empty input yields All().
// Duplicates are dropped, first occurrence wins.
func ParseList(s string) ([]Algorithm, error) {
	if strings.TrimSpace(s) == "" {
		return All(), nil
	}
	var out []Algorithm
	for _, part := range strings.Split(s, ",") {
		a, err := Parse(part)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return dedupe(out), nil
}

// dedupe drops repeated algorithms, keeping first occurrences in order.
func dedupe(algs []Algorithm) []Algorithm {
	seen := make(map[Algorithm]bool, len(algs))
	out := algs[:0:0]
	for _, a := range algs {
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}

	return out
}
