package strategy

import (
	"fmt"

	"github.com/katalvlaran/searchtrace/astar"
	"github.com/katalvlaran/searchtrace/bfs"
	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/dfs"
	"github.com/katalvlaran/searchtrace/dijkstra"
	"github.com/katalvlaran/searchtrace/greedy"
	"github.com/katalvlaran/searchtrace/trace"
)

// Run executes alg on g from start to goal.
// Returns ErrGraphNil, ErrUnknownAlgorithm, or whatever the strategy returns.
func Run(alg Algorithm, g *core.Graph, start, goal string, opts ...trace.Option) (*trace.Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	switch alg {
	case BFS:
		return bfs.Search(g, start, goal, opts...)
	case DFS:
		return dfs.Search(g, start, goal, opts...)
	case Dijkstra:
		return dijkstra.Search(g, start, goal, opts...)
	case AStar:
		return astar.Search(g, start, goal, opts...)
	case Greedy:
		return greedy.Search(g, start, goal, opts...)
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
}
