package strategy_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchtrace/builder"
	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/strategy"
	"github.com/katalvlaran/searchtrace/trace"
)

func grid(t *testing.T, seed int64, n int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.Grid(n, n))
	require.NoError(t, err)

	return g
}

func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Diamond())
	require.NoError(t, err)

	return g
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want strategy.Algorithm
	}{
		{"bfs", strategy.BFS},
		{"DFS", strategy.DFS},
		{"dijkstra", strategy.Dijkstra},
		{"astar", strategy.AStar},
		{"a*", strategy.AStar},
		{" A-Star ", strategy.AStar},
		{"greedy", strategy.Greedy},
	} {
		got, err := strategy.Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	_, err := strategy.Parse("bellman-ford")
	assert.ErrorIs(t, err, strategy.ErrUnknownAlgorithm)

	list, err := strategy.ParseList("greedy,bfs,greedy")
	require.NoError(t, err)
	assert.Equal(t, []strategy.Algorithm{strategy.Greedy, strategy.BFS}, list)

	list, err = strategy.ParseList("")
	require.NoError(t, err)
	assert.Equal(t, strategy.All(), list)
}

func TestAlgorithmInfo(t *testing.T) {
	assert.Equal(t, "astar", strategy.AStar.String())
	assert.Equal(t, "A* Search", strategy.AStar.Name())
	assert.True(t, strategy.AStar.RequiresHeuristic())
	assert.True(t, strategy.Greedy.RequiresHeuristic())
	assert.False(t, strategy.Dijkstra.RequiresHeuristic())
	assert.True(t, strategy.Dijkstra.RequiresWeights())
	assert.False(t, strategy.BFS.RequiresWeights())
	assert.False(t, strategy.Algorithm(99).Valid())
	assert.Equal(t, "Algorithm(99)", strategy.Algorithm(99).String())

	b, err := strategy.Greedy.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "greedy", string(b))
	var a strategy.Algorithm
	require.NoError(t, a.UnmarshalText([]byte("a*")))
	assert.Equal(t, strategy.AStar, a)
}

func TestRun_Errors(t *testing.T) {
	_, err := strategy.Run(strategy.BFS, nil, "A", "B")
	assert.ErrorIs(t, err, strategy.ErrGraphNil)
	_, err = strategy.Run(strategy.Algorithm(42), diamond(t), "A", "D")
	assert.ErrorIs(t, err, strategy.ErrUnknownAlgorithm)
	_, err = strategy.Run(strategy.Dijkstra, diamond(t), "A", "D", trace.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, trace.ErrOptionViolation)
}

// TestRun_TraceInvariants checks, for every algorithm, that the expansion
// count equals both the visited set and the number of expansion steps,
// that exactly one terminal step closes the trace and that the final path
// is a real start→goal walk.
func TestRun_TraceInvariants(t *testing.T) {
	g := grid(t, 5, 8)
	start, goal := builder.GridID(0, 0), builder.GridID(7, 7)

	for _, alg := range strategy.All() {
		alg := alg
		t.Run(alg.String(), func(t *testing.T) {
			res, err := strategy.Run(alg, g, start, goal)
			require.NoError(t, err)
			require.True(t, res.Found())
			assert.Equal(t, alg.String(), res.Algorithm)

			term, ok := res.Terminal()
			require.True(t, ok)
			assert.Equal(t, res.NodesExpanded, term.Visited.Len())
			assert.Equal(t, res.NodesExpanded, len(res.ExpansionSteps()))
			for _, s := range res.ExpansionSteps() {
				assert.False(t, s.IsTerminal())
			}
			assert.Equal(t, res.FinalPath, term.Path)

			require.NotEmpty(t, res.FinalPath)
			assert.Equal(t, start, res.FinalPath[0])
			assert.Equal(t, goal, res.FinalPath[len(res.FinalPath)-1])
			weighted, ok := trace.PathCost(g, res.FinalPath)
			require.True(t, ok, "consecutive path nodes must be joined by edges")
			switch alg {
			case strategy.BFS, strategy.DFS:
				assert.Equal(t, trace.HopCost(res.FinalPath), res.TotalCost)
			default:
				assert.InDelta(t, weighted, res.TotalCost, 1e-9)
			}

			seen := map[string]bool{}
			for _, s := range res.ExpansionSteps() {
				assert.False(t, seen[s.Current], "%s expanded twice", s.Current)
				seen[s.Current] = true
			}
		})
	}
}

// TestRun_Idempotent runs every algorithm twice on the same input.
func TestRun_Idempotent(t *testing.T) {
	g := grid(t, 9, 6)
	for _, alg := range strategy.All() {
		a, err := strategy.Run(alg, g, builder.GridID(0, 5), builder.GridID(5, 0))
		require.NoError(t, err)
		b, err := strategy.Run(alg, g, builder.GridID(0, 5), builder.GridID(5, 0))
		require.NoError(t, err)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s: traces differ (-first +second):\n%s", alg, diff)
		}
	}
}

// TestRun_BFSHopOptimal: no algorithm finds a path with fewer hops than BFS.
func TestRun_BFSHopOptimal(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		g := grid(t, seed, 7)
		start, goal := builder.GridID(0, 3), builder.GridID(6, 1)
		b, err := strategy.Run(strategy.BFS, g, start, goal)
		require.NoError(t, err)
		for _, alg := range strategy.All() {
			r, err := strategy.Run(alg, g, start, goal)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(b.FinalPath), len(r.FinalPath), "seed %d %s", seed, alg)
		}
	}
}

func TestRun_EdgeCases(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.AddNode("island", core.Position{}))

	for _, alg := range strategy.All() {
		res, err := strategy.Run(alg, g, "A", "island")
		require.NoError(t, err)
		assert.Equal(t, trace.OutcomeNoPath, res.Outcome, alg)
		assert.Empty(t, res.FinalPath)
		assert.Zero(t, res.TotalCost)
		assert.Equal(t, "No path exists from A to island", res.Summary())

		res, err = strategy.Run(alg, g, "B", "B")
		require.NoError(t, err)
		assert.Equal(t, []string{"B"}, res.FinalPath, alg)
		assert.Zero(t, res.TotalCost)
		assert.Len(t, res.Steps, 2)
		assert.Equal(t, "Path found from B to B with cost 0", res.Summary())

		res, err = strategy.Run(alg, g, "A", "nowhere")
		require.NoError(t, err)
		assert.Equal(t, trace.OutcomeGoalMissing, res.Outcome, alg)
		assert.Empty(t, res.Steps)
		assert.Zero(t, res.NodesExpanded)
	}
}

// TestRun_Diamond pins the diamond scenario for every algorithm.
func TestRun_Diamond(t *testing.T) {
	g := diamond(t)
	want := map[strategy.Algorithm]struct {
		path []string
		cost float64
	}{
		strategy.BFS:      {[]string{"A", "B", "D"}, 2},
		strategy.DFS:      {[]string{"A", "C", "D"}, 2},
		strategy.Dijkstra: {[]string{"A", "B", "D"}, 2},
		strategy.AStar:    {[]string{"A", "B", "D"}, 2},
		strategy.Greedy:   {[]string{"A", "B", "D"}, 2},
	}
	for alg, w := range want {
		res, err := strategy.Run(alg, g, "A", "D")
		require.NoError(t, err)
		assert.Equal(t, w.path, res.FinalPath, alg)
		assert.Equal(t, w.cost, res.TotalCost, alg)
	}
}

// TestRun_StepsImmutable mutates the snapshot of an early step and checks
// that later steps are unaffected.
func TestRun_StepsImmutable(t *testing.T) {
	g := grid(t, 2, 5)
	for _, alg := range strategy.All() {
		res, err := strategy.Run(alg, g, builder.GridID(0, 0), builder.GridID(4, 4))
		require.NoError(t, err)
		require.Greater(t, len(res.Steps), 2)

		before := res.Steps[1].Visited.Len()
		res.Steps[0].Visited.Add("intruder")
		res.Steps[0].Frontier.Add("intruder")
		for k := range res.Steps[0].Parents {
			res.Steps[0].Parents[k] = "intruder"
		}
		assert.Equal(t, before, res.Steps[1].Visited.Len(), alg)
		assert.False(t, res.Steps[1].Frontier.Has("intruder"), alg)
		for _, p := range res.Steps[1].Parents {
			assert.NotEqual(t, "intruder", p, alg)
		}
	}
}

func TestCompare(t *testing.T) {
	g := grid(t, 4, 10)
	start, goal := builder.GridID(0, 0), builder.GridID(9, 9)

	var steps atomic.Int64
	hook := trace.WithOnStep(func(trace.Step) error {
		steps.Add(1)
		return nil
	})
	c, err := strategy.Compare(context.Background(), g, start, goal, nil, hook)
	require.NoError(t, err)
	require.Len(t, c.Results, 5)

	total := 0
	for _, alg := range strategy.All() {
		seq, err := strategy.Run(alg, g, start, goal)
		require.NoError(t, err)
		if diff := cmp.Diff(seq, c.Result(alg)); diff != "" {
			t.Errorf("%s: concurrent trace differs from sequential:\n%s", alg, diff)
		}
		total += len(seq.Steps)
	}
	assert.Equal(t, int64(total), steps.Load())

	ranking := c.Ranking()
	require.Len(t, ranking, 5)
	for i := 1; i < len(ranking); i++ {
		prev, cur := c.Result(ranking[i-1]), c.Result(ranking[i])
		assert.LessOrEqual(t, prev.TotalCost, cur.TotalCost)
	}
	assert.LessOrEqual(t, c.Result(strategy.Dijkstra).TotalCost, c.Result(strategy.Greedy).TotalCost)
}

func TestCompare_StepAt(t *testing.T) {
	g := diamond(t)
	c, err := strategy.Compare(context.Background(), g, "A", "D",
		[]strategy.Algorithm{strategy.AStar, strategy.BFS, strategy.AStar})
	require.NoError(t, err)
	assert.Equal(t, []strategy.Algorithm{strategy.AStar, strategy.BFS}, c.Algorithms)

	// BFS expands A, B, C, D; A* reaches D before C.
	assert.Equal(t, 5, c.MaxSteps())
	assert.Len(t, c.Result(strategy.AStar).Steps, 4)
	frame := c.StepAt(1)
	assert.Equal(t, "B", frame[strategy.BFS].Current)
	assert.Equal(t, "B", frame[strategy.AStar].Current)

	last := c.StepAt(100)
	assert.True(t, last[strategy.BFS].IsTerminal())
	assert.Empty(t, c.StepAt(-1))
}

func TestCompare_Errors(t *testing.T) {
	_, err := strategy.Compare(context.Background(), nil, "A", "D", nil)
	assert.ErrorIs(t, err, strategy.ErrGraphNil)

	_, err = strategy.Compare(context.Background(), diamond(t), "A", "D", []strategy.Algorithm{7})
	assert.ErrorIs(t, err, strategy.ErrUnknownAlgorithm)

	boom := errors.New("boom")
	c, err := strategy.Compare(context.Background(), diamond(t), "A", "D",
		[]strategy.Algorithm{strategy.BFS},
		trace.WithOnStep(func(trace.Step) error { return boom }))
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, c)
	assert.Equal(t, trace.OutcomeAborted, c.Result(strategy.BFS).Outcome)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c, err = strategy.Compare(ctx, grid(t, 1, 5), builder.GridID(0, 0), builder.GridID(4, 4), nil)
	assert.ErrorIs(t, err, context.Canceled)
	for _, r := range c.Results {
		assert.Equal(t, trace.OutcomeAborted, r.Outcome)
		assert.Zero(t, r.NodesExpanded)
	}
}
