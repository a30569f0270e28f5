package trace_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/trace"
)

func TestReconstructPath(t *testing.T) {
	parents := map[string]string{"A": "", "B": "A", "C": "B", "X": "Y", "Y": "X", "Z": ""}

	cases := []struct {
		name        string
		start, goal string
		want        []string
	}{
		{"chain", "A", "C", []string{"A", "B", "C"}},
		{"start is goal", "A", "A", []string{"A"}},
		{"undiscovered goal", "A", "Q", nil},
		{"cycle", "A", "X", nil},
		{"wrong root", "A", "Z", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, trace.ReconstructPath(parents, tc.start, tc.goal))
		})
	}

	// dangling parent reference
	assert.Nil(t, trace.ReconstructPath(map[string]string{"B": "A"}, "A", "B"))
}

func TestPathCost(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id, core.Position{}))
	}
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "B", 9, core.WithEdgeID("A-B#slow"))
	_, _ = g.AddEdge("B", "C", 0.5)

	c, ok := trace.PathCost(g, []string{"A", "B", "C"})
	assert.True(t, ok)
	assert.Equal(t, 2.5, c, "first matching adjacency edge wins")

	c, ok = trace.PathCost(g, []string{"A"})
	assert.True(t, ok)
	assert.Zero(t, c)

	_, ok = trace.PathCost(g, []string{"C", "A"})
	assert.False(t, ok)

	assert.Equal(t, 2.0, trace.HopCost([]string{"A", "B", "C"}))
	assert.Zero(t, trace.HopCost(nil))
}

func TestRecorder_StepsAreIndependentCopies(t *testing.T) {
	o, err := trace.Resolve()
	require.NoError(t, err)
	rec := trace.NewRecorder("test", "A", "C", o)

	dist := trace.NewDistances([]string{"A", "B", "C"})
	dist["A"] = 0
	parents := map[string]string{"A": ""}
	frontier := []string{"B"}
	require.NoError(t, rec.Expand("A", trace.Snapshot{Frontier: frontier, Distances: dist, Parents: parents}, "first"))

	// Mutate the live state as a search would.
	dist["B"] = 1
	parents["B"] = "A"
	frontier[0] = "mutated"
	require.NoError(t, rec.Expand("B", trace.Snapshot{Frontier: nil, Distances: dist, Parents: parents}, "second"))

	res, err := rec.Finish(nil, 0)
	require.NoError(t, err)
	require.Len(t, res.Steps, 3)

	first := res.Steps[0]
	want := trace.Step{
		Current:   "A",
		Frontier:  trace.NewSet("B"),
		Visited:   trace.NewSet("A"),
		Distances: trace.Distances{"A": 0, "B": math.Inf(1), "C": math.Inf(1)},
		Parents:   map[string]string{"A": ""},
		Message:   "first",
	}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("first step mismatch (-want +got):\n%s", diff)
	}

	// Mutating a later step must not reach earlier ones.
	res.Steps[1].Visited.Add("Z")
	res.Steps[1].Parents["Z"] = "B"
	assert.False(t, res.Steps[0].Visited.Has("Z"))
	assert.False(t, res.Steps[2].Visited.Has("Z"))
	_, leaked := res.Steps[2].Parents["Z"]
	assert.False(t, leaked)
}

func TestRecorder_Finish(t *testing.T) {
	o, _ := trace.Resolve()
	rec := trace.NewRecorder("test", "A", "B", o)
	require.NoError(t, rec.Expand("A", trace.Snapshot{Frontier: []string{"B"}}, "a"))
	require.NoError(t, rec.Expand("B", trace.Snapshot{}, "b"))

	res, err := rec.Finish([]string{"A", "B"}, 1.5)
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Equal(t, trace.OutcomeFound, res.Outcome)
	assert.Equal(t, 2, res.NodesExpanded)
	assert.Equal(t, []string{"A", "B"}, res.FinalPath)
	assert.Len(t, res.ExpansionSteps(), 2)

	term, ok := res.Terminal()
	require.True(t, ok)
	assert.True(t, term.IsTerminal())
	assert.Equal(t, 0, term.Frontier.Len())
	assert.Equal(t, []string{"A", "B"}, term.Visited.Sorted())
	assert.Equal(t, "Path found from A to B with cost 1.5", term.Message)
	assert.Equal(t, term.Message, res.Summary())

	_, err = rec.Finish(nil, 0)
	assert.Error(t, err, "terminal step is appended exactly once")
}

func TestRecorder_NoPath(t *testing.T) {
	o, _ := trace.Resolve()
	rec := trace.NewRecorder("test", "A", "Z", o)
	require.NoError(t, rec.Expand("A", trace.Snapshot{}, "a"))
	res, err := rec.Finish(nil, 7)
	require.NoError(t, err)
	assert.Equal(t, trace.OutcomeNoPath, res.Outcome)
	assert.Zero(t, res.TotalCost)
	assert.Empty(t, res.FinalPath)
	assert.Equal(t, "No path exists from A to Z", res.Summary())
}

func TestRecorder_CapAndContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	o, err := trace.Resolve(trace.WithContext(ctx), trace.WithMaxExpansions(1))
	require.NoError(t, err)
	rec := trace.NewRecorder("test", "A", "B", o)

	assert.False(t, rec.CapReached())
	assert.NoError(t, rec.Interrupted())
	require.NoError(t, rec.Expand("A", trace.Snapshot{}, "a"))
	assert.True(t, rec.CapReached())

	cancel()
	assert.ErrorIs(t, rec.Interrupted(), context.Canceled)

	res, err := rec.Abort(rec.Interrupted())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, trace.OutcomeAborted, res.Outcome)
	assert.Equal(t, 1, res.NodesExpanded)
	assert.Equal(t, "Search aborted after 1 expansions", res.Summary())
}

func TestRecorder_OnStepError(t *testing.T) {
	boom := errors.New("boom")
	var seen []string
	o, _ := trace.Resolve(trace.WithOnStep(func(s trace.Step) error {
		seen = append(seen, s.Current)
		if s.Current == "B" {
			return boom
		}

		return nil
	}))
	rec := trace.NewRecorder("test", "A", "C", o)
	require.NoError(t, rec.Expand("A", trace.Snapshot{}, "a"))
	err := rec.Expand("B", trace.Snapshot{}, "b")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `test: OnStep error at "B"`)
	assert.Equal(t, []string{"A", "B"}, seen)
}

func TestRecorder_WithoutStateMaps(t *testing.T) {
	o, _ := trace.Resolve(trace.WithoutStateMaps())
	rec := trace.NewRecorder("test", "A", "A", o)
	require.NoError(t, rec.Expand("A", trace.Snapshot{
		Distances: map[string]float64{"A": 0},
		Parents:   map[string]string{"A": ""},
	}, "a"))
	res, _ := rec.Finish([]string{"A"}, 0)
	for _, s := range res.Steps {
		assert.Nil(t, s.Distances)
		assert.Nil(t, s.Parents)
	}
}

func TestRecorder_Logger(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	o, _ := trace.Resolve(trace.WithLogger(l))
	rec := trace.NewRecorder("bfs", "A", "A", o)
	require.NoError(t, rec.Expand("A", trace.Snapshot{}, "a"))
	_, err := rec.Finish([]string{"A"}, 0)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "expand")
	assert.Contains(t, out, "node=A")
	assert.Contains(t, out, "search finished")
	assert.Contains(t, out, "outcome=found")
}

func TestResolve_Invalid(t *testing.T) {
	_, err := trace.Resolve(trace.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, trace.ErrOptionViolation)
}

func TestGoalMissing(t *testing.T) {
	res := trace.GoalMissing("astar", "A", "nope")
	assert.Empty(t, res.Steps)
	assert.Zero(t, res.NodesExpanded)
	assert.False(t, res.Found())
	_, ok := res.Terminal()
	assert.False(t, ok)
	assert.Equal(t, "Node A or nope is not in the graph", res.Summary())
}

func TestJSONForm(t *testing.T) {
	s := trace.Step{
		Current:   "B",
		Frontier:  trace.NewSet("D", "C"),
		Visited:   trace.NewSet("B", "A"),
		Distances: trace.Distances{"A": 0, "B": 1, "Z": math.Inf(1)},
		Message:   "m",
	}
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"current":"B","frontier":["C","D"],"visited":["A","B"],"distances":{"A":0,"B":1},"message":"m"}`,
		string(b))

	var back trace.Step
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Frontier.Has("C"))
	assert.Equal(t, math.Inf(1), back.Distances.Of("Z"))

	ob, err := json.Marshal(trace.OutcomeGoalMissing)
	require.NoError(t, err)
	assert.Equal(t, `"goal-missing"`, string(ob))
	var o trace.Outcome
	require.NoError(t, json.Unmarshal([]byte(`"aborted"`), &o))
	assert.Equal(t, trace.OutcomeAborted, o)
	assert.Error(t, json.Unmarshal([]byte(`"bogus"`), &o))
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "2", trace.FormatCost(2))
	assert.Equal(t, "7.5", trace.FormatCost(7.5))
	assert.Equal(t, "0", trace.FormatCost(0))
}

func TestStep_State(t *testing.T) {
	s := trace.Step{
		Current:  "C",
		Frontier: trace.NewSet("F", "B"),
		Visited:  trace.NewSet("A", "C", "V"),
		BestPath: []string{"A", "B"},
	}
	assert.Equal(t, trace.StateCurrent, s.State("C"))
	assert.Equal(t, trace.StateBestPath, s.State("A"))
	assert.Equal(t, trace.StateBestPath, s.State("B"))
	assert.Equal(t, trace.StateFrontier, s.State("F"))
	assert.Equal(t, trace.StateVisited, s.State("V"))
	assert.Equal(t, trace.StateUnexplored, s.State("Z"))

	term := trace.Step{Visited: trace.NewSet("A", "B"), Path: []string{"A", "B"}}
	assert.Equal(t, trace.StatePath, term.State("B"))
	assert.Equal(t, trace.StateUnexplored, term.State(""))
	assert.Equal(t, "best_path", trace.StateBestPath.String())
	assert.Equal(t, "unknown", trace.NodeState(42).String())
}
