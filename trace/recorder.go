// File: recorder.go
// Role: Per-run trace assembly: visited set, expansion counter, step log.
// Determinism:
//   - Steps are appended in call order; each holds private copies.
// Concurrency:
//   - A Recorder belongs to exactly one search and is not shared.

package trace

import (
	"fmt"
	"math"
)

// Snapshot is the strategy-specific state handed to Expand. The Recorder
// copies everything it keeps, so callers may pass their live maps.
type Snapshot struct {
	Frontier  []string
	Distances map[string]float64
	Parents   map[string]string
	BestPath  []string
	BestCost  float64
}

// Recorder accumulates the Steps of a single search run.
type Recorder struct {
	algorithm string
	start     string
	goal      string
	opts      Options
	visited   Set
	steps     []Step
	expanded  int
	done      bool

	// last state maps seen by Expand, reused by the terminal step
	distances map[string]float64
	parents   map[string]string
}

// NewRecorder prepares a Recorder for one run of algorithm from start to goal.
func NewRecorder(algorithm, start, goal string, o Options) *Recorder {
	return &Recorder{
		algorithm: algorithm,
		start:     start,
		goal:      goal,
		opts:      o,
		visited:   make(Set),
	}
}

// Visited reports whether id has already been expanded.
func (r *Recorder) Visited(id string) bool { return r.visited.Has(id) }

// Expanded returns the number of expansions recorded so far.
func (r *Recorder) Expanded() int { return r.expanded }

// Interrupted returns the context error once the run's context is done.
// Strategies call it once per loop iteration.
func (r *Recorder) Interrupted() error {
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
	}

	return nil
}

// CapReached reports whether WithMaxExpansions has been exhausted.
func (r *Recorder) CapReached() bool {
	return r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions
}

// Expand marks current visited, counts the expansion and appends a Step
// built from snap. The returned error comes from the OnStep hook.
func (r *Recorder) Expand(current string, snap Snapshot, msg string) error {
	r.visited.Add(current)
	r.expanded++

	step := Step{
		Current:  current,
		Frontier: NewSet(snap.Frontier...),
		Visited:  r.visited.Clone(),
		Message:  msg,
	}
	if len(snap.BestPath) > 0 {
		step.BestPath = append([]string(nil), snap.BestPath...)
		step.BestCost = snap.BestCost
	}
	if r.opts.StateMaps {
		step.Distances = copyDistances(snap.Distances)
		step.Parents = copyParents(snap.Parents)
	}
	r.distances, r.parents = snap.Distances, snap.Parents
	r.steps = append(r.steps, step)

	r.opts.Logger.Debug("expand",
		"alg", r.algorithm,
		"step", r.expanded,
		"node", current,
		"frontier", len(snap.Frontier),
	)
	if err := r.opts.OnStep(step); err != nil {
		return fmt.Errorf("%s: OnStep error at %q: %w", r.algorithm, current, err)
	}

	return nil
}

// Finish appends the terminal step and returns the Result. A non-empty path
// yields OutcomeFound with the given cost; an empty one OutcomeNoPath.
func (r *Recorder) Finish(path []string, cost float64) (*Result, error) {
	if len(path) == 0 {
		return r.close(OutcomeNoPath, nil, 0,
			fmt.Sprintf("No path exists from %s to %s", r.start, r.goal), true)
	}

	return r.close(OutcomeFound, path, cost,
		fmt.Sprintf("Path found from %s to %s with cost %s", r.start, r.goal, FormatCost(cost)), true)
}

// Abort ends the run early with OutcomeAborted. cause is returned unchanged
// (nil for an expansion cap). The terminal step is still appended, but the
// OnStep hook is not called again.
func (r *Recorder) Abort(cause error) (*Result, error) {
	msg := fmt.Sprintf("Search aborted after %d expansions", r.expanded)
	res, _ := r.close(OutcomeAborted, nil, 0, msg, false)

	return res, cause
}

// GoalMissing returns the empty Result used when start or goal is not in
// the graph: no steps, zero expansions.
func GoalMissing(algorithm, start, goal string) *Result {
	return &Result{
		Algorithm: algorithm,
		Start:     start,
		Goal:      goal,
		Steps:     []Step{},
		FinalPath: []string{},
		Outcome:   OutcomeGoalMissing,
	}
}

// close appends the single terminal step and assembles the Result.
func (r *Recorder) close(outcome Outcome, path []string, cost float64, msg string, hook bool) (*Result, error) {
	if r.done {
		return nil, fmt.Errorf("%s: trace already finished", r.algorithm)
	}
	r.done = true

	finalPath := append([]string{}, path...)
	terminal := Step{
		Frontier: make(Set),
		Visited:  r.visited.Clone(),
		Path:     append([]string(nil), path...),
		Message:  msg,
	}
	if r.opts.StateMaps {
		terminal.Distances = copyDistances(r.distances)
		terminal.Parents = copyParents(r.parents)
	}
	r.steps = append(r.steps, terminal)

	res := &Result{
		Algorithm:     r.algorithm,
		Start:         r.start,
		Goal:          r.goal,
		Steps:         r.steps,
		FinalPath:     finalPath,
		TotalCost:     cost,
		NodesExpanded: r.expanded,
		Outcome:       outcome,
	}
	r.opts.Logger.Info("search finished",
		"alg", r.algorithm,
		"outcome", outcome,
		"expanded", r.expanded,
		"cost", cost,
	)
	if hook {
		if err := r.opts.OnStep(terminal); err != nil {
			res.Outcome = OutcomeAborted

			return res, fmt.Errorf("%s: OnStep error at terminal step: %w", r.algorithm, err)
		}
	}

	return res, nil
}

// NewDistances returns a distance map with every id at +Inf.
func NewDistances(ids []string) map[string]float64 {
	d := make(map[string]float64, len(ids))
	for _, id := range ids {
		d[id] = math.Inf(1)
	}

	return d
}

// Internal helpers:
////////////////////

func copyDistances(src map[string]float64) Distances {
	if src == nil {
		return nil
	}
	out := make(Distances, len(src))
	for k, v := range src {
		out[k] = v
	}

	return out
}

func copyParents(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}

	return out
}
