// Package trace defines the uniform, replayable output shared by every search
// strategy: Step, Result, Outcome and Set, plus the Recorder that assembles
// them and ReconstructPath for parent-pointer backtracking.
//
// A Result holds one Step per node expansion followed by exactly one terminal
// Step (Current == ""). Steps are immutable once appended: every map and set
// in a Step is a private copy taken when the step is recorded, so mutating a
// later Step (or the search's own scratch state) never alters an earlier one.
//
// Outcomes:
//
//	OutcomeFound       - goal dequeued; FinalPath and TotalCost are set.
//	OutcomeNoPath      - frontier exhausted; empty path, zero cost.
//	OutcomeGoalMissing - start or goal not in the graph; no steps at all.
//	OutcomeAborted     - stopped by WithMaxExpansions, context or OnStep hook.
//
// Options (shared by bfs, dfs, dijkstra, astar and greedy):
//
//	WithContext(ctx)        - cancellation, checked once per loop iteration.
//	WithMaxExpansions(n)    - expansion cap; reaching it aborts with nil error.
//	WithOnStep(fn)          - hook after every appended Step; an error aborts.
//	WithoutStateMaps()      - omit Distances/Parents snapshots.
//	WithLogger(l)           - charmbracelet/log logger; silent by default.
//
// Strategies drive a Recorder as follows:
//
//	rec := trace.NewRecorder("bfs", start, goal, o)
//	for frontier not empty {
//	    if err := rec.Interrupted(); err != nil { return rec.Abort(err) }
//	    if rec.CapReached() { return rec.Abort(nil) }
//	    ...
//	    if err := rec.Expand(cur, snapshot, msg); err != nil { return rec.Abort(err) }
//	    ...
//	}
//	return rec.Finish(path, cost)
package trace
