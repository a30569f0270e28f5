// Package bfs provides a traced breadth-first search over a core.Graph.
//
// What
//
//   - Explores nodes in non-decreasing hop distance from start, in adjacency
//     insertion order, until goal is dequeued or the queue runs dry.
//   - A neighbor is enqueued only the first time it is seen, so the queue
//     never holds duplicates and the first parent recorded is the BFS-tree parent.
//   - Emits one trace.Step per expansion plus one terminal step; every step
//     carries a Parents snapshot ("" marks the root).
//   - Edge weights are ignored for selection; TotalCost is the hop count of
//     the final path.
//
// Determinism
//
//	core.Graph keeps neighbors in insertion order and BFS enqueues them in
//	that order, so the trace is fully reproducible.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E) for the search, plus O(V) per step for snapshots.
//   - Memory: O(V) scratch, O(V·S) for S recorded steps.
//
// Usage
//
//	res, err := bfs.Search(g, "A", "D")
//	if err != nil {
//	    // ErrGraphNil, trace.ErrOptionViolation, ctx errors or hook errors
//	}
//	fmt.Println(res.FinalPath, res.TotalCost)
//
// Options are the shared trace options: WithContext, WithMaxExpansions,
// WithOnStep, WithoutStateMaps and WithLogger.
//
// Errors
//
//   - ErrGraphNil               if the graph pointer is nil.
//   - trace.ErrOptionViolation  for an invalid option.
//   - context errors            alongside a partial, aborted Result.
//   - wrapped OnStep errors     alongside a partial, aborted Result.
//
// A start or goal missing from the graph is not an error: the Result is
// empty with trace.OutcomeGoalMissing.
package bfs
