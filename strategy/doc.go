// Package strategy dispatches the five traced search algorithms behind a
// single enum and runs side-by-side comparisons.
//
// Run selects the implementation with a switch over Algorithm; every
// strategy shares the trace.Option set and returns a *trace.Result with the
// same Step shape, so callers can replay or diff traces without knowing
// which algorithm produced them.
//
// Compare runs several algorithms concurrently over one graph with
// golang.org/x/sync/errgroup. The graph is only read, which core.Graph
// allows from many goroutines; any OnStep hook passed in must itself be
// safe for concurrent use. Comparison.StepAt lines the traces up step by
// step, holding shorter traces on their last frame.
package strategy
