// Package dfs implements a traced depth-first search on core.Graph.
//
// The frontier is an explicit LIFO stack rather than recursion, so every
// expansion can be snapshotted as a trace.Step and the search can be
// cancelled between expansions.
//
// Key behavior:
//   - Neighbors are pushed in adjacency insertion order; the most recently
//     pushed node is expanded next.
//   - A node is pushed only the first time it is discovered; its parent is
//     the node that discovered it.
//   - TotalCost is the hop count of the final path (weights are ignored).
//   - Every step carries a Parents snapshot.
//
// Complexity:
//
//   - Time:   O(V + E), plus O(V) per recorded step.
//   - Memory: O(V) for stack and parent map.
//
// Options:
//
//	trace.WithContext, trace.WithMaxExpansions, trace.WithOnStep,
//	trace.WithoutStateMaps, trace.WithLogger.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - trace.ErrOptionViolation  for an invalid option.
//   - context.Canceled          if ctx is done (partial Result returned).
//   - any error returned by the OnStep hook, wrapped.
package dfs
