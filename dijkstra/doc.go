// Package dijkstra implements a traced Dijkstra shortest-path search.
//
// Dijkstra computes the minimum-cost path from start to goal in a graph with
// non-negative edge weights (core rejects negative weights at construction).
// It expands nodes in order of increasing distance using pqueue, a binary
// heap with true decrease-key, and records one trace.Step per expansion.
//
// Trace contents:
//
//   - Distances: the full distance map (undiscovered nodes at +Inf).
//   - Parents:   predecessor map ("" for start).
//   - BestPath / BestCost: whenever the parent chain already links start to
//     goal (more than one node), the best complete path known so far. This
//     lets a viewer watch the answer settle before the goal is dequeued.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for the search itself.
//   - Each node is extracted at most once; each relaxation is one
//     Insert or UpdatePriority, O(log V).
//   - Snapshots add O(V) per recorded step.
//   - Space: O(V) scratch.
//
// Notes on implementation choices:
//
//   - Nodes already expanded are never relaxed again.
//   - A neighbor is re-parented only on a strictly shorter distance, so
//     among equal-cost paths the first one discovered is kept.
//   - Ties in the queue are broken by insertion order.
package dijkstra
