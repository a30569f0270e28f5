// Package astar provides a traced A* search over a core.Graph.
//
// A* orders its frontier by f = g + h, where g is the best known cost from
// start and h is the node heuristic read from core.Graph.Heuristic (0 when
// absent, which degrades A* to Dijkstra). The engine does not check that h
// is admissible; with an admissible h the returned path is optimal.
//
// Each expansion records a trace.Step whose Distances snapshot holds g for
// every node (+Inf when undiscovered) and whose Parents snapshot holds the
// current predecessor map. The step message reports g and f with two decimals.
//
// If start or goal is not in the graph the Result is empty with
// trace.OutcomeGoalMissing: no steps and no expansions.
package astar
