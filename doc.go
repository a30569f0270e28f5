// Package searchtrace is a replayable graph-search engine: one graph model,
// five interchangeable search strategies, and a uniform step-by-step trace
// for every run.
//
// 🚀 What is searchtrace?
//
//	A thread-safe graph plus searches that record what they did:
//		• Graph model: nodes with positions and optional heuristics, weighted directed edges
//		• Uninformed search: BFS (fewest hops), DFS (first path found)
//		• Cost-aware search: Dijkstra (cheapest path), A* (cheapest, heuristic-guided)
//		• Heuristic-only search: Greedy best-first
//		• Traces: current node, frontier, visited set, distances and parents per step
//
// ✨ Why a trace?
//
//   - Every strategy emits the same Step shape, so consumers replay, diff and
//     compare algorithms frame by frame without knowing which one ran.
//   - Runs are deterministic: same graph, same query, same trace.
//   - Steps are immutable snapshots, safe to keep and hand to other goroutines.
//
// Under the hood, everything is organized into small packages:
//
//	core/       : Graph, Node, Edge, adjacency in insertion order, RWMutex
//	pqueue/     : binary-heap priority queue with decrease-key and stable ties
//	trace/      : Step, Result, Recorder, options, path reconstruction
//	bfs/ dfs/ dijkstra/ astar/ greedy/ : one package per strategy, each exposing Search
//	strategy/   : Algorithm enum, Run dispatch, concurrent Compare
//	builder/    : grid, diamond, path, cycle and random graphs; Euclidean heuristics
//	gridgraph/  : ASCII mazes and cost maps as graphs
//	graphfile/  : YAML, TOML and JSON graph files; embedded samples
//
// Quick ASCII example (the diamond sample, weights on edges):
//
//	      A
//	   1 / \ 4
//	    B   C
//	   1 \ / 1
//	      D
//
// BFS and Dijkstra both return A→B→D here; DFS returns A→C→D.
//
//	go install github.com/katalvlaran/searchtrace/cmd/searchtrace@latest
//	searchtrace compare --sample diamond
package searchtrace
