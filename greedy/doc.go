// Package greedy implements traced greedy best-first search.
//
// The frontier is a pqueue ordered by the node heuristic alone; path cost
// plays no part in selection. A neighbor is queued only the first time it
// is discovered, and the node that discovered it stays its parent ("first
// parent wins"), so the returned path is whatever the heuristic led to and
// is not necessarily the cheapest.
//
// Greedy keeps no running cost. TotalCost is computed after the fact by
// walking the final path and summing, for each hop, the weight of the first
// matching edge in adjacency order.
//
// Steps carry a Parents snapshot and report the expanded node's heuristic
// with two decimals. With no heuristics at all every priority ties at 0 and
// the search degrades to insertion (FIFO) order.
package greedy
