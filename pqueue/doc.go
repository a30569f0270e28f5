// Package pqueue provides the min-priority selector shared by the weighted
// search strategies (Dijkstra, A*, Greedy best-first).
//
// The queue is a binary heap (container/heap) plus an ID→slot index, so
// UpdatePriority is a true decrease-key in O(log n) rather than the
// "push a duplicate and skip it later" approach.
//
// Selection order contract:
//
//   - ExtractMin always returns the entry with the smallest Priority.
//   - Ties are broken by insertion order: every entry carries the sequence
//     number it was inserted with, and an update keeps that number.
//   - Secondary is a payload the caller may attach (A* stores g there); it
//     does not take part in ordering.
//
// Uniqueness: an ID is present at most once. Insert on a present ID returns
// false and leaves the queue unchanged; callers use UpdatePriority instead.
//
// Complexity:
//
//	Insert, ExtractMin, UpdatePriority: O(log n)
//	Contains, Priority, Len, IsEmpty:    O(1)
//	IDs:                                 O(n)
//
// A Queue is not safe for concurrent use; each search owns its own.
package pqueue
