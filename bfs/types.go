// Package bfs defines the sentinel errors and names used by the traced BFS.
package bfs

import "errors"

// Name is the algorithm tag recorded in every Result.
const Name = "bfs"

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)
