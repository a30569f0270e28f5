package astar

import "errors"

// Name is the algorithm tag recorded in every Result.
const Name = "astar"

// ErrGraphNil is returned when a nil graph is passed to Search.
var ErrGraphNil = errors.New("astar: graph is nil")
