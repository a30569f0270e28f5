package greedy

import "errors"

// Name is the algorithm tag recorded in every Result.
const Name = "greedy"

// ErrGraphNil is returned when a nil graph is passed to Search.
var ErrGraphNil = errors.New("greedy: graph is nil")
