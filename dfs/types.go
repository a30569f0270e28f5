package dfs

import "errors"

// Name is the algorithm tag recorded in every Result.
const Name = "dfs"

// ErrGraphNil is returned when a nil graph is passed to Search.
var ErrGraphNil = errors.New("dfs: graph is nil")
