// Package dijkstra defines the sentinel errors and names for the traced
// Dijkstra search.
//
// Errors (sentinel):
//
//	– ErrGraphNil if the provided graph pointer is nil.
//
// Example usage:
//
//	res, err := dijkstra.Search(g, "A", "D", trace.WithMaxExpansions(500))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("cost %s via %v\n", trace.FormatCost(res.TotalCost), res.FinalPath)
package dijkstra

import "errors"

// Name is the algorithm tag recorded in every Result.
const Name = "dijkstra"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Search.
	ErrGraphNil = errors.New("dijkstra: graph is nil")
)
