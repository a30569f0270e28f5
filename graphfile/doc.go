// Package graphfile reads and writes graphs as YAML, TOML or JSON documents
// and ships a few embedded sample graphs.
//
// A Document lists nodes (id, position, optional label and heuristic), edges
// (from, to, weight, optional id and bidirectional flag) and an optional
// suggested start/goal pair. Edges are applied in document order, so the
// adjacency order of every node, and with it every search's tie-breaking,
// survives a round trip through Encode and Decode.
//
// Decoding is strict: unknown keys are rejected in all three formats.
package graphfile
