package graphfile

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/searchtrace/core"
)

// Sentinel errors.
var (
	// ErrUnknownFormat is returned for an unsupported format name or extension.
	ErrUnknownFormat = errors.New("graphfile: unknown format")

	// ErrDecode wraps every syntax or schema error.
	ErrDecode = errors.New("graphfile: cannot decode document")

	// ErrUnknownSample is returned by Sample for a name not embedded.
	ErrUnknownSample = errors.New("graphfile: unknown sample")
)

// NodeSpec is one node entry.
type NodeSpec struct {
	ID        string   `json:"id" yaml:"id" toml:"id"`
	Label     string   `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	X         float64  `json:"x" yaml:"x" toml:"x"`
	Y         float64  `json:"y" yaml:"y" toml:"y"`
	Heuristic *float64 `json:"heuristic,omitempty" yaml:"heuristic,omitempty" toml:"heuristic,omitempty"`
}

// EdgeSpec is one edge entry. Empty ID selects the "from-to" default.
type EdgeSpec struct {
	ID            string  `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	From          string  `json:"from" yaml:"from" toml:"from"`
	To            string  `json:"to" yaml:"to" toml:"to"`
	Weight        float64 `json:"weight" yaml:"weight" toml:"weight"`
	Bidirectional bool    `json:"bidirectional,omitempty" yaml:"bidirectional,omitempty" toml:"bidirectional,omitempty"`
	ReverseID     string  `json:"reverseId,omitempty" yaml:"reverseId,omitempty" toml:"reverseId,omitempty"`
}

// Document is the serialized form of a graph plus an optional query.
type Document struct {
	Name        string     `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Start       string     `json:"start,omitempty" yaml:"start,omitempty" toml:"start,omitempty"`
	Goal        string     `json:"goal,omitempty" yaml:"goal,omitempty" toml:"goal,omitempty"`
	Nodes       []NodeSpec `json:"nodes" yaml:"nodes" toml:"nodes"`
	Edges       []EdgeSpec `json:"edges,omitempty" yaml:"edges,omitempty" toml:"edges,omitempty"`
}

// Graph builds a core.Graph from d. Nodes are added first, then edges in
// document order. Any core validation error is returned wrapped.
func (d *Document) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	for _, n := range d.Nodes {
		var opts []core.NodeOption
		if n.Label != "" {
			opts = append(opts, core.WithLabel(n.Label))
		}
		if n.Heuristic != nil {
			opts = append(opts, core.WithHeuristic(*n.Heuristic))
		}
		if err := g.AddNode(n.ID, core.Position{X: n.X, Y: n.Y}, opts...); err != nil {
			return nil, fmt.Errorf("graphfile: node %q: %w", n.ID, err)
		}
	}
	for i, e := range d.Edges {
		var opts []core.EdgeOption
		if e.ID != "" {
			opts = append(opts, core.WithEdgeID(e.ID))
		}
		if e.Bidirectional {
			opts = append(opts, core.WithBidirectional())
		}
		if e.ReverseID != "" {
			opts = append(opts, core.WithReverseEdgeID(e.ReverseID))
		}
		if _, err := g.AddEdge(e.From, e.To, e.Weight, opts...); err != nil {
			return nil, fmt.Errorf("graphfile: edge #%d %s→%s: %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a Document. Nodes are listed by ID; edges are
// listed node by node in adjacency order, each as a one-way entry with
// its stored ID.
func FromGraph(g *core.Graph) *Document {
	d := &Document{}
	for _, n := range g.Nodes() {
		spec := NodeSpec{ID: n.ID, X: n.Position.X, Y: n.Position.Y, Heuristic: n.Heuristic}
		if n.Label != n.ID {
			spec.Label = n.Label
		}
		d.Nodes = append(d.Nodes, spec)
	}
	for _, n := range d.Nodes {
		for _, e := range g.OutEdges(n.ID) {
			d.Edges = append(d.Edges, EdgeSpec{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight})
		}
	}

	return d
}
