package graphfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchtrace/builder"
	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/graphfile"
	"github.com/katalvlaran/searchtrace/strategy"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want graphfile.Format
	}{
		{"yaml", graphfile.FormatYAML},
		{".yml", graphfile.FormatYAML},
		{"TOML", graphfile.FormatTOML},
		{"json", graphfile.FormatJSON},
	}
	for _, tc := range tests {
		got, err := graphfile.ParseFormat(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := graphfile.ParseFormat("xml")
	assert.ErrorIs(t, err, graphfile.ErrUnknownFormat)
	_, err = graphfile.FormatOf("graph")
	assert.ErrorIs(t, err, graphfile.ErrUnknownFormat)

	f, err := graphfile.FormatOf("/tmp/g.toml")
	require.NoError(t, err)
	assert.Equal(t, graphfile.FormatTOML, f)
}

func TestRoundTrip_PreservesAdjacencyOrder(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(5)}, builder.Grid(4, 4))
	require.NoError(t, err)

	for _, f := range []graphfile.Format{graphfile.FormatYAML, graphfile.FormatTOML, graphfile.FormatJSON} {
		f := f
		t.Run(string(f), func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, graphfile.Encode(&buf, g, f))

			d, err := graphfile.Decode(&buf, f)
			require.NoError(t, err)
			back, err := d.Graph()
			require.NoError(t, err)

			assert.Equal(t, g.Nodes(), back.Nodes())
			assert.Equal(t, g.EdgeCount(), back.EdgeCount())
			for _, id := range g.NodeIDs() {
				assert.Equal(t, g.Neighbors(id), back.Neighbors(id), "neighbors of %s", id)
			}
		})
	}
}

func TestRoundTrip_SameTraces(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(11)}, builder.Grid(5, 5))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, graphfile.Encode(&buf, g, graphfile.FormatYAML))
	d, err := graphfile.Decode(&buf, graphfile.FormatYAML)
	require.NoError(t, err)
	back, err := d.Graph()
	require.NoError(t, err)

	start, goal := builder.GridID(0, 0), builder.GridID(4, 4)
	for _, alg := range strategy.All() {
		want, err := strategy.Run(alg, g, start, goal)
		require.NoError(t, err)
		got, err := strategy.Run(alg, back, start, goal)
		require.NoError(t, err)
		assert.Equal(t, want.Steps, got.Steps, alg.String())
	}
}

func TestDecode_Strict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    graphfile.Format
		doc  string
	}{
		{"yaml", graphfile.FormatYAML, "nodes:\n  - {id: A, x: 0, y: 0, colour: red}\n"},
		{"json", graphfile.FormatJSON, `{"nodes":[{"id":"A","x":0,"y":0}],"extra":1}`},
		{"toml", graphfile.FormatTOML, "[[nodes]]\nid = \"A\"\nx = 0.0\ny = 0.0\nsize = 3\n"},
		{"yaml syntax", graphfile.FormatYAML, "nodes: [\n"},
	}
	for _, tc := range tests {
		_, err := graphfile.Decode(strings.NewReader(tc.doc), tc.f)
		assert.ErrorIs(t, err, graphfile.ErrDecode, tc.name)
	}

	_, err := graphfile.Decode(strings.NewReader("{}"), graphfile.Format("xml"))
	assert.ErrorIs(t, err, graphfile.ErrUnknownFormat)
}

func TestDocument_GraphErrors(t *testing.T) {
	t.Parallel()

	h := 1.0
	tests := []struct {
		name string
		doc  graphfile.Document
		want error
	}{
		{"duplicate node", graphfile.Document{Nodes: []graphfile.NodeSpec{{ID: "A"}, {ID: "A"}}}, core.ErrDuplicateNode},
		{"empty id", graphfile.Document{Nodes: []graphfile.NodeSpec{{ID: "", Heuristic: &h}}}, core.ErrEmptyNodeID},
		{"dangling edge", graphfile.Document{
			Nodes: []graphfile.NodeSpec{{ID: "A"}},
			Edges: []graphfile.EdgeSpec{{From: "A", To: "B", Weight: 1}},
		}, core.ErrNodeNotFound},
		{"negative weight", graphfile.Document{
			Nodes: []graphfile.NodeSpec{{ID: "A"}, {ID: "B"}},
			Edges: []graphfile.EdgeSpec{{From: "A", To: "B", Weight: -1}},
		}, core.ErrNegativeWeight},
	}
	for _, tc := range tests {
		_, err := tc.doc.Graph()
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestDocument_EdgeOptions(t *testing.T) {
	t.Parallel()

	d := graphfile.Document{
		Nodes: []graphfile.NodeSpec{{ID: "A", Label: "Alpha"}, {ID: "B"}},
		Edges: []graphfile.EdgeSpec{{ID: "ab", From: "A", To: "B", Weight: 2, Bidirectional: true, ReverseID: "ba"}},
	}
	g, err := d.Graph()
	require.NoError(t, err)

	e, ok := g.Edge("ba")
	require.True(t, ok)
	assert.Equal(t, core.Edge{ID: "ba", From: "B", To: "A", Weight: 2}, e)
	n, _ := g.Node("A")
	assert.Equal(t, "Alpha", n.Label)

	back := graphfile.FromGraph(g)
	assert.Equal(t, "Alpha", back.Nodes[0].Label)
	assert.Empty(t, back.Nodes[1].Label, "label equal to ID is omitted")
	assert.Len(t, back.Edges, 2)
}

func TestLoadGraph(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"start":"A","goal":"B","nodes":[{"id":"A","x":0,"y":0},{"id":"B","x":1,"y":0}],"edges":[{"from":"A","to":"B","weight":3}]}`), 0o600))

	g, d, err := graphfile.LoadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, "A", d.Start)
	w, ok := g.EdgeWeight("A", "B")
	assert.True(t, ok)
	assert.Equal(t, 3.0, w)

	_, _, err = graphfile.LoadGraph(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, _, err = graphfile.LoadGraph(filepath.Join(dir, "tiny.txt"))
	assert.ErrorIs(t, err, graphfile.ErrUnknownFormat)
}

func TestSamples(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"diamond", "disconnected", "weighted"}, graphfile.Samples())

	for _, name := range graphfile.Samples() {
		d, err := graphfile.Sample(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, d.Name)
		g, err := d.Graph()
		require.NoError(t, err, name)
		require.NoError(t, g.Validate())
		assert.True(t, g.HasNode(d.Start) && g.HasNode(d.Goal), name)
	}

	_, err := graphfile.Sample("nope")
	assert.ErrorIs(t, err, graphfile.ErrUnknownSample)
}

func TestSamples_Outcomes(t *testing.T) {
	t.Parallel()

	load := func(name string) (*core.Graph, *graphfile.Document) {
		d, err := graphfile.Sample(name)
		require.NoError(t, err)
		g, err := d.Graph()
		require.NoError(t, err)

		return g, d
	}

	g, d := load("weighted")
	res, err := strategy.Run(strategy.BFS, g, d.Start, d.Goal)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "G"}, res.FinalPath)
	res, err = strategy.Run(strategy.Dijkstra, g, d.Start, d.Goal)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "B", "C", "G"}, res.FinalPath)
	assert.Equal(t, 6.0, res.TotalCost)

	g, d = load("disconnected")
	res, err = strategy.Run(strategy.AStar, g, d.Start, d.Goal)
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Empty(t, res.FinalPath)
}
