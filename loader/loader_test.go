package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/loader"
)

const edgeListText = `# 4-cycle with a chord
1 -- 2
2 -- 3

3--4
   4 -- 1
1 -- 3
not an edge
a  --  b
`

const yamlDoc = `edges:
  - "1 -- 2"
  - "2 -- 3"
adjacency:
  "3": ["4"]
  "4": ["1", "1"]
`

func TestReadEdgeList(t *testing.T) {
	t.Parallel()
	g, st, err := loader.ReadEdgeList(strings.NewReader(edgeListText))
	require.NoError(t, err)

	assert.Equal(t, 9, st.Lines)
	assert.Equal(t, 5, st.Edges)
	assert.Equal(t, 2, st.Skipped)
	assert.Equal(t, 5, g.NumEdges())
	assert.Equal(t, 4, g.NumVertices())
	ok, err := g.ConnectedLabels("1", "3")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReadEdgeList_Errors(t *testing.T) {
	t.Parallel()
	_, _, err := loader.ReadEdgeList(nil)
	assert.ErrorIs(t, err, loader.ErrNilReader)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	boom := errors.New("boom")
	_, _, err = loader.ReadEdgeList(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
}

func TestReadYAML(t *testing.T) {
	t.Parallel()
	g, err := loader.ReadYAML(strings.NewReader(yamlDoc))
	require.NoError(t, err)

	assert.Equal(t, 5, g.NumEdges())
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 2, g.Stats().MaxMultiplicity)
	assert.Equal(t, []string{"3", "1", "1"}, g.AdjacencyList()["4"])
}

func TestReadYAML_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"BadEntry":     "edges: [\"1 -> 2\"]\n",
		"UnknownField": "nodes: [a]\n",
		"NotYAML":      "edges: [unclosed\n",
		"BlankTarget":  "adjacency:\n  a: [\"  \"]\n",
	}
	for name, doc := range cases {
		doc := doc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := loader.ReadYAML(strings.NewReader(doc))
			assert.ErrorIs(t, err, loader.ErrBadDocument)
		})
	}

	g, err := loader.ReadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, g.NumVertices())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	txt := filepath.Join(dir, "cycle.txt")
	require.NoError(t, os.WriteFile(txt, []byte(edgeListText), 0o644))
	yml := filepath.Join(dir, "graph.YML")
	require.NoError(t, os.WriteFile(yml, []byte(yamlDoc), 0o644))

	g, st, err := loader.LoadFile(txt)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Skipped)
	assert.Equal(t, 5, g.NumEdges())

	g, st, err = loader.LoadFile(yml)
	require.NoError(t, err)
	assert.Equal(t, 5, st.Edges)
	assert.Equal(t, 5, g.NumEdges())

	_, _, err = loader.LoadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
