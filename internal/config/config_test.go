package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gderrors "git.home.luguber.info/inful/graphdot/internal/errors"
)

const sampleDefinition = `title: Build Pipeline
nodes:
  - id: fetch
    label: Fetch sources
    group: input
  - id: parse
    group: input
  - id: render
edges:
  - from: fetch
    to: parse
  - from: parse
    to: render
`

func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ParsesDefinition(t *testing.T) {
	def, err := Load(writeDefinition(t, sampleDefinition))
	require.NoError(t, err)

	require.Equal(t, "Build Pipeline", def.Title)
	require.Len(t, def.Nodes, 3)
	require.Equal(t, "fetch", def.Nodes[0].ID)
	require.Equal(t, "Fetch sources", def.Nodes[0].Label)
	require.Equal(t, "input", def.Nodes[0].Group)
	require.Len(t, def.Edges, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	gde, ok := err.(*gderrors.GraphDotError)
	require.True(t, ok)
	require.Equal(t, gderrors.CategoryConfig, gde.Category)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("nodes: [unclosed"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestParse_RequiresNodes(t *testing.T) {
	_, err := Parse([]byte("title: empty\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no nodes")
}

func TestParse_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("GRAPH_TITLE", "From Env")

	def, err := Parse([]byte("title: ${GRAPH_TITLE}\nnodes:\n  - id: a\n"))
	require.NoError(t, err)
	require.Equal(t, "From Env", def.Title)
}

func TestBuild_ProducesValidatedGraph(t *testing.T) {
	def, err := Parse([]byte(sampleDefinition))
	require.NoError(t, err)

	g, err := def.Build()
	require.NoError(t, err)
	require.Equal(t, "Build Pipeline", g.Title)
	require.Len(t, g.Nodes(), 3)
	require.Len(t, g.Edges(), 2)
}

func TestBuild_RejectsDuplicateNodes(t *testing.T) {
	def := &Definition{Nodes: []NodeConfig{{ID: "a"}, {ID: "a"}}}
	_, err := def.Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate")
}

func TestBuild_RejectsDanglingEdges(t *testing.T) {
	def := &Definition{
		Nodes: []NodeConfig{{ID: "a"}},
		Edges: []EdgeConfig{{From: "a", To: "gone"}},
	}
	_, err := def.Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "gone")
}

func TestInit_WritesLoadableStarter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, Init(path, false))

	def, err := Load(path)
	require.NoError(t, err)

	g, err := def.Build()
	require.NoError(t, err)
	require.NotEmpty(t, g.Nodes())
}

func TestInit_RefusesOverwriteWithoutForce(t *testing.T) {
	path := writeDefinition(t, sampleDefinition)

	err := Init(path, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	require.NoError(t, Init(path, true))
}
