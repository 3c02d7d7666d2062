package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	gderrors "git.home.luguber.info/inful/graphdot/internal/errors"
	"git.home.luguber.info/inful/graphdot/internal/render"
)

const testDefinition = `title: CI
nodes:
  - id: build
    group: ci
  - id: test
    group: ci
  - id: deploy
edges:
  - from: build
    to: test
  - from: test
    to: deploy
`

func writeTestDefinition(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDefinition), 0o644))
	return path
}

func TestRenderDefinition_DOT(t *testing.T) {
	out, err := renderDefinition(writeTestDefinition(t), render.FormatDOT)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, `digraph "CI" {`))
	require.Contains(t, out, `"build" -> "test";`)
	require.Contains(t, out, `label="ci";`)
	require.True(t, strings.HasSuffix(out, "}\n"))
}

func TestRenderDefinition_AllFormats(t *testing.T) {
	path := writeTestDefinition(t)
	for _, f := range render.SupportedFormats() {
		out, err := renderDefinition(path, f)
		require.NoError(t, err, "format %s", f)
		require.NotEmpty(t, out, "format %s", f)
	}
}

func TestRunRender_WritesOutputFile(t *testing.T) {
	path := writeTestDefinition(t)
	outPath := filepath.Join(t.TempDir(), "graph.dot")

	require.NoError(t, runRender(path, render.FormatDOT, outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "digraph")
}

func TestRunRender_MissingDefinition(t *testing.T) {
	err := runRender(filepath.Join(t.TempDir(), "nope.yaml"), render.FormatDOT, "")
	require.Error(t, err)

	gde, ok := err.(*gderrors.GraphDotError)
	require.True(t, ok)
	require.Equal(t, gderrors.CategoryConfig, gde.Category)
}

func TestRunInit_ThenRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, runInit(path, false))

	out, err := renderDefinition(path, render.FormatText)
	require.NoError(t, err)
	require.Contains(t, out, "Example Pipeline")
}
