// Package config loads graph definition files. A definition is a YAML
// document declaring the graph title, nodes and edges; environment variables
// are expanded in the file content before parsing so definitions can embed
// ${VAR} references, with optional .env support.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	gderrors "git.home.luguber.info/inful/graphdot/internal/errors"
	"git.home.luguber.info/inful/graphdot/internal/graph"
)

// Definition represents a graph definition file
type Definition struct {
	Title string       `yaml:"title,omitempty"`
	Nodes []NodeConfig `yaml:"nodes"`
	Edges []EdgeConfig `yaml:"edges,omitempty"`
}

// NodeConfig declares a single node
type NodeConfig struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label,omitempty"`
	Group string `yaml:"group,omitempty"`
}

// EdgeConfig declares a directed edge between two node ids
type EdgeConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Load loads a graph definition from the specified file
func Load(path string) (*Definition, error) {
	// Load .env file if present; absence is not an error.
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, gderrors.NewConfigError(fmt.Sprintf("graph definition not found: %s", path), err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gderrors.NewConfigError("failed to read graph definition", err)
	}

	return Parse(data)
}

// Parse parses a graph definition from raw YAML content, expanding
// environment variable references first.
func Parse(data []byte) (*Definition, error) {
	expanded := os.ExpandEnv(string(data))

	var def Definition
	if err := yaml.Unmarshal([]byte(expanded), &def); err != nil {
		return nil, gderrors.NewConfigError("failed to parse graph definition", err)
	}

	if len(def.Nodes) == 0 {
		return nil, gderrors.NewValidationError("graph definition declares no nodes")
	}

	return &def, nil
}

// Build assembles the definition into a validated graph.
func (d *Definition) Build() (*graph.Graph, error) {
	g := graph.New(d.Title)

	for _, n := range d.Nodes {
		if err := g.AddNode(graph.Node{ID: n.ID, Label: n.Label, Group: n.Group}); err != nil {
			return nil, err
		}
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Init writes a starter graph definition to the given path. Refuses to
// overwrite an existing file unless force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return gderrors.NewValidationError(fmt.Sprintf("file already exists: %s (use --force to overwrite)", path))
	}

	starter := `# graphdot graph definition
title: Example Pipeline

nodes:
  - id: fetch
    label: Fetch sources
    group: input
  - id: parse
    label: Parse content
    group: input
  - id: render
    label: Render output

edges:
  - from: fetch
    to: parse
  - from: parse
    to: render
`
	if err := os.WriteFile(path, []byte(starter), 0o644); err != nil {
		return gderrors.NewFileSystemError("failed to write starter definition", err)
	}
	return nil
}
