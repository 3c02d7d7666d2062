// Package graph holds the labeled directed graph model that graphdot renders.
// It validates structure (unique ids, resolvable edge endpoints) and provides
// a deterministic topological ordering; all serialization lives in the render
// package.
package graph

import (
	"fmt"
	"sort"

	"git.home.luguber.info/inful/graphdot/internal/errors"
	"git.home.luguber.info/inful/graphdot/internal/util/sets"
)

// Node is a single vertex. ID must be unique within a graph; Label defaults
// to the ID when empty; Group optionally assigns the node to a named cluster.
type Node struct {
	ID    string
	Label string
	Group string
}

// DisplayLabel returns the label to render, falling back to the ID.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a directed connection between two node IDs.
type Edge struct {
	From string
	To   string
}

// Graph is an ordered collection of nodes and edges. Insertion order is
// preserved so renderers produce stable output for the same input.
type Graph struct {
	Title string

	nodes []Node
	edges []Edge
	byID  map[string]int
}

// New creates an empty graph with the given title.
func New(title string) *Graph {
	return &Graph{
		Title: title,
		byID:  make(map[string]int),
	}
}

// AddNode appends a node. Adding a duplicate ID is a validation error.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return errors.NewValidationError("node id must not be empty")
	}
	if _, exists := g.byID[n.ID]; exists {
		return errors.NewValidationError(fmt.Sprintf("duplicate node id: %q", n.ID)).
			WithContext("node", n.ID)
	}
	g.byID[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	return nil
}

// AddEdge appends a directed edge. Endpoints are not required to exist yet;
// Validate checks resolution once the graph is fully assembled.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return errors.NewValidationError("edge endpoints must not be empty")
	}
	g.edges = append(g.edges, Edge{From: from, To: to})
	return nil
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.byID[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Groups returns the distinct group names in lexical order. Nodes without a
// group are not represented.
func (g *Graph) Groups() []string {
	groups := sets.New[string]()
	for _, n := range g.nodes {
		if n.Group != "" {
			groups.Add(n.Group)
		}
	}
	return sets.Sorted(groups)
}

// NodesInGroup returns the nodes belonging to the named group in insertion
// order. The empty string selects ungrouped nodes.
func (g *Graph) NodesInGroup(group string) []Node {
	var out []Node
	for _, n := range g.nodes {
		if n.Group == group {
			out = append(out, n)
		}
	}
	return out
}

// Outgoing returns the IDs of nodes reachable from id over a single edge,
// in lexical order.
func (g *Graph) Outgoing(id string) []string {
	targets := sets.New[string]()
	for _, e := range g.edges {
		if e.From == id {
			targets.Add(e.To)
		}
	}
	return sets.Sorted(targets)
}

// Validate checks that every edge endpoint resolves to a declared node.
// Duplicate IDs are rejected at insertion time, so a graph assembled through
// AddNode/AddEdge only needs endpoint resolution checked here.
func (g *Graph) Validate() error {
	missing := sets.New[string]()
	for _, e := range g.edges {
		if _, ok := g.byID[e.From]; !ok {
			missing.Add(e.From)
		}
		if _, ok := g.byID[e.To]; !ok {
			missing.Add(e.To)
		}
	}
	if len(missing) > 0 {
		names := sets.Sorted(missing)
		return errors.NewValidationError(fmt.Sprintf("edges reference undeclared nodes: %v", names)).
			WithContext("nodes", names)
	}
	return nil
}

// sortedIDs returns all node IDs in lexical order.
func (g *Graph) sortedIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for _, n := range g.nodes {
		ids = append(ids, n.ID)
	}
	sort.Strings(ids)
	return ids
}
