package render

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/graphdot/internal/doc"
	"git.home.luguber.info/inful/graphdot/internal/graph"
)

// renderText creates a human-readable listing of the graph.
func renderText(g *graph.Graph) line {
	header := "Graph"
	if g.Title != "" {
		header = "Graph: " + g.Title
	}

	var lines []line
	lines = append(lines, txt(header), txt(strings.Repeat("=", len(header))))

	for _, group := range g.Groups() {
		lines = append(lines, doc.Empty[string](), txt("Group: "+group))
		for _, n := range g.NodesInGroup(group) {
			lines = append(lines, doc.Indent(4, textNode(n)))
		}
	}

	if ungrouped := g.NodesInGroup(""); len(ungrouped) > 0 {
		lines = append(lines, doc.Empty[string](), txt("Nodes:"))
		for _, n := range ungrouped {
			lines = append(lines, doc.Indent(4, textNode(n)))
		}
	}

	edges := g.Edges()
	if len(edges) > 0 {
		lines = append(lines, doc.Empty[string](), txt("Edges:"))
		for _, e := range edges {
			lines = append(lines, doc.Indent(4, doc.Concat(txt(e.From), txt(" -> "), txt(e.To))))
		}
	}

	// Dependency order, omitted when the graph is cyclic.
	if order, err := g.TopoSort(); err == nil && len(order) > 0 {
		lines = append(lines, doc.Empty[string](), txt("Order:"))
		lines = append(lines, doc.Indent(4, txt(strings.Join(order, " -> "))))
	}

	lines = append(lines, doc.Empty[string](),
		txt(fmt.Sprintf("Total: %d nodes, %d edges", len(g.Nodes()), len(edges))))
	return doc.Unlines(lines)
}

// textNode renders "id (label)" or just the ID when no distinct label exists.
func textNode(n graph.Node) line {
	if n.Label == "" || n.Label == n.ID {
		return txt(n.ID)
	}
	return doc.Concat(txt(n.ID), txt(" ("), txt(n.Label), txt(")"))
}
