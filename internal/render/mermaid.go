package render

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/graphdot/internal/doc"
	"git.home.luguber.info/inful/graphdot/internal/graph"
	"git.home.luguber.info/inful/graphdot/internal/util/sets"
)

// renderMermaid creates a Mermaid diagram. Groups become subgraphs.
func renderMermaid(g *graph.Graph) line {
	ids := mermaidIDs(g)

	var lines []line
	lines = append(lines, txt("graph TD"))

	for _, group := range g.Groups() {
		lines = append(lines, doc.Indent(4, doc.Concat(
			txt("subgraph "),
			txt(sanitizeMermaid(group)),
			doc.Brackets(doc.DoubleQuotes(txt(group))),
		)))
		for _, n := range g.NodesInGroup(group) {
			lines = append(lines, doc.Indent(8, mermaidNode(n, ids)))
		}
		lines = append(lines, doc.Indent(4, txt("end")))
	}

	for _, n := range g.NodesInGroup("") {
		lines = append(lines, doc.Indent(4, mermaidNode(n, ids)))
	}

	for _, e := range g.Edges() {
		lines = append(lines, doc.Indent(4, doc.Concat(
			txt(ids[e.From]),
			txt(" --> "),
			txt(ids[e.To]),
		)))
	}

	return doc.Unlines(lines)
}

// mermaidNode renders a node statement: id["label"]
func mermaidNode(n graph.Node, ids map[string]string) line {
	return doc.Concat(
		txt(ids[n.ID]),
		doc.Brackets(doc.DoubleQuotes(txt(n.DisplayLabel()))),
	)
}

// mermaidIDs assigns each node a sanitized Mermaid identifier. Sanitizing
// can collapse distinct IDs ("a_b" and "ab" both strip to "ab"), so later
// nodes whose sanitized form is already taken get a numeric suffix.
func mermaidIDs(g *graph.Graph) map[string]string {
	ids := make(map[string]string)
	taken := sets.New[string]()

	for _, n := range g.Nodes() {
		base := sanitizeMermaid(n.ID)
		candidate := base
		for i := 2; taken.Has(candidate); i++ {
			candidate = fmt.Sprintf("%s%d", base, i)
		}
		taken.Add(candidate)
		ids[n.ID] = candidate
	}
	return ids
}

// sanitizeMermaid strips characters Mermaid chokes on in bare identifiers.
func sanitizeMermaid(id string) string {
	id = strings.ReplaceAll(id, "_", "")
	return strings.ReplaceAll(id, "-", "")
}
