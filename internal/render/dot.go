package render

import (
	"fmt"

	"git.home.luguber.info/inful/graphdot/internal/doc"
	"git.home.luguber.info/inful/graphdot/internal/graph"
)

// line aliases the string-fragment document used by all renderers.
type line = doc.Doc[string]

// txt shortens string-literal document construction.
func txt(s string) line {
	return doc.Text[string](s)
}

// renderDOT creates a Graphviz DOT diagram. Groups become filled clusters.
// Node IDs and labels are emitted verbatim inside quotes; callers own any
// escaping of special characters.
func renderDOT(g *graph.Graph) line {
	title := g.Title
	if title == "" {
		title = "G"
	}

	var lines []line
	lines = append(lines,
		doc.Concat(txt("digraph "), doc.DoubleQuotes(txt(title)), txt(" {")),
		doc.Indent(4, txt("rankdir=TB;")),
		doc.Indent(4, doc.Concat(txt("node "), doc.Brackets(txt("shape=box, style=rounded")), txt(";"))),
	)

	// One cluster per group, numbered in lexical group order.
	for i, group := range g.Groups() {
		lines = append(lines,
			doc.Indent(4, txt(fmt.Sprintf("subgraph cluster_%d {", i))),
			doc.Indent(8, doc.Concat(txt("label="), doc.DoubleQuotes(txt(group)), txt(";"))),
			doc.Indent(8, txt("style=filled;")),
			doc.Indent(8, txt("color=lightgrey;")),
		)
		for _, n := range g.NodesInGroup(group) {
			lines = append(lines, doc.Indent(8, dotNode(n)))
		}
		lines = append(lines, doc.Indent(4, txt("}")))
	}

	for _, n := range g.NodesInGroup("") {
		lines = append(lines, doc.Indent(4, dotNode(n)))
	}

	for _, e := range g.Edges() {
		lines = append(lines, doc.Indent(4, doc.Concat(
			doc.DoubleQuotes(txt(e.From)),
			txt(" -> "),
			doc.DoubleQuotes(txt(e.To)),
			txt(";"),
		)))
	}

	lines = append(lines, txt("}"))
	return doc.Unlines(lines)
}

// dotNode renders a single node statement: "id" [label="..."];
func dotNode(n graph.Node) line {
	return doc.Concat(
		doc.DoubleQuotes(txt(n.ID)),
		txt(" "),
		doc.Brackets(doc.Concat(txt("label="), doc.DoubleQuotes(txt(n.DisplayLabel())))),
		txt(";"),
	)
}
