package render

import (
	"strconv"

	"git.home.luguber.info/inful/graphdot/internal/doc"
	"git.home.luguber.info/inful/graphdot/internal/graph"
)

// renderJSON creates a JSON representation of the graph. Output is assembled
// by hand to keep key order and element order stable; strconv.Quote supplies
// JSON-compatible string escaping.
func renderJSON(g *graph.Graph) line {
	var lines []line
	lines = append(lines, txt("{"))
	lines = append(lines, doc.Indent(2, doc.Concat(
		txt(`"title": `), txt(strconv.Quote(g.Title)), txt(","),
	)))

	nodes := g.Nodes()
	lines = append(lines, doc.Indent(2, txt(`"nodes": [`)))
	for i, n := range nodes {
		entry := doc.Concat(
			txt(`{"id": `), txt(strconv.Quote(n.ID)),
			txt(`, "label": `), txt(strconv.Quote(n.DisplayLabel())),
			txt(`, "group": `), txt(strconv.Quote(n.Group)),
			txt("}"),
		)
		if i < len(nodes)-1 {
			entry = entry.Append(txt(","))
		}
		lines = append(lines, doc.Indent(4, entry))
	}
	lines = append(lines, doc.Indent(2, txt("],")))

	edges := g.Edges()
	lines = append(lines, doc.Indent(2, txt(`"edges": [`)))
	for i, e := range edges {
		entry := doc.Concat(
			txt(`{"from": `), txt(strconv.Quote(e.From)),
			txt(`, "to": `), txt(strconv.Quote(e.To)),
			txt("}"),
		)
		if i < len(edges)-1 {
			entry = entry.Append(txt(","))
		}
		lines = append(lines, doc.Indent(4, entry))
	}
	lines = append(lines, doc.Indent(2, txt("]")))

	lines = append(lines, txt("}"))
	return doc.Unlines(lines)
}
