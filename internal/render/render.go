// Package render serializes a graph into the supported visualization
// formats. Every renderer assembles its output through the doc package
// combinators, so output assembly stays linear in output size regardless of
// how many fragments a renderer appends.
package render

import (
	"fmt"

	"git.home.luguber.info/inful/graphdot/internal/graph"
)

// Format represents the output format for graph rendering.
type Format string

const (
	FormatText    Format = "text"
	FormatMermaid Format = "mermaid"
	FormatDOT     Format = "dot"
	FormatJSON    Format = "json"
)

// Render generates a representation of the graph in the requested format.
// The graph is validated first so every renderer can assume resolvable
// edge endpoints.
func Render(g *graph.Graph, format Format) (string, error) {
	if err := g.Validate(); err != nil {
		return "", err
	}

	switch format {
	case FormatText:
		return renderText(g).Export(), nil
	case FormatMermaid:
		return renderMermaid(g).Export(), nil
	case FormatDOT:
		return renderDOT(g).Export(), nil
	case FormatJSON:
		return renderJSON(g).Export(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// SupportedFormats returns a list of supported rendering formats.
func SupportedFormats() []Format {
	return []Format{FormatText, FormatMermaid, FormatDOT, FormatJSON}
}

// FormatDescription returns a description of a rendering format.
func FormatDescription(format Format) string {
	descriptions := map[Format]string{
		FormatText:    "Human-readable text listing",
		FormatMermaid: "Mermaid diagram (for GitHub, GitLab, etc.)",
		FormatDOT:     "Graphviz DOT format (render with `dot -Tpng graph.dot -o graph.png`)",
		FormatJSON:    "Structured JSON representation",
	}
	return descriptions[format]
}
