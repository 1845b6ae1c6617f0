// Package render draws a station network as a Graphviz diagram.
//
// DOT produces an undirected "graph" with one node per station and one edge
// per stored connection, labelled with its distance and coloured by line.
// A route can be highlighted on top. SVG renders DOT text through Graphviz.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/dijkstra"
)

// defaultEdgeColor is used for lines without a configured colour.
const defaultEdgeColor = "#7f7f7f"

// Options configures network diagram rendering.
type Options struct {
	// Title is drawn as the graph label when non-empty.
	Title string

	// Colors maps normalized line names to Graphviz colours.
	Colors map[string]string

	// Route, when non-empty, is highlighted: its stations are filled and the
	// edges it travels are drawn thicker.
	Route []dijkstra.PathStep
}

// DOT converts g to Graphviz DOT text.
// Stations appear in first-reference order and edges in insertion order,
// so the output is stable for a given graph.
func DOT(g *core.Graph, opts Options) string {
	onRoute := make(map[string]bool, len(opts.Route))
	travelled := make(map[string]bool, len(opts.Route))
	for _, step := range opts.Route {
		onRoute[step.Station] = true
		if step.Prev != "" {
			travelled[edgeKey(step.Prev, step.Station, step.Line)] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph metro {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
		buf.WriteString("  labelloc=t;\n")
	}
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10, width=0.3];\n")
	buf.WriteString("  edge [fontsize=9, penwidth=3];\n")
	buf.WriteString("\n")

	for _, s := range g.Stations() {
		attrs := []string{"xlabel=" + quote(s), "label=\"\""}
		if onRoute[s] {
			attrs = append(attrs, "fillcolor=black")
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", quote(s), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		color := opts.Colors[e.Line]
		if color == "" {
			color = defaultEdgeColor
		}
		attrs := []string{
			fmt.Sprintf("label=\"%d km\"", e.Distance),
			"color=" + quote(color),
		}
		if e.Line != "" {
			attrs = append(attrs, "tooltip="+quote(e.Line))
		}
		if travelled[edgeKey(e.From, e.To, e.Line)] {
			attrs = append(attrs, "penwidth=6")
		}
		fmt.Fprintf(&buf, "  %s -- %s [%s];\n", quote(e.From), quote(e.To), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders DOT text to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// edgeKey identifies an undirected edge on a line regardless of direction.
func edgeKey(a, b, line string) string {
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b + "\x00" + line
}

// quote renders s as a DOT string literal.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
