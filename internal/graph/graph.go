// Package graph generates DOT and Mermaid dependency graphs for a stack.
package graph

import (
	"io"
	"sort"
	"strings"

	"github.com/emicklei/dot"
)

// Format specifies the output format for the graph.
type Format string

const (
	// FormatDOT outputs Graphviz DOT format.
	FormatDOT Format = "dot"
	// FormatMermaid outputs Mermaid format for GitHub/markdown rendering.
	FormatMermaid Format = "mermaid"
)

// Generator creates dependency graphs from a built stack.
type Generator struct {
	// Format specifies the output format (dot or mermaid). Defaults to dot.
	Format Format
}

// Generate writes the dependency graph for the given resources to w.
// types maps logical name → CloudFormation type; deps maps logical name →
// referenced resource names.
func (g *Generator) Generate(types map[string]string, deps map[string][]string, w io.Writer) error {
	graph := g.buildGraph(types, deps)

	format := g.Format
	if format == "" {
		format = FormatDOT
	}

	var output string
	if format == FormatMermaid {
		output = dot.MermaidGraph(graph, dot.MermaidTopToBottom)
	} else {
		output = graph.String()
	}

	_, err := w.Write([]byte(output))
	return err
}

// GenerateString is a convenience method that returns the graph as a string.
func (g *Generator) GenerateString(types map[string]string, deps map[string][]string) (string, error) {
	var sb strings.Builder
	if err := g.Generate(types, deps, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// buildGraph creates the dot.Graph structure. Nodes and edges are added in
// sorted order so output is stable.
func (g *Generator) buildGraph(types map[string]string, deps map[string][]string) *dot.Graph {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "TB")

	graph.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
	})

	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		n := graph.Node(name)
		n.Label(name + "\\n[" + types[name] + "]")
	}

	for _, name := range names {
		resourceDeps := append([]string(nil), deps[name]...)
		sort.Strings(resourceDeps)
		for _, dep := range resourceDeps {
			if _, exists := types[dep]; !exists {
				continue
			}
			graph.Edge(graph.Node(name), graph.Node(dep))
		}
	}

	return graph
}
