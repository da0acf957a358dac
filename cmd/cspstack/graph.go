package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chmreid/csp-report-lambda-cloudwatch/internal/graph"
)

func newGraphCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "graph [stack]",
		Short: "Generate DOT graph of resource dependencies",
		Long: `Generate a DOT or Mermaid format graph showing resource dependencies.

The output can be rendered with Graphviz:
    cspstack graph report | dot -Tpng -o deps.png

Or used in GitHub markdown (Mermaid format):
    cspstack graph report -f mermaid

Examples:
    cspstack graph report
    cspstack graph reportdomain -f mermaid`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(args[0], outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "dot", "Output format: dot or mermaid")

	return cmd
}

func runGraph(stack, format string) error {
	builder, err := lookupStack(stack)
	if err != nil {
		return err
	}

	var graphFormat graph.Format
	switch format {
	case "dot":
		graphFormat = graph.FormatDOT
	case "mermaid":
		graphFormat = graph.FormatMermaid
	default:
		return fmt.Errorf("unknown format: %s (use 'dot' or 'mermaid')", format)
	}

	deps, err := builder.Dependencies()
	if err != nil {
		return fmt.Errorf("resolving dependencies: %w", err)
	}

	gen := &graph.Generator{Format: graphFormat}
	return gen.Generate(builder.ResourceTypes(), deps, os.Stdout)
}
