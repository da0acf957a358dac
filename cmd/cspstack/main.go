// Command cspstack renders the CSP report ingest stacks to CloudFormation.
//
// Usage:
//
//	cspstack build report           Generate CloudFormation template
//	cspstack list report            List declared resources
//	cspstack lint report            Run cfn-lint on the rendered template
//	cspstack serve                  Run the report handler locally
//	cspstack version                Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cspstack",
		Short: "Render the CSP report ingest stacks to CloudFormation",
		Long: `cspstack renders the CSP report ingest infrastructure to CloudFormation.

Two stack variants are available:

    report          API Gateway endpoint, ingest function, CloudWatch log sink
    reportdomain    the same, served from a custom domain with a Route 53 alias

Generate CloudFormation JSON:

    cspstack build report`,
	}

	rootCmd.AddCommand(
		newBuildCmd(),
		newListCmd(),
		newGraphCmd(),
		newLintCmd(),
		newWatchCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cspstack %s\n", getVersion())
		},
	}
}
