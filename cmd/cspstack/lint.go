package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	cspreport "github.com/chmreid/csp-report-lambda-cloudwatch"
	"github.com/chmreid/csp-report-lambda-cloudwatch/internal/template"
	"github.com/chmreid/csp-report-lambda-cloudwatch/internal/validation"
)

func newLintCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "lint [stack]",
		Short: "Run cfn-lint on the rendered template",
		Long: `Lint renders a stack to CloudFormation and checks the result with cfn-lint.

The result passes when cfn-lint reports no errors; warnings and
informational findings are listed but do not fail the lint.

Examples:
    cspstack lint report
    cspstack lint reportdomain --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(args[0], outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runLint(stack, format string) error {
	builder, err := lookupStack(stack)
	if err != nil {
		return err
	}

	tmpl, err := builder.Build()
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	data, err := template.ToJSON(tmpl)
	if err != nil {
		return err
	}

	// cfn-lint reads from disk, so render to a temp file first.
	tmpDir, err := os.MkdirTemp("", "cspstack-lint")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.RemoveAll(tmpDir)
	}()

	templatePath := filepath.Join(tmpDir, stack+".json")
	if err := os.WriteFile(templatePath, data, 0644); err != nil {
		return err
	}

	result, err := validation.RunCfnLint(templatePath)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	return outputLintResult(*result, format)
}

func outputLintResult(result cspreport.LintResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if result.TotalIssues() == 0 {
			fmt.Println("No issues found.")
			return nil
		}

		for _, issue := range result.Errors {
			fmt.Printf("error: %s\n", issue)
		}
		for _, issue := range result.Warnings {
			fmt.Printf("warning: %s\n", issue)
		}
		for _, issue := range result.Informational {
			fmt.Printf("info: %s\n", issue)
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !result.Passed {
		os.Exit(2) // Exit code 2 for errors found
	}

	return nil
}
