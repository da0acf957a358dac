package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cspreport "github.com/chmreid/csp-report-lambda-cloudwatch"
	"github.com/chmreid/csp-report-lambda-cloudwatch/internal/template"
)

func newBuildCmd() *cobra.Command {
	var (
		outputFormat string
		outputFile   string
		paramsFile   string
	)

	cmd := &cobra.Command{
		Use:   "build [stack]",
		Short: "Generate CloudFormation template for a stack",
		Long: `Build renders a registered stack to a CloudFormation template.

Examples:
    cspstack build report
    cspstack build report -o template.json
    cspstack build reportdomain --format yaml
    cspstack build reportdomain --params prod-params.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0], outputFormat, outputFile, paramsFile)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&paramsFile, "params", "p", "", "YAML file with parameter default overrides")

	return cmd
}

func runBuild(stack, format, outputFile, paramsFile string) error {
	builder, err := lookupStack(stack)
	if err != nil {
		return err
	}

	if paramsFile != "" {
		overrides, err := template.LoadParams(paramsFile)
		if err != nil {
			return outputResult(cspreport.BuildResult{
				Success: false,
				Errors:  []string{fmt.Sprintf("loading params: %v", err)},
			}, format, outputFile)
		}
		if err := builder.SetParameterDefaults(overrides); err != nil {
			return outputResult(cspreport.BuildResult{
				Success: false,
				Errors:  []string{err.Error()},
			}, format, outputFile)
		}
	}

	tmpl, err := builder.Build()
	if err != nil {
		return outputResult(cspreport.BuildResult{
			Success: false,
			Errors:  []string{err.Error()},
		}, format, outputFile)
	}

	return outputResult(cspreport.BuildResult{
		Success:   true,
		Template:  *tmpl,
		Resources: builder.ResourceNames(),
	}, format, outputFile)
}

func outputResult(result cspreport.BuildResult, format, outputFile string) error {
	// Build failures go to stderr
	if !result.Success {
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("build failed")
	}

	var data []byte
	var err error

	switch format {
	case "json":
		data, err = template.ToJSON(&result.Template)
	case "yaml":
		data, err = template.ToYAML(&result.Template)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if err != nil {
		return err
	}

	if outputFile == "" {
		fmt.Println(string(data))
		return nil
	}

	return os.WriteFile(outputFile, data, 0644)
}
