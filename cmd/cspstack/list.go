package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	cspreport "github.com/chmreid/csp-report-lambda-cloudwatch"
)

func newListCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "list [stack]",
		Short: "List resources declared in a stack",
		Long: `List displays every resource a stack registers, with its CloudFormation type.

Examples:
    cspstack list report
    cspstack list reportdomain --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args[0], outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runList(stack, format string) error {
	builder, err := lookupStack(stack)
	if err != nil {
		return err
	}

	types := builder.ResourceTypes()

	listResult := cspreport.ListResult{
		Resources: make([]cspreport.ListResource, 0, len(types)),
	}
	for name, typ := range types {
		listResult.Resources = append(listResult.Resources, cspreport.ListResource{
			Name: name,
			Type: typ,
		})
	}

	// Sort by name for consistent output
	sort.Slice(listResult.Resources, func(i, j int) bool {
		return listResult.Resources[i].Name < listResult.Resources[j].Name
	})

	return outputListResult(listResult, format)
}

func outputListResult(result cspreport.ListResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if len(result.Resources) == 0 {
			fmt.Println("No resources found.")
			return nil
		}

		fmt.Printf("Registered resources (%d):\n\n", len(result.Resources))
		for _, res := range result.Resources {
			fmt.Printf("  %s: %s\n", res.Name, res.Type)
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
