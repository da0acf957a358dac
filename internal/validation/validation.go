// Package validation runs cfn-lint on rendered CloudFormation templates.
package validation

import (
	"fmt"
	"os"
	"strings"

	"github.com/lex00/cfn-lint-go/pkg/lint"

	cspreport "github.com/chmreid/csp-report-lambda-cloudwatch"
)

// RunCfnLint runs cfn-lint-go on the given template file.
// Warnings are acceptable; the result passes when there are no errors.
func RunCfnLint(templatePath string) (*cspreport.LintResult, error) {
	if _, err := os.Stat(templatePath); err != nil {
		return &cspreport.LintResult{
			Passed: false,
			Errors: []string{fmt.Sprintf("template file not found: %s", templatePath)},
		}, nil
	}

	linter := lint.New(lint.Options{})
	matches, err := linter.LintFile(templatePath)
	if err != nil {
		return &cspreport.LintResult{
			Passed: false,
			Errors: []string{fmt.Sprintf("linter error: %v", err)},
		}, nil
	}

	result := &cspreport.LintResult{
		Errors:        []string{},
		Warnings:      []string{},
		Informational: []string{},
	}

	if len(matches) == 0 {
		result.Passed = true
		return result, nil
	}

	for _, match := range matches {
		formatted := formatMatch(match)

		switch match.Level {
		case "Error":
			result.Errors = append(result.Errors, formatted)
		case "Warning":
			result.Warnings = append(result.Warnings, formatted)
		default:
			result.Informational = append(result.Informational, formatted)
		}
	}

	result.Passed = len(result.Errors) == 0

	return result, nil
}

// formatMatch formats a cfn-lint-go match for display.
func formatMatch(match lint.Match) string {
	pathStr := ""
	if len(match.Location.Path) > 0 {
		parts := make([]string, len(match.Location.Path))
		for i, p := range match.Location.Path {
			parts[i] = fmt.Sprintf("%v", p)
		}
		pathStr = strings.Join(parts, "/")
	}

	if pathStr != "" {
		return fmt.Sprintf("%s: %s (at %s)", match.Rule.ID, match.Message, pathStr)
	}
	return fmt.Sprintf("%s: %s", match.Rule.ID, match.Message)
}
