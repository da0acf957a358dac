package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lex00/cfn-lint-go/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCfnLint_MissingFile(t *testing.T) {
	result, err := RunCfnLint(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	assert.False(t, result.Passed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "not found")
}

func TestRunCfnLint_ValidTemplate(t *testing.T) {
	tempDir := t.TempDir()
	templatePath := filepath.Join(tempDir, "template.yaml")

	validTemplate := `AWSTemplateFormatVersion: '2010-09-09'
Description: CSP report ingest
Resources:
  ReportLogGroup:
    Type: AWS::Logs::LogGroup
    Properties:
      LogGroupName: /aws/lambda/csp-report
      RetentionInDays: 90
`
	err := os.WriteFile(templatePath, []byte(validTemplate), 0644)
	require.NoError(t, err)

	result, err := RunCfnLint(templatePath)
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestFormatMatch(t *testing.T) {
	match := lint.Match{
		Rule: lint.MatchRule{
			ID: "E3002",
		},
		Location: lint.MatchLocation{
			Path: []any{"Resources", "ReportFunction", "Properties"},
		},
		Level:   "Error",
		Message: "Invalid property",
	}

	formatted := formatMatch(match)
	assert.Equal(t, "E3002: Invalid property (at Resources/ReportFunction/Properties)", formatted)
}

func TestFormatMatch_NoPath(t *testing.T) {
	match := lint.Match{
		Rule:    lint.MatchRule{ID: "W1001"},
		Level:   "Warning",
		Message: "Something minor",
	}

	assert.Equal(t, "W1001: Something minor", formatMatch(match))
}
