package template

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cspreport "github.com/chmreid/csp-report-lambda-cloudwatch"
	"github.com/chmreid/csp-report-lambda-cloudwatch/intrinsics"
	"github.com/chmreid/csp-report-lambda-cloudwatch/resources/iam"
	"github.com/chmreid/csp-report-lambda-cloudwatch/resources/lambda"
	"github.com/chmreid/csp-report-lambda-cloudwatch/resources/logs"
)

func testBuilder() *Builder {
	b := NewBuilder("test-stack", "Test stack")

	b.AddParameter(intrinsics.Parameter{
		Name: "CodeBucket",
		Type: "String",
	})

	b.AddResource("ExecutionRole", iam.Role{
		AssumeRolePolicyDocument: intrinsics.PolicyDocument{
			Version: "2012-10-17",
			Statement: intrinsics.Any(intrinsics.PolicyStatement{
				Effect:    "Allow",
				Principal: intrinsics.ServicePrincipal{"lambda.amazonaws.com"},
				Action:    "sts:AssumeRole",
			}),
		},
	})

	b.AddResource("ReportFunction", lambda.Function{
		FunctionName: "csp-report",
		Runtime:      "provided.al2023",
		Handler:      "bootstrap",
		Role:         intrinsics.GetAtt{Resource: "ExecutionRole", Attribute: "Arn"},
		Code: lambda.Function_Code{
			S3Bucket: intrinsics.Ref{Name: "CodeBucket"},
			S3Key:    "csp-report.zip",
		},
	})

	b.AddResource("ReportLogGroup", logs.LogGroup{
		LogGroupName:    "/aws/lambda/csp-report",
		RetentionInDays: 90,
	})

	b.AddOutput("FunctionArn", intrinsics.Output{
		Description: "ARN of the report function",
		Value:       intrinsics.GetAtt{Resource: "ReportFunction", Attribute: "Arn"},
	})

	return b
}

func TestBuilder_Build(t *testing.T) {
	tmpl, err := testBuilder().Build()
	require.NoError(t, err)

	assert.Equal(t, "2010-09-09", tmpl.AWSTemplateFormatVersion)
	assert.Equal(t, "Test stack", tmpl.Description)
	assert.Len(t, tmpl.Resources, 3)

	fn := tmpl.Resources["ReportFunction"]
	assert.Equal(t, "AWS::Lambda::Function", fn.Type)
	assert.Equal(t, "csp-report", fn.Properties["FunctionName"])

	role := fn.Properties["Role"].(map[string]any)
	assert.Equal(t, []any{"ExecutionRole", "Arn"}, role["Fn::GetAtt"])

	params := tmpl.Parameters["CodeBucket"].(map[string]any)
	assert.Equal(t, "String", params["Type"])

	output := tmpl.Outputs["FunctionArn"].(map[string]any)
	assert.Equal(t, "ARN of the report function", output["Description"])
}

func TestBuilder_Build_UndeclaredRef(t *testing.T) {
	b := NewBuilder("test-stack", "Test stack")
	b.AddResource("ReportFunction", lambda.Function{
		FunctionName: "csp-report",
		Role:         intrinsics.GetAtt{Resource: "MissingRole", Attribute: "Arn"},
	})

	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MissingRole")
}

func TestBuilder_Build_PseudoParameterRefAllowed(t *testing.T) {
	b := NewBuilder("test-stack", "Test stack")
	b.AddResource("ReportFunction", lambda.Function{
		FunctionName: intrinsics.Sub{String: "${AWS::StackName}-report"},
		Role:         intrinsics.AWS_REGION, // nonsense semantically, but a valid ref
	})

	_, err := b.Build()
	require.NoError(t, err)
}

func TestBuilder_Build_CycleDetected(t *testing.T) {
	b := NewBuilder("test-stack", "Test stack")
	b.AddResource("A", logs.LogGroup{LogGroupName: "a"}, "B")
	b.AddResource("B", logs.LogGroup{LogGroupName: "b"}, "A")

	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular dependency")
}

func TestBuilder_Build_ExplicitDependsOn(t *testing.T) {
	b := NewBuilder("test-stack", "Test stack")
	b.AddResource("First", logs.LogGroup{LogGroupName: "first"})
	b.AddResource("Second", logs.LogGroup{LogGroupName: "second"}, "First")

	tmpl, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"First"}, tmpl.Resources["Second"].DependsOn)
	assert.Empty(t, tmpl.Resources["First"].DependsOn)
}

func TestBuilder_Dependencies(t *testing.T) {
	deps, err := testBuilder().Dependencies()
	require.NoError(t, err)

	assert.Equal(t, []string{"ExecutionRole"}, deps["ReportFunction"])
	assert.Empty(t, deps["ExecutionRole"])
	assert.Empty(t, deps["ReportLogGroup"])
}

func TestBuilder_SetParameterDefaults(t *testing.T) {
	b := testBuilder()
	require.NoError(t, b.SetParameterDefaults(map[string]any{"CodeBucket": "my-bucket"}))

	tmpl, err := b.Build()
	require.NoError(t, err)

	params := tmpl.Parameters["CodeBucket"].(map[string]any)
	assert.Equal(t, "my-bucket", params["Default"])
}

func TestBuilder_SetParameterDefaults_UnknownParameter(t *testing.T) {
	err := testBuilder().SetParameterDefaults(map[string]any{"NoSuchParam": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchParam")
	assert.Contains(t, err.Error(), "CodeBucket")
}

func TestToJSON_Deterministic(t *testing.T) {
	first, err := ToJSON(mustBuild(t, testBuilder()))
	require.NoError(t, err)

	second, err := ToJSON(mustBuild(t, testBuilder()))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))

	// Output must be valid JSON with the standard sections.
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(first, &parsed))
	assert.Contains(t, parsed, "AWSTemplateFormatVersion")
	assert.Contains(t, parsed, "Resources")
}

func TestToYAML_Deterministic(t *testing.T) {
	first, err := ToYAML(mustBuild(t, testBuilder()))
	require.NoError(t, err)

	second, err := ToYAML(mustBuild(t, testBuilder()))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Contains(t, string(first), "AWSTemplateFormatVersion:")
}

func TestLoadParams(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("CodeBucket: my-bucket\nCodeKey: report.zip\n"), 0o644))

	params, err := LoadParams(path)
	require.NoError(t, err)
	assert.Equal(t, "my-bucket", params["CodeBucket"])
	assert.Equal(t, "report.zip", params["CodeKey"])
}

func TestLoadParams_MissingFile(t *testing.T) {
	_, err := LoadParams(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func mustBuild(t *testing.T, b *Builder) *cspreport.Template {
	t.Helper()
	tmpl, err := b.Build()
	require.NoError(t, err)
	return tmpl
}
