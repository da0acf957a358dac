package serialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmreid/csp-report-lambda-cloudwatch/intrinsics"
	"github.com/chmreid/csp-report-lambda-cloudwatch/resources/lambda"
	"github.com/chmreid/csp-report-lambda-cloudwatch/resources/logs"
	"github.com/chmreid/csp-report-lambda-cloudwatch/resources/route53"
)

func TestProperties_SimpleResource(t *testing.T) {
	group := logs.LogGroup{
		LogGroupName:    "/aws/lambda/csp-report",
		RetentionInDays: 90,
	}

	props, err := Properties(group)
	require.NoError(t, err)

	assert.Equal(t, "/aws/lambda/csp-report", props["LogGroupName"])
	assert.Equal(t, int64(90), props["RetentionInDays"])
}

func TestProperties_OmitsZeroValues(t *testing.T) {
	fn := lambda.Function{
		FunctionName: "csp-report",
		Runtime:      "provided.al2023",
	}

	props, err := Properties(fn)
	require.NoError(t, err)

	assert.NotContains(t, props, "Description")
	assert.NotContains(t, props, "MemorySize")
	assert.NotContains(t, props, "Environment") // Nil pointer should be omitted
	assert.NotContains(t, props, "Code")        // Empty nested struct should be omitted
}

func TestProperties_IntrinsicField(t *testing.T) {
	fn := lambda.Function{
		FunctionName: "csp-report",
		Role:         intrinsics.GetAtt{Resource: "ExecutionRole", Attribute: "Arn"},
	}

	props, err := Properties(fn)
	require.NoError(t, err)

	role := props["Role"].(map[string]any)
	assert.Equal(t, []any{"ExecutionRole", "Arn"}, role["Fn::GetAtt"])
}

func TestProperties_NestedStruct(t *testing.T) {
	fn := lambda.Function{
		FunctionName: "csp-report",
		Code: lambda.Function_Code{
			S3Bucket: intrinsics.Ref{Name: "CodeBucket"},
			S3Key:    "csp-report.zip",
		},
	}

	props, err := Properties(fn)
	require.NoError(t, err)

	code := props["Code"].(map[string]any)
	assert.Equal(t, "csp-report.zip", code["S3Key"])
	assert.Equal(t, map[string]any{"Ref": "CodeBucket"}, code["S3Bucket"])
}

func TestProperties_JSONTagOverridesReservedWord(t *testing.T) {
	record := route53.RecordSet{
		Name:  "csp.example.com.",
		Type_: "A",
	}

	props, err := Properties(record)
	require.NoError(t, err)

	assert.Equal(t, "A", props["Type"])
	assert.NotContains(t, props, "Type_")
}

func TestProperties_SliceOfAny(t *testing.T) {
	doc := intrinsics.PolicyDocument{
		Version: "2012-10-17",
		Statement: intrinsics.Any(intrinsics.PolicyStatement{
			Effect: "Allow",
			Action: "sts:AssumeRole",
		}),
	}

	props, err := Properties(doc)
	require.NoError(t, err)

	stmts := props["Statement"].([]any)
	require.Len(t, stmts, 1)
	stmt := stmts[0].(map[string]any)
	assert.Equal(t, "Allow", stmt["Effect"])
	assert.Equal(t, "sts:AssumeRole", stmt["Action"])
}

func TestProperties_Pointer(t *testing.T) {
	record := route53.RecordSet{
		Name:  "csp.example.com.",
		Type_: "A",
		AliasTarget: &route53.RecordSet_AliasTarget{
			DNSName:      intrinsics.GetAtt{Resource: "ReportDomain", Attribute: "DistributionDomainName"},
			HostedZoneId: "Z2FDTNDATAQYW2",
		},
	}

	props, err := Properties(&record)
	require.NoError(t, err)

	alias := props["AliasTarget"].(map[string]any)
	assert.Equal(t, "Z2FDTNDATAQYW2", alias["HostedZoneId"])
	assert.NotContains(t, alias, "EvaluateTargetHealth") // false is omitted
}
