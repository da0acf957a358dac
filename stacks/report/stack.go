// Package report declares the basic CSP report ingest stack.
//
// This file registers the declarations with the template builder.
package report

import (
	"github.com/chmreid/csp-report-lambda-cloudwatch/internal/template"
	. "github.com/chmreid/csp-report-lambda-cloudwatch/intrinsics"
)

// StackName is the registry key for this stack variant.
const StackName = "report"

// New returns the template builder for the basic report topology.
func New() *template.Builder {
	b := template.NewBuilder(StackName,
		"CSP report ingest: public REST endpoint, ingest function, CloudWatch log sink")

	b.AddParameter(CodeBucket)
	b.AddParameter(CodeKey)

	b.AddResource("ExecutionRole", ExecutionRole)
	b.AddResource("ReportLogGroup", ReportLogGroup)
	b.AddResource("ReportFunction", ReportFunction)
	b.AddResource("GatewayInvokePermission", GatewayInvokePermission)
	b.AddResource("ReportApi", ReportApi)
	b.AddResource("ReportResource", ReportResource)
	b.AddResource("ReportMethod", ReportMethod)
	// A Deployment only references the API, so CloudFormation cannot infer
	// that the method must exist first.
	b.AddResource("ApiDeployment", ApiDeployment, "ReportMethod")

	b.AddOutput("ReportEndpoint", Output{
		Description: "Invoke URL accepting POSTed CSP reports",
		Value:       Sub{String: "https://${ReportApi}.execute-api.${AWS::Region}.amazonaws.com/prod/report"},
	})

	return b
}
