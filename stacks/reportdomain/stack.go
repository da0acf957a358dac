// Package reportdomain declares the custom-domain CSP report ingest stack.
//
// This file registers the declarations with the template builder.
package reportdomain

import (
	"github.com/chmreid/csp-report-lambda-cloudwatch/internal/template"
	. "github.com/chmreid/csp-report-lambda-cloudwatch/intrinsics"
)

// StackName is the registry key for this stack variant.
const StackName = "reportdomain"

// New returns the template builder for the custom-domain report topology.
func New() *template.Builder {
	b := template.NewBuilder(StackName,
		"CSP report ingest behind a custom domain: REST endpoint, ingest function, CloudWatch log sink, Route 53 alias")

	b.AddParameter(CodeBucket)
	b.AddParameter(CodeKey)
	b.AddParameter(ReportDomainName)
	b.AddParameter(CertificateArn)
	b.AddParameter(HostedZoneId)

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
	b.AddResource("ReportDomain", ReportDomain)
	// The mapping targets the prod stage by name; the stage is created by
	// the deployment.
	b.AddResource("DomainMapping", DomainMapping, "ApiDeployment")
	b.AddResource("DnsRecord", DnsRecord)

	b.AddOutput("ReportEndpoint", Output{
		Description: "Invoke URL accepting POSTed CSP reports",
		Value:       Sub{String: "https://${ReportApi}.execute-api.${AWS::Region}.amazonaws.com/prod/report"},
	})
	b.AddOutput("PublicReportURL", Output{
		Description: "Public report URL on the custom domain",
		Value:       Sub{String: "https://${ReportDomainName}/report"},
	})

	return b
}
