// Package reportdomain declares the custom-domain CSP report ingest stack.
//
// This file contains the ingest function, its log group, and the invoke
// permission for the gateway.
package reportdomain

import (
	. "github.com/chmreid/csp-report-lambda-cloudwatch/intrinsics"
	"github.com/chmreid/csp-report-lambda-cloudwatch/resources/lambda"
	"github.com/chmreid/csp-report-lambda-cloudwatch/resources/logs"
)

// ----------------------------------------------------------------------------
// Log Group
// ----------------------------------------------------------------------------

// ReportLogGroup is the log sink for parsed CSP reports. The name must
// match the function name: Lambda writes to /aws/lambda/<function-name>.
var ReportLogGroup = logs.LogGroup{
	LogGroupName:    Sub{String: "/aws/lambda/${AWS::StackName}-handler"},
	RetentionInDays: 90,
}

// ----------------------------------------------------------------------------
// Ingest Function
// ----------------------------------------------------------------------------

// ReportFunction parses POSTed CSP reports and writes them to the log group.
var ReportFunction = lambda.Function{
	FunctionName: Sub{String: "${AWS::StackName}-handler"},
	Description:  "Parses CSP violation reports and writes them to CloudWatch Logs",
	Runtime:      "provided.al2023",
	Handler:      "bootstrap",
	Architectures: []any{
		"arm64",
	},
	Code: lambda.Function_Code{
		S3Bucket: CodeBucket,
		S3Key:    CodeKey,
	},
	Role:       GetAtt{Resource: "ExecutionRole", Attribute: "Arn"},
	MemorySize: 128,
	Timeout:    10,
}

// ----------------------------------------------------------------------------
// Invoke Permission
// ----------------------------------------------------------------------------

// GatewayInvokePermission allows the REST API to invoke the ingest function.
var GatewayInvokePermission = lambda.Permission{
	FunctionName: GetAtt{Resource: "ReportFunction", Attribute: "Arn"},
	Action:       "lambda:InvokeFunction",
	Principal:    "apigateway.amazonaws.com",
	SourceArn: Join{
		Delimiter: "",
		Values: []any{
			"arn:aws:execute-api:",
			AWS_REGION,
			":",
			AWS_ACCOUNT_ID,
			":",
			Ref{Name: "ReportApi"},
			"/*",
		},
	},
}
