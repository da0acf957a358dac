// Package reportdomain declares the custom-domain CSP report ingest stack.
//
// This file contains IAM resources: the function execution role.
package reportdomain

import (
	. "github.com/chmreid/csp-report-lambda-cloudwatch/intrinsics"
	"github.com/chmreid/csp-report-lambda-cloudwatch/resources/iam"
)

// ----------------------------------------------------------------------------
// Execution Role
// ----------------------------------------------------------------------------

// AssumeRoleStatement allows the Lambda service to assume the execution role.
var AssumeRoleStatement = PolicyStatement{
	Effect:    "Allow",
	Principal: ServicePrincipal{"lambda.amazonaws.com"},
	Action:    "sts:AssumeRole",
}

// AssumeRolePolicy is the trust policy for the execution role.
var AssumeRolePolicy = PolicyDocument{
	Version:   "2012-10-17",
	Statement: Any(AssumeRoleStatement),
}

// LogWriteStatement allows the function to write log events into its own
// log group and nothing else.
var LogWriteStatement = PolicyStatement{
	Effect: "Allow",
	Action: []any{
		"logs:CreateLogStream",
		"logs:PutLogEvents",
	},
	Resource: GetAtt{Resource: "ReportLogGroup", Attribute: "Arn"},
}

// LogWritePolicy is the inline policy for CloudWatch logging.
var LogWritePolicy = iam.Role_Policy{
	PolicyName: "report-log-write",
	PolicyDocument: PolicyDocument{
		Version:   "2012-10-17",
		Statement: Any(LogWriteStatement),
	},
}

// ExecutionRole is the IAM role assumed by the ingest function.
var ExecutionRole = iam.Role{
	RoleName:                 Sub{String: "${AWS::StackName}-handler-role"},
	AssumeRolePolicyDocument: AssumeRolePolicy,
	Policies:                 Any(LogWritePolicy),
}
