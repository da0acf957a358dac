// Package report declares the basic CSP report ingest stack: a public REST
// API endpoint, the ingest function, its execution role, and the log group
// the reports land in.
//
// This file contains the template parameters.
package report

import (
	. "github.com/chmreid/csp-report-lambda-cloudwatch/intrinsics"
)

// CodeBucket is the S3 bucket holding the function deployment package.
var CodeBucket = Parameter{
	Name:        "CodeBucket",
	Type:        "String",
	Description: "S3 bucket holding the csp-report deployment package",
}

// CodeKey is the S3 key of the function deployment package.
var CodeKey = Parameter{
	Name:        "CodeKey",
	Type:        "String",
	Description: "S3 key of the csp-report deployment package",
	Default:     "csp-report.zip",
}
