// Package reportdomain declares the CSP report ingest stack served from a
// custom domain: the same topology as the basic report stack, plus an
// ACM-backed API Gateway domain, a base path mapping, and a Route 53 alias
// record.
//
// This file contains the template parameters.
package reportdomain

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

// ReportDomainName is the public domain reports are POSTed to.
var ReportDomainName = Parameter{
	Name:        "ReportDomainName",
	Type:        "String",
	Description: "Fully qualified domain name for the report endpoint (e.g. csp.example.com)",
}

// CertificateArn is the ACM certificate for the custom domain.
// Edge-optimized domains require the certificate to live in us-east-1.
var CertificateArn = Parameter{
	Name:        "CertificateArn",
	Type:        "String",
	Description: "ACM certificate ARN for the report domain (us-east-1)",
}

// HostedZoneId is the Route 53 zone the alias record is created in.
var HostedZoneId = Parameter{
	Name:        "HostedZoneId",
	Type:        "AWS::Route53::HostedZone::Id",
	Description: "Route 53 hosted zone for the report domain",
}
