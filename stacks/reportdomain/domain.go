// Package reportdomain declares the custom-domain CSP report ingest stack.
//
// This file contains the custom domain, its mapping onto the deployed API,
// and the DNS alias record.
package reportdomain

import (
	. "github.com/chmreid/csp-report-lambda-cloudwatch/intrinsics"
	"github.com/chmreid/csp-report-lambda-cloudwatch/resources/apigateway"
	"github.com/chmreid/csp-report-lambda-cloudwatch/resources/route53"
)

// cloudFrontHostedZoneId is the fixed zone for every CloudFront
// distribution, which is what an edge-optimized API domain aliases to.
const cloudFrontHostedZoneId = "Z2FDTNDATAQYW2"

// ----------------------------------------------------------------------------
// Custom Domain
// ----------------------------------------------------------------------------

// ReportDomain terminates TLS for the public report domain.
var ReportDomain = apigateway.DomainName{
	DomainName:     ReportDomainName,
	CertificateArn: CertificateArn,
	EndpointConfiguration: &apigateway.DomainName_EndpointConfiguration{
		Types: Any("EDGE"),
	},
}

// DomainMapping serves the prod stage of the REST API from the domain root.
var DomainMapping = apigateway.BasePathMapping{
	DomainName: Ref{Name: "ReportDomain"},
	RestApiId:  Ref{Name: "ReportApi"},
	Stage:      "prod",
}

// ----------------------------------------------------------------------------
// DNS Alias
// ----------------------------------------------------------------------------

// DnsRecord aliases the public domain to the edge distribution backing the
// custom domain.
var DnsRecord = route53.RecordSet{
	HostedZoneId: HostedZoneId,
	Name:         ReportDomainName,
	Type_:        "A",
	AliasTarget: &route53.RecordSet_AliasTarget{
		DNSName:      GetAtt{Resource: "ReportDomain", Attribute: "DistributionDomainName"},
		HostedZoneId: cloudFrontHostedZoneId,
	},
}
