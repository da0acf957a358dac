// Package route53 provides AWS::Route53 resource types.
package route53

// RecordSet represents an AWS::Route53::RecordSet resource.
type RecordSet struct {
	// HostedZoneId is the zone the record lives in
	HostedZoneId any
	// Name is the fully qualified record name
	Name any
	// Type_ is the record type (A, AAAA, CNAME, ...)
	Type_ string `json:"Type"`
	// AliasTarget points an alias record at an AWS endpoint
	AliasTarget *RecordSet_AliasTarget
	// TTL is the cache lifetime in seconds (not allowed on alias records)
	TTL string
	// ResourceRecords are the record values (not allowed on alias records)
	ResourceRecords []any
}

// ResourceType returns the CloudFormation type.
func (RecordSet) ResourceType() string { return "AWS::Route53::RecordSet" }

// RecordSet_AliasTarget is the AliasTarget property type.
type RecordSet_AliasTarget struct {
	// DNSName is the target endpoint domain
	DNSName any
	// HostedZoneId is the target service's zone, not the record's zone.
	// CloudFront distributions always use Z2FDTNDATAQYW2.
	HostedZoneId any
	// EvaluateTargetHealth routes away from unhealthy targets
	EvaluateTargetHealth bool
}
