// Package intrinsics provides CloudFormation intrinsic functions.
//
// Core intrinsic functions:
//
//	Ref{"ReportFunction"} → {"Ref": "ReportFunction"}
//	Sub{String: "${AWS::Region}-report"} → {"Fn::Sub": "${AWS::Region}-report"}
//	Join{",", []any{"a", "b"}} → {"Fn::Join": [",", ["a", "b"]]}
//
// Pseudo-parameters:
//
//	AWS_REGION, AWS_ACCOUNT_ID, AWS_STACK_NAME, etc.
package intrinsics

import (
	"encoding/json"
)

// Ref represents a CloudFormation Ref intrinsic function.
type Ref struct {
	Name string
}

// MarshalJSON serializes Ref to CloudFormation syntax.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"Ref": r.Name})
}

// GetAtt represents a CloudFormation Fn::GetAtt intrinsic function.
//
// Example:
//
//	Role: GetAtt{"ExecutionRole", "Arn"}
type GetAtt struct {
	// Resource is the logical name of the referenced resource
	Resource string
	// Attribute is the attribute name (e.g., "Arn", "DistributionDomainName")
	Attribute string
}

// MarshalJSON serializes GetAtt to CloudFormation syntax.
func (g GetAtt) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]string{
		"Fn::GetAtt": {g.Resource, g.Attribute},
	})
}

// IsZero returns true if the GetAtt has not been populated.
func (g GetAtt) IsZero() bool {
	return g.Resource == "" && g.Attribute == ""
}

// Sub represents a CloudFormation Fn::Sub intrinsic function.
type Sub struct {
	String string
}

// MarshalJSON serializes Sub to CloudFormation syntax.
func (s Sub) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"Fn::Sub": s.String})
}

// Join represents a CloudFormation Fn::Join intrinsic function.
type Join struct {
	Delimiter string
	Values    []any
}

// MarshalJSON serializes Join to CloudFormation syntax.
func (j Join) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"Fn::Join": []any{j.Delimiter, j.Values},
	})
}

// ImportValue represents a CloudFormation Fn::ImportValue intrinsic function.
type ImportValue struct {
	Name any
}

// MarshalJSON serializes ImportValue to CloudFormation syntax.
func (i ImportValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"Fn::ImportValue": i.Name})
}

// Parameter defines a CloudFormation template parameter with full metadata.
// When used as a value in resource properties, it serializes to
// {"Ref": "ParameterName"}.
//
// Example:
//
//	var CodeBucket = Parameter{
//	    Name:        "CodeBucket",
//	    Type:        "String",
//	    Description: "S3 bucket holding the function deployment package",
//	}
//
//	var ReportFunction = lambda.Function{
//	    Code: lambda.Function_Code{S3Bucket: CodeBucket},
//	}
type Parameter struct {
	// Name is the logical parameter name used for Ref serialization
	Name string
	// Type is the CloudFormation parameter type (String, Number, etc.)
	Type string
	// Description is optional documentation for the parameter
	Description string
	// Default is the default value if none is provided
	Default any
	// AllowedValues restricts the parameter to specific values
	AllowedValues []any
	// AllowedPattern is a regex pattern for String type validation
	AllowedPattern string
	// ConstraintDescription explains validation failures
	ConstraintDescription string
	// NoEcho masks the parameter value in console/logs
	NoEcho bool
}

// MarshalJSON serializes Parameter as a CloudFormation Ref when used as a value.
func (p Parameter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"Ref": p.Name})
}

// ToDefinition returns the parameter as a map suitable for the Parameters section.
func (p Parameter) ToDefinition() map[string]any {
	def := map[string]any{
		"Type": p.Type,
	}
	if p.Description != "" {
		def["Description"] = p.Description
	}
	if p.Default != nil {
		def["Default"] = p.Default
	}
	if len(p.AllowedValues) > 0 {
		def["AllowedValues"] = p.AllowedValues
	}
	if p.AllowedPattern != "" {
		def["AllowedPattern"] = p.AllowedPattern
	}
	if p.ConstraintDescription != "" {
		def["ConstraintDescription"] = p.ConstraintDescription
	}
	if p.NoEcho {
		def["NoEcho"] = true
	}
	return def
}

// Output represents a CloudFormation stack output.
type Output struct {
	// Description is optional documentation for the output
	Description string
	// Value is the output value, usually a Ref, GetAtt, or Sub
	Value any
	// ExportName makes the output importable by other stacks
	ExportName string
}

// ToDefinition returns the output as a map suitable for the Outputs section.
func (o Output) ToDefinition() map[string]any {
	def := map[string]any{
		"Value": o.Value,
	}
	if o.Description != "" {
		def["Description"] = o.Description
	}
	if o.ExportName != "" {
		def["Export"] = map[string]any{"Name": o.ExportName}
	}
	return def
}

// Tag represents a CloudFormation resource tag.
type Tag struct {
	Key   string `json:"Key"`
	Value any    `json:"Value"`
}

// Any creates a []any slice from the given items.
// Use for fields typed as []any that accept mixed types or intrinsics.
//
// Example:
//
//	Statement: Any(AssumeRoleStatement, LogsStatement),
func Any(items ...any) []any {
	return items
}
