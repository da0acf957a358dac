// Package iam provides AWS::IAM resource types.
package iam

// Role represents an AWS::IAM::Role resource.
type Role struct {
	// RoleName is the role name
	RoleName any
	// AssumeRolePolicyDocument is the trust policy
	AssumeRolePolicyDocument any
	// Policies are inline policies attached to the role
	Policies []any
	// ManagedPolicyArns are managed policies attached to the role
	ManagedPolicyArns []any
}

// ResourceType returns the CloudFormation type.
func (Role) ResourceType() string { return "AWS::IAM::Role" }

// Role_Policy is the inline Policy property type.
type Role_Policy struct {
	PolicyName     any
	PolicyDocument any
}
