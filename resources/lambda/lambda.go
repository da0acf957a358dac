// Package lambda provides AWS::Lambda resource types.
package lambda

// Function represents an AWS::Lambda::Function resource.
type Function struct {
	// FunctionName is the function name
	FunctionName any
	// Description is optional documentation for the function
	Description string
	// Runtime is the execution runtime (provided.al2023 for Go binaries)
	Runtime string
	// Handler is the entrypoint (bootstrap for custom runtimes)
	Handler string
	// Code locates the deployment package
	Code Function_Code
	// Role is the execution role ARN
	Role any
	// MemorySize is the memory allocation in MB
	MemorySize int
	// Timeout is the invocation time budget in seconds
	Timeout int
	// Architectures selects the instruction set (arm64 or x86_64)
	Architectures []any
	// Environment holds environment variables
	Environment *Function_Environment
}

// ResourceType returns the CloudFormation type.
func (Function) ResourceType() string { return "AWS::Lambda::Function" }

// Function_Code is the Code property type.
// Either ZipFile (inline) or S3Bucket/S3Key (packaged) is set, never both.
type Function_Code struct {
	ZipFile  string
	S3Bucket any
	S3Key    any
}

// Function_Environment is the Environment property type.
type Function_Environment struct {
	Variables map[string]any
}

// Permission represents an AWS::Lambda::Permission resource.
// It grants another AWS service the right to invoke the function.
type Permission struct {
	// FunctionName is the function being invoked (name or ARN)
	FunctionName any
	// Action is the permitted action, normally lambda:InvokeFunction
	Action string
	// Principal is the invoking service (e.g. apigateway.amazonaws.com)
	Principal string
	// SourceArn restricts which resource of the principal may invoke
	SourceArn any
}

// ResourceType returns the CloudFormation type.
func (Permission) ResourceType() string { return "AWS::Lambda::Permission" }
