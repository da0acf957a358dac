// Package logs provides AWS::Logs resource types.
package logs

// LogGroup represents an AWS::Logs::LogGroup resource.
type LogGroup struct {
	// LogGroupName is the log group name.
	// Lambda writes to /aws/lambda/<function-name>.
	LogGroupName any
	// RetentionInDays is how long log events are kept
	RetentionInDays int
}

// ResourceType returns the CloudFormation type.
func (LogGroup) ResourceType() string { return "AWS::Logs::LogGroup" }
