// Package apigateway provides AWS::ApiGateway resource types.
package apigateway

// RestApi represents an AWS::ApiGateway::RestApi resource.
type RestApi struct {
	// Name is the name of the REST API
	Name any
	// Description is optional documentation for the API
	Description string
	// EndpointConfiguration controls edge-optimized vs regional endpoints
	EndpointConfiguration *RestApi_EndpointConfiguration
}

// ResourceType returns the CloudFormation type.
func (RestApi) ResourceType() string { return "AWS::ApiGateway::RestApi" }

// RestApi_EndpointConfiguration is the EndpointConfiguration property type.
type RestApi_EndpointConfiguration struct {
	Types []any
}

// Resource represents an AWS::ApiGateway::Resource resource (a URL path part).
type Resource struct {
	// RestApiId is the REST API the path belongs to
	RestApiId any
	// ParentId is the parent resource, usually the API root resource
	ParentId any
	// PathPart is the final segment of the URL path
	PathPart string
}

// ResourceType returns the CloudFormation type.
func (Resource) ResourceType() string { return "AWS::ApiGateway::Resource" }

// Method represents an AWS::ApiGateway::Method resource.
type Method struct {
	// RestApiId is the REST API the method belongs to
	RestApiId any
	// ResourceId is the API resource (path) the method is attached to
	ResourceId any
	// HttpMethod is the HTTP verb (GET, POST, ...)
	HttpMethod string
	// AuthorizationType is the method authorizer (NONE for public endpoints)
	AuthorizationType string
	// Integration is the backend integration
	Integration Method_Integration
	// MethodResponses are the method-level response definitions
	MethodResponses []any
}

// ResourceType returns the CloudFormation type.
func (Method) ResourceType() string { return "AWS::ApiGateway::Method" }

// Method_Integration is the Integration property type.
type Method_Integration struct {
	// Type_ is the integration type (AWS_PROXY for Lambda proxy)
	Type_ string `json:"Type"`
	// IntegrationHttpMethod is the verb used to call the backend.
	// Lambda invocations are always POST regardless of the method verb.
	IntegrationHttpMethod string
	// Uri is the backend endpoint (Lambda invocation ARN path)
	Uri any
	// IntegrationResponses are backend response mappings
	IntegrationResponses []any
}

// Method_IntegrationResponse is the IntegrationResponse property type.
type Method_IntegrationResponse struct {
	StatusCode string
}

// Method_MethodResponse is the MethodResponse property type.
type Method_MethodResponse struct {
	StatusCode string
}

// Deployment represents an AWS::ApiGateway::Deployment resource.
type Deployment struct {
	// RestApiId is the REST API being deployed
	RestApiId any
	// StageName creates the stage the deployment is served from
	StageName string
	// Description is optional documentation for the deployment
	Description string
}

// ResourceType returns the CloudFormation type.
func (Deployment) ResourceType() string { return "AWS::ApiGateway::Deployment" }

// DomainName represents an AWS::ApiGateway::DomainName resource.
// Edge-optimized domains require the ACM certificate to live in us-east-1.
type DomainName struct {
	// DomainName is the fully qualified custom domain
	DomainName any
	// CertificateArn is the ACM certificate for an edge-optimized domain
	CertificateArn any
	// EndpointConfiguration controls edge-optimized vs regional endpoints
	EndpointConfiguration *DomainName_EndpointConfiguration
}

// ResourceType returns the CloudFormation type.
func (DomainName) ResourceType() string { return "AWS::ApiGateway::DomainName" }

// DomainName_EndpointConfiguration is the EndpointConfiguration property type.
type DomainName_EndpointConfiguration struct {
	Types []any
}

// BasePathMapping represents an AWS::ApiGateway::BasePathMapping resource.
// It connects a custom domain to a deployed API stage.
type BasePathMapping struct {
	// DomainName is the custom domain being mapped
	DomainName any
	// RestApiId is the REST API the domain maps to
	RestApiId any
	// Stage is the stage name the domain serves
	Stage any
	// BasePath is the path prefix under the domain (empty maps the root)
	BasePath string
}

// ResourceType returns the CloudFormation type.
func (BasePathMapping) ResourceType() string { return "AWS::ApiGateway::BasePathMapping" }
