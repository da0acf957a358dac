// Package reportdomain declares the custom-domain CSP report ingest stack.
//
// This file contains API Gateway resources: REST API, the /report path,
// the POST method, and the deployment.
package reportdomain

import (
	. "github.com/chmreid/csp-report-lambda-cloudwatch/intrinsics"
	"github.com/chmreid/csp-report-lambda-cloudwatch/resources/apigateway"
)

// ----------------------------------------------------------------------------
// REST API
// ----------------------------------------------------------------------------

// ReportApi is the public REST API fronting the ingest function.
var ReportApi = apigateway.RestApi{
	Name:        Sub{String: "${AWS::StackName}-api"},
	Description: "Public endpoint for CSP violation reports",
}

// ----------------------------------------------------------------------------
// /report Path
// ----------------------------------------------------------------------------

// ReportResource creates the /report path on the REST API.
var ReportResource = apigateway.Resource{
	RestApiId: Ref{Name: "ReportApi"},
	ParentId:  GetAtt{Resource: "ReportApi", Attribute: "RootResourceId"},
	PathPart:  "report",
}

// ----------------------------------------------------------------------------
// POST Method
// ----------------------------------------------------------------------------

// ReportIntegration configures the Lambda proxy integration.
// Lambda invocations are always POST on the integration side.
var ReportIntegration = apigateway.Method_Integration{
	Type_:                 "AWS_PROXY",
	IntegrationHttpMethod: "POST",
	Uri: Join{
		Delimiter: "",
		Values: []any{
			"arn:aws:apigateway:",
			AWS_REGION,
			":lambda:path/2015-03-31/functions/",
			GetAtt{Resource: "ReportFunction", Attribute: "Arn"},
			"/invocations",
		},
	},
}

// ReportMethodResponse defines the 200 response for the method.
var ReportMethodResponse = apigateway.Method_MethodResponse{
	StatusCode: "200",
}

// ReportMethod accepts CSP reports: POST, no authorization. Browsers send
// reports without credentials, so the endpoint must be public.
var ReportMethod = apigateway.Method{
	RestApiId:         Ref{Name: "ReportApi"},
	ResourceId:        Ref{Name: "ReportResource"},
	HttpMethod:        "POST",
	AuthorizationType: "NONE",
	Integration:       ReportIntegration,
	MethodResponses:   Any(ReportMethodResponse),
}

// ----------------------------------------------------------------------------
// Deployment
// ----------------------------------------------------------------------------

// ApiDeployment deploys the REST API to the prod stage.
var ApiDeployment = apigateway.Deployment{
	RestApiId: Ref{Name: "ReportApi"},
	StageName: "prod",
}
