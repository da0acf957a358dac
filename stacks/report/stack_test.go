package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cspreport "github.com/chmreid/csp-report-lambda-cloudwatch"
	"github.com/chmreid/csp-report-lambda-cloudwatch/internal/template"
)

func TestNew_Builds(t *testing.T) {
	tmpl, err := New().Build()
	require.NoError(t, err)

	assert.Len(t, tmpl.Resources, 8)
	assert.Equal(t, "AWS::ApiGateway::RestApi", tmpl.Resources["ReportApi"].Type)
	assert.Equal(t, "AWS::Lambda::Function", tmpl.Resources["ReportFunction"].Type)
	assert.Equal(t, "AWS::IAM::Role", tmpl.Resources["ExecutionRole"].Type)
	assert.Equal(t, "AWS::Logs::LogGroup", tmpl.Resources["ReportLogGroup"].Type)
}

func TestNew_NoDomainResources(t *testing.T) {
	tmpl, err := New().Build()
	require.NoError(t, err)

	for name, res := range tmpl.Resources {
		assert.NotEqual(t, "AWS::ApiGateway::DomainName", res.Type, "unexpected resource %s", name)
		assert.NotEqual(t, "AWS::Route53::RecordSet", res.Type, "unexpected resource %s", name)
	}
}

func TestNew_MethodIsPublicPost(t *testing.T) {
	tmpl, err := New().Build()
	require.NoError(t, err)

	method := tmpl.Resources["ReportMethod"].Properties
	assert.Equal(t, "POST", method["HttpMethod"])
	assert.Equal(t, "NONE", method["AuthorizationType"])

	integration := method["Integration"].(map[string]any)
	assert.Equal(t, "AWS_PROXY", integration["Type"])
}

func TestNew_LogRetention(t *testing.T) {
	tmpl, err := New().Build()
	require.NoError(t, err)

	group := tmpl.Resources["ReportLogGroup"].Properties
	assert.Equal(t, int64(90), group["RetentionInDays"])
}

func TestNew_DeploymentWaitsForMethod(t *testing.T) {
	tmpl, err := New().Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"ReportMethod"}, tmpl.Resources["ApiDeployment"].DependsOn)
}

func TestNew_FunctionDependsOnRole(t *testing.T) {
	deps, err := New().Dependencies()
	require.NoError(t, err)

	assert.Contains(t, deps["ReportFunction"], "ExecutionRole")
}

func TestNew_DeterministicJSON(t *testing.T) {
	first, err := template.ToJSON(mustBuild(t))
	require.NoError(t, err)
	second, err := template.ToJSON(mustBuild(t))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func mustBuild(t *testing.T) *cspreport.Template {
	t.Helper()
	tmpl, err := New().Build()
	require.NoError(t, err)
	return tmpl
}
