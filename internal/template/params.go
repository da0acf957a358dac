package template

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadParams reads a YAML file of parameter name → default value overrides.
//
// Example params file:
//
//	ReportDomainName: csp.example.com
//	CertificateArn: arn:aws:acm:us-east-1:123456789012:certificate/abc
//	HostedZoneId: Z0000000EXAMPLE
func LoadParams(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading params file: %w", err)
	}

	params := make(map[string]any)
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("parsing params file %s: %w", path, err)
	}

	return params, nil
}
