package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chmreid/csp-report-lambda-cloudwatch/internal/template"
	"github.com/chmreid/csp-report-lambda-cloudwatch/stacks/report"
	"github.com/chmreid/csp-report-lambda-cloudwatch/stacks/reportdomain"
)

// stackRegistry maps stack names to their builder constructors. Every
// subcommand that takes a stack argument resolves it here.
var stackRegistry = map[string]func() *template.Builder{
	report.StackName:       report.New,
	reportdomain.StackName: reportdomain.New,
}

// stackNames returns the registered stack names, sorted.
func stackNames() []string {
	names := make([]string, 0, len(stackRegistry))
	for name := range stackRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookupStack resolves a stack name to its builder.
func lookupStack(name string) (*template.Builder, error) {
	factory, ok := stackRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown stack %q (available: %s)", name, strings.Join(stackNames(), ", "))
	}
	return factory(), nil
}
