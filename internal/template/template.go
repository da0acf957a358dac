// Package template builds CloudFormation templates from registered resources.
package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	cspreport "github.com/chmreid/csp-report-lambda-cloudwatch"
	"github.com/chmreid/csp-report-lambda-cloudwatch/internal/serialize"
	"github.com/chmreid/csp-report-lambda-cloudwatch/intrinsics"
)

// Builder constructs a CloudFormation template from registered resources.
// Registration order does not matter: output is deterministic for a given
// set of resources, parameters, and outputs.
type Builder struct {
	name        string
	description string
	resources   map[string]resourceEntry
	parameters  map[string]intrinsics.Parameter
	outputs     map[string]intrinsics.Output
}

type resourceEntry struct {
	resource  cspreport.Resource
	dependsOn []string
}

// NewBuilder creates a template builder for the named stack.
func NewBuilder(name, description string) *Builder {
	return &Builder{
		name:        name,
		description: description,
		resources:   make(map[string]resourceEntry),
		parameters:  make(map[string]intrinsics.Parameter),
		outputs:     make(map[string]intrinsics.Output),
	}
}

// Name returns the stack name.
func (b *Builder) Name() string { return b.name }

// Description returns the stack description.
func (b *Builder) Description() string { return b.description }

// AddResource registers a resource under its logical name.
// Explicit dependsOn names cover ordering CloudFormation cannot infer from
// references, such as a Deployment waiting for its Methods.
func (b *Builder) AddResource(name string, r cspreport.Resource, dependsOn ...string) {
	deps := append([]string(nil), dependsOn...)
	sort.Strings(deps)
	b.resources[name] = resourceEntry{resource: r, dependsOn: deps}
}

// AddParameter registers a template parameter under its declared name.
func (b *Builder) AddParameter(p intrinsics.Parameter) {
	b.parameters[p.Name] = p
}

// AddOutput registers a stack output under its logical name.
func (b *Builder) AddOutput(name string, o intrinsics.Output) {
	b.outputs[name] = o
}

// SetParameterDefaults overrides parameter defaults, typically from a params
// file. Unknown parameter names are an error.
func (b *Builder) SetParameterDefaults(overrides map[string]any) error {
	for name, value := range overrides {
		p, ok := b.parameters[name]
		if !ok {
			return fmt.Errorf("unknown parameter %q (stack %s declares: %s)",
				name, b.name, strings.Join(b.parameterNames(), ", "))
		}
		p.Default = value
		b.parameters[name] = p
	}
	return nil
}

func (b *Builder) parameterNames() []string {
	names := make([]string, 0, len(b.parameters))
	for name := range b.parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResourceNames returns the registered logical names, sorted.
func (b *Builder) ResourceNames() []string {
	names := make([]string, 0, len(b.resources))
	for name := range b.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResourceTypes returns logical name → CloudFormation type for all resources.
func (b *Builder) ResourceTypes() map[string]string {
	types := make(map[string]string, len(b.resources))
	for name, entry := range b.resources {
		types[name] = entry.resource.ResourceType()
	}
	return types
}

// Build constructs the CloudFormation template.
func (b *Builder) Build() (*cspreport.Template, error) {
	serialized := make(map[string]map[string]any, len(b.resources))
	deps := make(map[string][]string, len(b.resources))

	for name, entry := range b.resources {
		props, err := serialize.Properties(entry.resource)
		if err != nil {
			return nil, fmt.Errorf("serializing %s: %w", name, err)
		}
		serialized[name] = props

		refs := collectRefs(props)
		if err := b.checkRefs(name, refs); err != nil {
			return nil, err
		}

		var resourceDeps []string
		seen := make(map[string]bool)
		for _, ref := range append(refs, entry.dependsOn...) {
			if _, isResource := b.resources[ref]; isResource && !seen[ref] {
				seen[ref] = true
				resourceDeps = append(resourceDeps, ref)
			}
		}
		sort.Strings(resourceDeps)
		deps[name] = resourceDeps
	}

	// Reject cycles before emitting anything.
	if _, err := topologicalSort(deps); err != nil {
		return nil, err
	}

	tmpl := &cspreport.Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Description:              b.description,
		Resources:                make(map[string]cspreport.ResourceDef, len(b.resources)),
	}

	for name, entry := range b.resources {
		tmpl.Resources[name] = cspreport.ResourceDef{
			Type:       entry.resource.ResourceType(),
			Properties: serialized[name],
			DependsOn:  entry.dependsOn,
		}
	}

	if len(b.parameters) > 0 {
		tmpl.Parameters = make(map[string]any, len(b.parameters))
		for name, p := range b.parameters {
			tmpl.Parameters[name] = p.ToDefinition()
		}
	}

	if len(b.outputs) > 0 {
		tmpl.Outputs = make(map[string]any, len(b.outputs))
		for name, o := range b.outputs {
			def, err := normalize(o.ToDefinition())
			if err != nil {
				return nil, fmt.Errorf("serializing output %s: %w", name, err)
			}
			tmpl.Outputs[name] = def
		}
	}

	return tmpl, nil
}

// Dependencies returns logical name → referenced resource names, derived
// from Ref/Fn::GetAtt occurrences plus explicit DependsOn. Used by the
// graph command.
func (b *Builder) Dependencies() (map[string][]string, error) {
	deps := make(map[string][]string, len(b.resources))
	for name, entry := range b.resources {
		props, err := serialize.Properties(entry.resource)
		if err != nil {
			return nil, fmt.Errorf("serializing %s: %w", name, err)
		}

		var resourceDeps []string
		seen := make(map[string]bool)
		for _, ref := range append(collectRefs(props), entry.dependsOn...) {
			if _, isResource := b.resources[ref]; isResource && !seen[ref] {
				seen[ref] = true
				resourceDeps = append(resourceDeps, ref)
			}
		}
		sort.Strings(resourceDeps)
		deps[name] = resourceDeps
	}
	return deps, nil
}

// checkRefs verifies every Ref/GetAtt target is a registered resource, a
// declared parameter, or a pseudo-parameter.
func (b *Builder) checkRefs(name string, refs []string) error {
	for _, ref := range refs {
		if strings.HasPrefix(ref, "AWS::") {
			continue
		}
		_, isResource := b.resources[ref]
		_, isParameter := b.parameters[ref]
		if !isResource && !isParameter {
			return fmt.Errorf("resource %s references undeclared name %q", name, ref)
		}
	}
	return nil
}

// collectRefs walks serialized properties and gathers Ref and Fn::GetAtt
// target names.
func collectRefs(v any) []string {
	var refs []string
	walkRefs(v, &refs)
	return refs
}

func walkRefs(v any, refs *[]string) {
	switch val := v.(type) {
	case map[string]any:
		if ref, ok := val["Ref"].(string); ok && len(val) == 1 {
			*refs = append(*refs, ref)
			return
		}
		if att, ok := val["Fn::GetAtt"].([]any); ok && len(val) == 1 && len(att) > 0 {
			if name, ok := att[0].(string); ok {
				*refs = append(*refs, name)
			}
			return
		}
		for _, child := range val {
			walkRefs(child, refs)
		}
	case []any:
		for _, child := range val {
			walkRefs(child, refs)
		}
	}
}

// topologicalSort orders resources so dependencies come first.
// Kahn's algorithm with sorted tie-breaking for determinism.
func topologicalSort(deps map[string][]string) ([]string, error) {
	graph := make(map[string][]string)
	inDegree := make(map[string]int)

	for name := range deps {
		graph[name] = nil
		inDegree[name] = 0
	}

	for name, resourceDeps := range deps {
		for _, dep := range resourceDeps {
			if _, exists := deps[dep]; exists {
				graph[dep] = append(graph[dep], name)
				inDegree[name]++
			}
		}
	}

	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	var result []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, neighbor := range graph[node] {
			inDegree[neighbor]--
			if inDegree[neighbor] == 0 {
				queue = append(queue, neighbor)
				sort.Strings(queue)
			}
		}
	}

	if len(result) != len(deps) {
		return nil, cycleError(deps)
	}

	return result, nil
}

// cycleError finds and reports a cycle in the dependency graph.
func cycleError(deps map[string][]string) error {
	visited := make(map[string]bool)
	path := make(map[string]bool)

	var cycle []string
	var findCycle func(node string) bool
	findCycle = func(node string) bool {
		visited[node] = true
		path[node] = true

		for _, dep := range deps[node] {
			if _, exists := deps[dep]; !exists {
				continue
			}
			if !visited[dep] {
				if findCycle(dep) {
					cycle = append([]string{node}, cycle...)
					return true
				}
			} else if path[dep] {
				cycle = append([]string{dep, node}, cycle...)
				return true
			}
		}

		path[node] = false
		return false
	}

	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !visited[name] {
			if findCycle(name) {
				break
			}
		}
	}

	if len(cycle) > 0 {
		return fmt.Errorf("circular dependency detected: %s", strings.Join(cycle, " → "))
	}
	return errors.New("circular dependency detected")
}

// normalize converts a value containing intrinsic structs to plain maps,
// slices, and scalars so both JSON and YAML rendering see the same shape.
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ToJSON serializes the template to indented JSON with sorted keys.
func ToJSON(t *cspreport.Template) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// ToYAML serializes the template to YAML.
func ToYAML(t *cspreport.Template) ([]byte, error) {
	return yaml.Marshal(t)
}
