package tool

import (
	"fmt"

	"github.com/hupe1980/agentrun/model"
)

// Registry maps tool names to tool instances. It is populated at build time
// and treated as immutable thereafter, so lookups during a run need no
// locking. Duplicate registration under the same name is a build-time error,
// not a runtime one.
type Registry struct {
	names []string // registration order, kept stable for Definitions()
	tools map[string]Tool
}

// NewRegistry constructs a registry from the given tools. It fails on empty
// or duplicate tool names.
func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a tool to the registry. Intended for use during construction
// only; a registry must not be mutated once runs are started against it.
func (r *Registry) Register(t Tool) error {
	if t == nil {
		return fmt.Errorf("tool must not be nil")
	}
	name := t.Name()
	if name == "" {
		return fmt.Errorf("tool name must not be empty")
	}
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("duplicate tool name %q", name)
	}
	r.tools[name] = t
	r.names = append(r.names, name)
	return nil
}

// Resolve returns the tool registered under name, or a NOT_FOUND *Error.
func (r *Registry) Resolve(name string) (Tool, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, NewError(name, fmt.Sprintf("no tool registered under name %q", name), CodeNotFound)
	}
	return t, nil
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.tools) }

// Definitions renders the registered tools as model-facing tool
// declarations, in registration order.
func (r *Registry) Definitions() []model.ToolDefinition {
	defs := make([]model.ToolDefinition, 0, len(r.names))
	for _, name := range r.names {
		t := r.tools[name]
		defs = append(defs, model.ToolDefinition{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			},
		})
	}
	return defs
}
