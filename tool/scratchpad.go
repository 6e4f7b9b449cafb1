package tool

import (
	"fmt"
	"strings"

	"github.com/hupe1980/agentrun/core"
)

// ScratchpadTool lets the model read and write the run's shared scratch
// data. Later tool calls within the same turn observe values written by
// earlier ones, which is one reason tool execution is strictly sequential.
type ScratchpadTool struct {
	name        string
	description string
}

// NewScratchpadTool creates the built-in scratch data tool.
//
// Supported operations:
//   - get: read the value stored under a key
//   - set: store a value under a key
//   - delete: remove a key
//   - list: list all stored keys
func NewScratchpadTool() *ScratchpadTool {
	return &ScratchpadTool{
		name: "scratchpad",
		description: "Read and write shared key/value data scoped to the current run. " +
			"Supports operations: get, set, delete, list.",
	}
}

// Name returns the tool identifier.
func (t *ScratchpadTool) Name() string { return t.name }

// Description returns the tool description.
func (t *ScratchpadTool) Description() string { return t.description }

// Parameters returns the JSON schema for tool parameters.
func (t *ScratchpadTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"operation": map[string]any{
				"type":        "string",
				"enum":        []string{"get", "set", "delete", "list"},
				"description": "The scratchpad operation to perform",
			},
			"key": map[string]any{
				"type":        "string",
				"description": "Key for get/set/delete operations",
			},
			"value": map[string]any{
				"description": "Value for set operations (string, number, boolean, list or object)",
			},
		},
		"required": []string{"operation"},
	}
}

// Call executes the requested scratchpad operation.
func (t *ScratchpadTool) Call(rc *RunContext, args map[string]any) (any, error) {
	op, _ := args["operation"].(string)

	switch op {
	case "get":
		key, err := t.requireKey(args)
		if err != nil {
			return nil, err
		}
		v, ok := rc.Get(key)
		if !ok {
			return nil, NewError(t.name, fmt.Sprintf("no value stored under key %q", key), CodeExecution)
		}
		return v.Unwrap(), nil

	case "set":
		key, err := t.requireKey(args)
		if err != nil {
			return nil, err
		}
		raw, ok := args["value"]
		if !ok {
			return nil, NewError(t.name, "set requires a value", CodeValidation)
		}
		v, err := core.ValueOf(raw)
		if err != nil {
			return nil, NewError(t.name, err.Error(), CodeValidation)
		}
		rc.Set(key, v)
		return fmt.Sprintf("stored value under key %q", key), nil

	case "delete":
		key, err := t.requireKey(args)
		if err != nil {
			return nil, err
		}
		if !rc.Conversation().Delete(key) {
			return nil, NewError(t.name, fmt.Sprintf("no value stored under key %q", key), CodeExecution)
		}
		return fmt.Sprintf("deleted key %q", key), nil

	case "list":
		keys := rc.Conversation().Keys()
		if len(keys) == 0 {
			return "no keys stored", nil
		}
		return strings.Join(keys, ", "), nil

	default:
		return nil, NewError(t.name, fmt.Sprintf("unsupported operation %q", op), CodeValidation)
	}
}

func (t *ScratchpadTool) requireKey(args map[string]any) (string, error) {
	key, _ := args["key"].(string)
	if key == "" {
		return "", NewError(t.name, "operation requires a key", CodeValidation)
	}
	return key, nil
}
