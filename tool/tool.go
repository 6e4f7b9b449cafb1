// Package tool implements the function / tool calling subsystem that lets an
// agent invoke structured capabilities (APIs, computations, side effects)
// with schema validated arguments, consistent error handling and rich
// metadata for LLM guidance.
package tool

import (
	"fmt"

	"github.com/hupe1980/agentrun/internal/schema"
)

// Tool defines the interface for extending agent capabilities with external functions.
//
// Tools are registered with the agent builder to enable function calling,
// allowing the model to perform actions beyond text generation such as API
// calls, calculations, database queries, or any other programmatic operation.
//
// Tool implementations should:
//   - Provide clear, descriptive names and descriptions
//   - Define proper JSON schema for parameters
//   - Handle errors gracefully
//   - Be thread-safe if shared across concurrent runs
type Tool interface {
	// Name returns the unique identifier for this tool.
	// Names should be descriptive and follow function naming conventions (snake_case recommended).
	Name() string

	// Description returns a human-readable description of what this tool does.
	// This description is provided to the LLM to help it understand when and how to use the tool.
	Description() string

	// Parameters returns a JSON schema describing the expected input format.
	// This schema is used for parameter validation and LLM function calling.
	Parameters() map[string]any

	// Call executes the tool with structured arguments and the per-invocation
	// RunContext. Arguments are parsed from JSON and validated against the
	// tool's schema before execution.
	Call(rc *RunContext, args map[string]any) (any, error)
}

// Error codes used to categorize tool failures. All of them are recoverable
// at the agent-loop level: the loop converts them into a tool-result message
// carrying the error text so the model can react in its next turn.
const (
	// CodeNotFound is raised by the registry when the requested name has no
	// registered tool.
	CodeNotFound = "NOT_FOUND"
	// CodeValidation marks an argument payload that does not match the
	// declared schema.
	CodeValidation = "VALIDATION_ERROR"
	// CodeExecution marks a domain failure inside the tool implementation.
	CodeExecution = "EXECUTION_ERROR"
)

// ValidationError represents parameter validation errors with detailed information.
type ValidationError = schema.ValidationError

// Error represents errors that occur during tool resolution or execution.
type Error struct {
	Tool    string `json:"tool"`              // Name of the tool that failed
	Message string `json:"message"`           // Error message
	Code    string `json:"code"`              // Error code for categorization
	Details any    `json:"details,omitempty"` // Additional error details
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewError creates a new Error with the specified details.
func NewError(tool, message, code string) *Error {
	return &Error{Tool: tool, Message: message, Code: code}
}
