package model

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentrun/core"
)

// ToolDefinition declaratively exposes a callable tool to the model.
type ToolDefinition struct {
	Type     string             `json:"type"` // "function"
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition describes an individual function (tool) exposed to the model.
// Parameters is a JSON Schema object (draft agnostic, minimal subset expected).
type FunctionDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"` // JSON Schema
}

// Info contains metadata about a model implementation.
type Info struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"` // "openai", "anthropic", "scripted", etc.
	SupportsTools bool   `json:"supports_tools"`
}

// Turn is the tagged outcome of one model call: either a final textual
// answer or an ordered batch of tool calls. Concrete turn types implement
// the unexported isTurn marker enabling a closed set, so the agent loop's
// control flow is a simple two-way branch.
type Turn interface{ isTurn() }

// FinalAnswer terminates a run with the model's answer text.
type FinalAnswer struct {
	Text string
}

func (FinalAnswer) isTurn() {}

// ToolCalls requests execution of one or more tools. Call order is the
// order the model emitted them and must be preserved by the executor.
type ToolCalls struct {
	Content string // Optional assistant text accompanying the calls
	Calls   []core.ToolCall
}

func (ToolCalls) isTurn() {}

// Model is the interface a language model backend must implement to drive
// an agent run. Generate receives exclusive access to the run's Context and
// the declared tool set, and returns the model's next Turn.
//
// Implementations must treat the Context as read-only: folding results back
// into the conversation is the agent loop's job.
type Model interface {
	Generate(ctx context.Context, conv *core.Context, tools []ToolDefinition) (Turn, error)

	// Info returns information about the model implementation.
	Info() Info
}

// ProviderError wraps a network / backend failure from a concrete provider.
// It is fatal to the current run and surfaced to the caller unmodified; the
// orchestrator does not retry.
type ProviderError struct {
	Provider string
	Err      error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("model provider %s failed: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying backend error.
func (e *ProviderError) Unwrap() error { return e.Err }

// NewProviderError wraps err as a ProviderError for the named provider.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// MalformedResponseError indicates the backend returned something the
// abstraction cannot express as a Turn: neither answer text nor tool calls,
// or tool arguments that are not decodable. Fatal to the current run.
type MalformedResponseError struct {
	Provider string
	Reason   string
}

// Error implements the error interface.
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("model provider %s returned a malformed response: %s", e.Provider, e.Reason)
}
