package core

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Conversation roles. A run only ever appends messages with one of these
// role tags; unknown roles are treated as user input by provider adapters.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolCall describes a single tool invocation requested by the model.
// Unified across vendors so downstream logic does not need per-provider
// branching.
type ToolCall struct {
	ID        string          `json:"id,omitempty"`        // Correlates the eventual result back into the conversation
	Name      string          `json:"name"`                // Target tool name
	Arguments json.RawMessage `json:"arguments,omitempty"` // Raw JSON argument payload
}

// ToolResult captures the outcome of executing one ToolCall. It is folded
// into the conversation as a tool message immediately after execution.
type ToolResult struct {
	ID      string `json:"id,omitempty"` // Matches the originating ToolCall ID
	Name    string `json:"name"`         // Tool name
	Output  string `json:"output"`       // Rendered output (error text when IsError)
	IsError bool   `json:"is_error,omitempty"`
}

// Message is a single entry in the conversation history. Assistant messages
// may carry tool calls; tool messages carry the correlation fields of the
// result they record. Messages are treated as immutable once appended.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	ToolName   string     `json:"tool_name,omitempty"`
	IsError    bool       `json:"is_error,omitempty"`
}

// NewSystemMessage creates a system-role message (instruction preamble).
func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// NewUserMessage creates a user-role message (the caller's task).
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates a plain assistant text message.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// NewToolCallMessage creates the assistant message recording the tool calls
// requested in one model turn, preserving their original order.
func NewToolCallMessage(content string, calls []ToolCall) Message {
	return Message{Role: RoleAssistant, Content: content, ToolCalls: calls}
}

// NewToolResultMessage converts a ToolResult into its tool-role message.
func NewToolResultMessage(res ToolResult) Message {
	return Message{
		Role:       RoleTool,
		Content:    res.Output,
		ToolCallID: res.ID,
		ToolName:   res.Name,
		IsError:    res.IsError,
	}
}

// GetToolCalls returns the tool calls carried by the message in their
// original order, or nil for messages without calls.
func (m Message) GetToolCalls() []ToolCall {
	if len(m.ToolCalls) == 0 {
		return nil
	}
	calls := make([]ToolCall, len(m.ToolCalls))
	copy(calls, m.ToolCalls)
	return calls
}

// NewID generates a unique identifier for tool calls and runs.
func NewID() string { return uuid.NewString() }
