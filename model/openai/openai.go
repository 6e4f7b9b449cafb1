// Package openai provides an implementation of model.Model using the OpenAI
// Chat Completions API (including function/tool calling). It adapts the
// conversation history into the SDK's message format and decodes the first
// choice into a model.Turn.
package openai

import (
	"context"
	"encoding/json"

	"github.com/hupe1980/agentrun/core"
	"github.com/hupe1980/agentrun/model"
	"github.com/openai/openai-go"
)

// Options configure the OpenAI model adapter.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
}

// Model wraps the OpenAI Chat Completions API behind the generic model.Model interface.
type Model struct {
	client *openai.Client
	opts   Options
}

// NewModel creates a new OpenAI model using the official client
func NewModel(optFns ...func(o *Options)) *Model {
	client := openai.NewClient()
	return NewModelFromClient(&client, optFns...)
}

// NewModelFromClient creates a new OpenAI model from an existing client
func NewModelFromClient(client *openai.Client, optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts}
}

// Generate implements model.Model. It sends the full conversation plus tool
// declarations and maps the completion into a FinalAnswer or ToolCalls turn.
func (m *Model) Generate(ctx context.Context, conv *core.Context, tools []model.ToolDefinition) (model.Turn, error) {
	params := m.buildParams(conv, tools)

	resp, err := m.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, model.NewProviderError("openai", err)
	}
	if len(resp.Choices) == 0 {
		return nil, &model.MalformedResponseError{Provider: "openai", Reason: "no choices returned"}
	}

	msg := resp.Choices[0].Message
	if len(msg.ToolCalls) > 0 {
		calls := make([]core.ToolCall, 0, len(msg.ToolCalls))
		for _, tc := range msg.ToolCalls {
			calls = append(calls, core.ToolCall{
				ID:        tc.ID,
				Name:      tc.Function.Name,
				Arguments: json.RawMessage(tc.Function.Arguments),
			})
		}
		return model.ToolCalls{Content: msg.Content, Calls: calls}, nil
	}

	if msg.Content == "" {
		return nil, &model.MalformedResponseError{
			Provider: "openai",
			Reason:   "response carries neither answer text nor tool calls",
		}
	}

	return model.FinalAnswer{Text: msg.Content}, nil
}

// buildParams assembles the OpenAI request parameters including tool definitions.
func (m *Model) buildParams(conv *core.Context, tools []model.ToolDefinition) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Messages:            buildMessages(conv),
		Model:               m.opts.Model,
		Temperature:         openai.Float(m.opts.Temperature),
		MaxCompletionTokens: openai.Int(m.opts.MaxCompletionTokens),
	}
	if len(tools) == 0 {
		return params
	}
	oaiTools := make([]openai.ChatCompletionToolParam, len(tools))
	for i, tdef := range tools {
		oaiTools[i] = openai.ChatCompletionToolParam{
			Type: "function",
			Function: openai.FunctionDefinitionParam{
				Name:        tdef.Function.Name,
				Description: openai.String(tdef.Function.Description),
				Parameters:  tdef.Function.Parameters,
			},
		}
	}
	params.Tools = oaiTools
	return params
}

// buildMessages converts the conversation history into OpenAI chat messages.
// Tool-result messages already sit directly after their originating
// assistant tool-call message, so the mapping preserves order one to one.
func buildMessages(conv *core.Context) []openai.ChatCompletionMessageParamUnion {
	var messages []openai.ChatCompletionMessageParamUnion
	for _, msg := range conv.Messages() {
		switch msg.Role {
		case core.RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Content))
		case core.RoleAssistant:
			if len(msg.ToolCalls) == 0 {
				messages = append(messages, openai.AssistantMessage(msg.Content))
				continue
			}
			messages = append(messages, openai.ChatCompletionMessageParamUnion{
				OfAssistant: &openai.ChatCompletionAssistantMessageParam{
					Role:      "assistant",
					ToolCalls: extractToolCalls(msg),
				},
			})
		case core.RoleTool:
			messages = append(messages, openai.ToolMessage(msg.Content, msg.ToolCallID))
		default:
			// Treat unknown roles as user input.
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}
	return messages
}

// extractToolCalls renders a message's tool calls in OpenAI format.
func extractToolCalls(msg core.Message) []openai.ChatCompletionMessageToolCallParam {
	toolCalls := make([]openai.ChatCompletionMessageToolCallParam, 0, len(msg.ToolCalls))
	for _, tc := range msg.ToolCalls {
		toolCalls = append(toolCalls, openai.ChatCompletionMessageToolCallParam{
			ID:   tc.ID,
			Type: "function",
			Function: openai.ChatCompletionMessageToolCallFunctionParam{
				Name:      tc.Name,
				Arguments: string(tc.Arguments),
			},
		})
	}
	return toolCalls
}

// Info returns metadata describing this OpenAI model implementation.
func (m *Model) Info() model.Info {
	return model.Info{
		Name:          m.opts.Model,
		Provider:      "openai",
		SupportsTools: true,
	}
}
