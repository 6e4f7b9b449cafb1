package model

import (
	"context"
	"sync"

	"github.com/hupe1980/agentrun/core"
)

// ScriptedModel is a lightweight in-memory Model useful for tests and
// examples. It replays a fixed sequence of turns (or errors) regardless of
// conversation content, popping one step per Generate call.
type ScriptedModel struct {
	mu    sync.Mutex
	info  Info
	steps []scriptedStep
}

type scriptedStep struct {
	turn Turn
	err  error
}

// NewScriptedModel constructs an empty ScriptedModel with tool support enabled.
func NewScriptedModel(name string) *ScriptedModel {
	return &ScriptedModel{
		info: Info{Name: name, Provider: "scripted", SupportsTools: true},
	}
}

// AddTurn appends a turn to the script.
func (m *ScriptedModel) AddTurn(t Turn) *ScriptedModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps = append(m.steps, scriptedStep{turn: t})
	return m
}

// AddFinalAnswer appends a FinalAnswer turn to the script.
func (m *ScriptedModel) AddFinalAnswer(text string) *ScriptedModel {
	return m.AddTurn(FinalAnswer{Text: text})
}

// AddToolCalls appends a ToolCalls turn to the script.
func (m *ScriptedModel) AddToolCalls(calls ...core.ToolCall) *ScriptedModel {
	return m.AddTurn(ToolCalls{Calls: calls})
}

// AddError appends a failing step to the script.
func (m *ScriptedModel) AddError(err error) *ScriptedModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps = append(m.steps, scriptedStep{err: err})
	return m
}

// Remaining reports how many scripted steps have not been consumed yet.
func (m *ScriptedModel) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.steps)
}

// Generate implements Model by consuming the next scripted step. An
// exhausted script yields a MalformedResponseError so a misconfigured test
// fails loudly instead of looping.
func (m *ScriptedModel) Generate(ctx context.Context, _ *core.Context, _ []ToolDefinition) (Turn, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewProviderError(m.info.Provider, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.steps) == 0 {
		return nil, &MalformedResponseError{Provider: m.info.Provider, Reason: "script exhausted"}
	}

	step := m.steps[0]
	m.steps = m.steps[1:]

	if step.err != nil {
		return nil, step.err
	}
	return step.turn, nil
}

// Info implements Model.
func (m *ScriptedModel) Info() Info { return m.info }

// Func adapts a plain function to the Model interface. Handy for stateless
// test doubles that inspect the conversation to decide their next turn.
type Func func(ctx context.Context, conv *core.Context, tools []ToolDefinition) (Turn, error)

// Generate implements Model by calling the function itself.
func (f Func) Generate(ctx context.Context, conv *core.Context, tools []ToolDefinition) (Turn, error) {
	return f(ctx, conv, tools)
}

// Info implements Model.
func (f Func) Info() Info {
	return Info{Name: "func", Provider: "func", SupportsTools: true}
}
