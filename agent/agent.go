package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/hupe1980/agentrun/core"
	"github.com/hupe1980/agentrun/logging"
	"github.com/hupe1980/agentrun/model"
	"github.com/hupe1980/agentrun/tool"
)

// Agent is an immutable configuration plus the orchestration behavior. Once
// built, its name, instructions, model and registered tool set do not
// change; concurrency safety for a running agent derives entirely from this
// immutability plus exclusive access to the per-run Context.
type Agent struct {
	name         string
	instructions string
	llm          model.Model
	registry     *tool.Registry
	maxTurns     int
	logger       logging.Logger
}

// Name returns the agent's name.
func (a *Agent) Name() string { return a.name }

// Instructions returns the instruction preamble.
func (a *Agent) Instructions() string { return a.instructions }

// Model returns the configured language model.
func (a *Agent) Model() model.Model { return a.llm }

// Tools returns the registered tool names in registration order.
func (a *Agent) Tools() []string { return a.registry.Names() }

// MaxTurns returns the configured turn cap.
func (a *Agent) MaxTurns() int { return a.maxTurns }

// Run executes the agent loop for one task until the model produces a final
// answer. A nil conv starts from an empty Context; a pre-populated one is
// extended in place. The Context is owned by this run for its duration and
// handed back (mutated) to the caller afterwards; nothing is persisted
// internally.
//
// Tool failures (unknown tool, invalid arguments, execution errors, panics)
// are folded into the conversation as tool-result messages so the model can
// adapt. Model failures, cancellation and the turn cap abort the run with a
// *RunError.
func (a *Agent) Run(ctx context.Context, task string, conv *core.Context) (string, error) {
	if conv == nil {
		conv = core.NewContext()
	}

	runID := core.NewID()
	a.logger.Info("agent.run.start", "agent", a.name, "run_id", runID)

	if a.instructions != "" {
		conv.AppendMessage(core.NewSystemMessage(a.instructions))
	}
	conv.AppendMessage(core.NewUserMessage(task))

	defs := a.registry.Definitions()
	start := time.Now()

	for turnNum := 1; turnNum <= a.maxTurns; turnNum++ {
		if err := ctx.Err(); err != nil {
			return "", a.fatal(runID, err)
		}

		a.logger.Debug("agent.model.call", "agent", a.name, "run_id", runID, "turn", turnNum)

		turn, err := a.llm.Generate(ctx, conv, defs)
		if err != nil {
			return "", a.fatal(runID, err)
		}

		switch tr := turn.(type) {
		case model.FinalAnswer:
			conv.AppendMessage(core.NewAssistantMessage(tr.Text))
			a.logger.Info(
				"agent.run.complete",
				"agent", a.name,
				"run_id", runID,
				"turns", turnNum,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return tr.Text, nil

		case model.ToolCalls:
			if len(tr.Calls) == 0 {
				return "", a.fatal(runID, &model.MalformedResponseError{
					Provider: a.llm.Info().Provider,
					Reason:   "empty tool call batch",
				})
			}

			calls := ensureCallIDs(tr.Calls)
			conv.AppendMessage(core.NewToolCallMessage(tr.Content, calls))

			// Strictly sequential, in request order: later calls may depend
			// on conversation state or scratch data written by earlier ones.
			for _, call := range calls {
				if err := ctx.Err(); err != nil {
					return "", a.fatal(runID, err)
				}

				res := a.executeCall(ctx, conv, runID, call)

				// A result observed after cancellation is not folded in;
				// Context must never record a half-applied turn.
				if err := ctx.Err(); err != nil {
					return "", a.fatal(runID, err)
				}

				conv.AppendMessage(core.NewToolResultMessage(res))
			}

		default:
			return "", a.fatal(runID, &model.MalformedResponseError{
				Provider: a.llm.Info().Provider,
				Reason:   fmt.Sprintf("unexpected turn type %T", turn),
			})
		}
	}

	return "", a.fatal(runID, ErrMaxTurnsExceeded)
}

// executeCall resolves and runs a single tool call, converting every failure
// mode (missing tool, invalid arguments, execution error, panic) into an
// error-carrying ToolResult instead of aborting the run.
func (a *Agent) executeCall(ctx context.Context, conv *core.Context, runID string, call core.ToolCall) core.ToolResult {
	impl, err := a.registry.Resolve(call.Name)
	if err != nil {
		a.logger.Warn("agent.tool.not_found", "agent", a.name, "run_id", runID, "tool", call.Name)
		return errorResult(call, err)
	}

	args, err := decodeArgs(call.Name, call.Arguments)
	if err != nil {
		a.logger.Warn("agent.tool.bad_arguments", "agent", a.name, "run_id", runID, "tool", call.Name, "error", err.Error())
		return errorResult(call, err)
	}

	rc := tool.NewRunContext(ctx, conv, call.ID, a.logger)
	execStart := time.Now()

	var result any
	func() { // panic safety
		defer func() {
			if r := recover(); r != nil {
				err = tool.NewError(call.Name, fmt.Sprintf("panic: %v", r), tool.CodeExecution)
				a.logger.Error("agent.tool.panic", "agent", a.name, "run_id", runID, "tool", call.Name, "recover", r)
			}
		}()
		result, err = impl.Call(rc, args)
	}()

	a.logger.Info(
		"agent.tool.executed",
		"agent", a.name,
		"run_id", runID,
		"tool", call.Name,
		"call_id", call.ID,
		"duration_ms", time.Since(execStart).Milliseconds(),
		"error", err != nil,
	)

	if err != nil {
		return errorResult(call, err)
	}

	return core.ToolResult{ID: call.ID, Name: call.Name, Output: renderOutput(result)}
}

// fatal wraps err as the run's terminal error.
func (a *Agent) fatal(runID string, err error) error {
	a.logger.Error("agent.run.failed", "agent", a.name, "run_id", runID, "error", err.Error())
	return &RunError{Agent: a.name, Err: err}
}

// ensureCallIDs assigns correlation IDs to calls whose backend omitted them.
func ensureCallIDs(calls []core.ToolCall) []core.ToolCall {
	out := make([]core.ToolCall, len(calls))
	copy(out, calls)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = core.NewID()
		}
	}
	return out
}

// decodeArgs parses the raw argument payload into the map shape tools
// consume. An empty payload means no arguments.
func decodeArgs(toolName string, raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, tool.NewError(toolName, fmt.Sprintf("failed to decode arguments: %v", err), tool.CodeValidation)
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

// errorResult converts a tool failure into its conversation-content form.
func errorResult(call core.ToolCall, err error) core.ToolResult {
	return core.ToolResult{ID: call.ID, Name: call.Name, Output: err.Error(), IsError: true}
}

// renderOutput converts a tool's return value into the textual form folded
// into the conversation.
func renderOutput(result any) string {
	switch v := result.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		if raw, err := json.Marshal(v); err == nil {
			return string(raw)
		}
		return fmt.Sprintf("%v", v)
	}
}
