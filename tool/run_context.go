package tool

import (
	"context"

	"github.com/hupe1980/agentrun/core"
	"github.com/hupe1980/agentrun/logging"
)

// RunContext is the per-invocation handle passed to a tool's Call method.
// It gives the tool exclusive access to the run's conversation state and
// scratch data, the call identifier that correlates the eventual result back
// into the conversation, and a structured logger.
//
// A RunContext is created by the agent loop for exactly one tool invocation
// and must not be retained past Call.
type RunContext struct {
	ctx    context.Context
	conv   *core.Context
	callID string
	logger logging.Logger
}

// NewRunContext constructs a RunContext for one tool invocation.
func NewRunContext(ctx context.Context, conv *core.Context, callID string, logger logging.Logger) *RunContext {
	if ctx == nil {
		ctx = context.Background()
	}
	if conv == nil {
		conv = core.NewContext()
	}
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &RunContext{ctx: ctx, conv: conv, callID: callID, logger: logger}
}

// Context returns the cancellation context of the surrounding run. Tools
// performing I/O should thread it through their blocking calls.
func (rc *RunContext) Context() context.Context { return rc.ctx }

// Conversation returns the run's Context (message history + scratch data).
func (rc *RunContext) Conversation() *core.Context { return rc.conv }

// CallID returns the identifier of the tool call being executed.
func (rc *RunContext) CallID() string { return rc.callID }

// Logger returns a non-nil structured logger.
func (rc *RunContext) Logger() logging.Logger { return rc.logger }

// Get reads a value from the run's shared scratch data.
func (rc *RunContext) Get(key string) (core.Value, bool) { return rc.conv.Get(key) }

// Set writes a value to the run's shared scratch data.
func (rc *RunContext) Set(key string, v core.Value) { rc.conv.Set(key, v) }
