package agent

import (
	"github.com/hupe1980/agentrun/logging"
	"github.com/hupe1980/agentrun/model"
	"github.com/hupe1980/agentrun/tool"
)

// DefaultMaxTurns bounds a run when the caller does not configure a cap. A
// turn is one model call plus the execution of the tool calls it requested.
const DefaultMaxTurns = 10

// Builder accumulates agent configuration and validates it in Build. All
// run-time invariants of the Agent (unique tool names, non-nil model,
// bounded loop) are established here, once.
type Builder struct {
	name         string
	instructions string
	llm          model.Model
	tools        []tool.Tool
	maxTurns     int
	logger       logging.Logger
}

// New starts building an agent with the given name.
func New(name string) *Builder {
	return &Builder{name: name}
}

// Instructions sets the instruction preamble seeded as the system message of
// every run.
func (b *Builder) Instructions(instructions string) *Builder {
	b.instructions = instructions
	return b
}

// Model sets the language model backend. Required.
func (b *Builder) Model(m model.Model) *Builder {
	b.llm = m
	return b
}

// Tools adds tools to the agent's capability set. Names must be unique
// across all added tools.
func (b *Builder) Tools(tools ...tool.Tool) *Builder {
	b.tools = append(b.tools, tools...)
	return b
}

// MaxTurns caps the number of model calls per run. Zero selects
// DefaultMaxTurns; negative values fail Build.
func (b *Builder) MaxTurns(n int) *Builder {
	b.maxTurns = n
	return b
}

// Logger sets the structured logger. Defaults to logging.NoOpLogger.
func (b *Builder) Logger(l logging.Logger) *Builder {
	b.logger = l
	return b
}

// Build validates the accumulated configuration and freezes it into an
// Agent. It fails with *BuildError when the name is empty, no model has been
// set, the turn cap is negative, or tool names collide.
func (b *Builder) Build() (*Agent, error) {
	if b.name == "" {
		return nil, &BuildError{Field: "name", Reason: "must not be empty"}
	}

	if b.llm == nil {
		return nil, &BuildError{Field: "model", Reason: "must be set"}
	}

	maxTurns := b.maxTurns
	switch {
	case maxTurns < 0:
		return nil, &BuildError{Field: "max_turns", Reason: "must not be negative"}
	case maxTurns == 0:
		maxTurns = DefaultMaxTurns
	}

	registry, err := tool.NewRegistry(b.tools...)
	if err != nil {
		return nil, &BuildError{Field: "tools", Reason: err.Error()}
	}

	logger := b.logger
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	return &Agent{
		name:         b.name,
		instructions: b.instructions,
		llm:          b.llm,
		registry:     registry,
		maxTurns:     maxTurns,
		logger:       logger,
	}, nil
}
