package agent

import (
	"errors"
	"fmt"
)

// ErrMaxTurnsExceeded terminates a run whose model kept requesting tool
// calls past the configured turn cap. It is a distinct fatal error kind, not
// a silent truncation.
var ErrMaxTurnsExceeded = errors.New("maximum turn count exceeded")

// BuildError reports an invalid Builder configuration. Construction-time
// validation exists so run-time failures are limited to the model and tool
// contracts, not to missing configuration.
type BuildError struct {
	Field  string // Offending configuration field
	Reason string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("invalid agent configuration: %s: %s", e.Field, e.Reason)
}

// RunError wraps a fatal run failure: a model error, cancellation or the
// turn cap. Tool failures never appear here; they become conversation
// content instead.
type RunError struct {
	Agent string
	Err   error
}

// Error implements the error interface.
func (e *RunError) Error() string {
	return fmt.Sprintf("agent %s: run failed: %v", e.Agent, e.Err)
}

// Unwrap returns the underlying failure.
func (e *RunError) Unwrap() error { return e.Err }
