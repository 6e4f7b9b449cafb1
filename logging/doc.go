// Package logging provides a minimal logging interface and adapters for AgentRun.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the agent loop and tools use for observability. This
// package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, library defaults)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelDebug, "text")
//	ag, err := agent.New("assistant").Model(m).Logger(logger).Build()
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
