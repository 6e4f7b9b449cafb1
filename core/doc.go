// Package core contains the shared data model of AgentRun: conversation
// messages, tool call / result records and the per-run Context that carries
// message history plus typed scratch data between the agent loop, the model
// and the tools.
package core
