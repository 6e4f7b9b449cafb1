// Package model defines the provider-agnostic abstraction for the language
// model backend that drives an agent run.
//
// Core goals:
//   - Represent one model turn as a structurally distinguishable decision
//     (FinalAnswer or ToolCalls) so the agent loop never parses free text
//   - Normalize tool declaration across vendors (ToolDefinition)
//   - Keep request/response shapes minimal and transport independent
//   - Facilitate lightweight mocking for tests (ScriptedModel, Func)
//
// Providers (e.g. OpenAI, Anthropic) implement the Model interface from this
// package so the agent layer remains decoupled from vendor SDKs.
package model
