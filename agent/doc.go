// Package agent implements the turn-by-turn orchestration loop that ties a
// language model to a set of callable tools.
//
// An Agent owns an instruction preamble, one model and an immutable tool
// registry. Each Run seeds a Context with the instructions and the caller's
// task, then alternates between asking the model for its next turn and
// executing the tool calls it requests, folding every result back into the
// conversation until the model produces a final answer (or the configured
// turn cap is reached).
//
// Tool-level failures are downgraded to conversation content so the model
// can react to them; model-level and construction-level failures abort the
// run and surface to the caller. Agents are immutable after Build and safe
// for concurrent runs, each run owning its own Context.
package agent
