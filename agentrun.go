// Package agentrun orchestrates a single conversational agent that can
// invoke a declared set of callable tools while conversing with a language
// model, returning a final textual answer once the model stops requesting
// tool use.
//
// Most applications interact with the library by:
//  1. Implementing or choosing a model.Model (model/openai, model/anthropic,
//     or a custom backend)
//  2. Declaring tools (tool.NewFunctionTool, tool.NewFunctionToolFromStruct,
//     or the built-ins)
//  3. Assembling an agent via the builder and running tasks against it:
//
//	ag, err := agent.New("assistant").
//	    Instructions("You are a helpful assistant.").
//	    Model(openai.NewModel()).
//	    Tools(tool.NewCalculatorTool()).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	answer, err := ag.Run(ctx, "What is 15.7 * 9.2?", core.NewContext())
//
// A built agent is immutable and may serve many concurrent runs; each run
// owns its own core.Context carrying the conversation history and shared
// scratch data. Tool failures become conversation content the model can
// react to; model failures abort the run.
package agentrun
