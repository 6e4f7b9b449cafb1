// Command agentrun is a small CLI for running one-shot agent tasks against
// an OpenAI or Anthropic backend with the built-in tools wired in.
package main

import (
	"fmt"
	"os"
	"strings"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/spf13/cobra"

	"github.com/hupe1980/agentrun/agent"
	"github.com/hupe1980/agentrun/core"
	"github.com/hupe1980/agentrun/logging"
	"github.com/hupe1980/agentrun/model"
	"github.com/hupe1980/agentrun/model/anthropic"
	"github.com/hupe1980/agentrun/model/openai"
	"github.com/hupe1980/agentrun/tool"
)

var (
	flagProvider     string
	flagModel        string
	flagInstructions string
	flagMaxTurns     int
	flagVerbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "agentrun",
	Short: "agentrun - run a tool-calling agent from the command line",
}

var chatCmd = &cobra.Command{
	Use:   "chat [task]",
	Short: "Run a single task to completion and print the final answer",
	Args:  cobra.ExactArgs(1),
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVar(&flagProvider, "provider", "openai", "model provider (openai or anthropic)")
	chatCmd.Flags().StringVar(&flagModel, "model", "", "model identifier (provider default if empty)")
	chatCmd.Flags().StringVar(&flagInstructions, "instructions", "You are a helpful assistant. Use the available tools when they help.", "instruction preamble")
	chatCmd.Flags().IntVar(&flagMaxTurns, "max-turns", agent.DefaultMaxTurns, "maximum model turns per run")
	chatCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	llm, err := buildModel()
	if err != nil {
		return err
	}

	logger := logging.Logger(logging.NoOpLogger{})
	if flagVerbose {
		logger = logging.NewSlogLogger(logging.LogLevelDebug, "text")
	}

	ag, err := agent.New("agentrun").
		Instructions(flagInstructions).
		Model(llm).
		Tools(tool.NewCalculatorTool(), tool.NewScratchpadTool()).
		MaxTurns(flagMaxTurns).
		Logger(logger).
		Build()
	if err != nil {
		return err
	}

	answer, err := ag.Run(cmd.Context(), args[0], core.NewContext())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}

// buildModel selects the provider backend. API keys come from the SDKs'
// standard environment variables (OPENAI_API_KEY, ANTHROPIC_API_KEY).
func buildModel() (model.Model, error) {
	switch strings.ToLower(flagProvider) {
	case "openai":
		return openai.NewModel(func(o *openai.Options) {
			if flagModel != "" {
				o.Model = flagModel
			}
		}), nil
	case "anthropic":
		return anthropic.NewModel(func(o *anthropic.Options) {
			if flagModel != "" {
				o.Model = anthropicsdk.Model(flagModel)
			}
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (use openai or anthropic)", flagProvider)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
