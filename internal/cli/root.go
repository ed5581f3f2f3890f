package cli

import (
	"context"

	"github.com/spf13/cobra"

	"research-agent/internal/agents"
	"research-agent/internal/di"
	"research-agent/internal/infrastructure/env"
)

var (
	flagModel          string
	flagSystemPrompt   string
	flagNoGooglePrompt bool
)

// rootCmd represents the base command when called without a question argument.
var rootCmd = newRootCmd()

// newRootCmd builds the command and binds its flags. Binding resets the flag
// variables to their defaults, so tests construct fresh instances to keep
// flag state from one run out of the next.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "research-agent [question]",
		Short: "Run research questions through a search-equipped LLM agent",
		Long: `Sends research questions to an LLM agent equipped with an internet
search tool and prints the final answers. When no question argument is
given, questions are read interactively until 'quit' or 'exit'.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	defaults := di.DefaultConfig()
	cmd.Flags().StringVar(&flagModel, "model", defaults.Model, "LLM model identifier")
	cmd.Flags().StringVar(&flagSystemPrompt, "system-prompt", "", "Override for the agent system prompt")
	cmd.Flags().BoolVar(&flagNoGooglePrompt, "no-google-prompt", false,
		"Fail immediately if GOOGLE_API_KEY is missing instead of prompting")

	return cmd
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	envService := env.NewService()

	cfg := di.DefaultConfig()
	cfg.Model = flagModel
	if flagSystemPrompt != "" {
		cfg.SystemPrompt = flagSystemPrompt
	}
	cfg.PromptForGoogleKey = !flagNoGooglePrompt

	if _, err := envService.Require(agents.EnvTavilyAPIKey); err != nil {
		return err
	}
	if err := ensureGoogleKey(envService, cfg.PromptForGoogleKey, readSecret); err != nil {
		return err
	}

	ctx := cmd.Context()
	container, err := di.NewContainer(ctx, envService, cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	var question string
	if len(args) > 0 {
		question = args[0]
	}

	return runLoop(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), question,
		func(ctx context.Context, q string) (string, error) {
			res, err := container.Agent.Run(ctx, q)
			if err != nil {
				return "", err
			}
			return res.FinalText(), nil
		})
}
