package cli

import (
	"fmt"
	"os"

	"github.com/flowbaker/ticket-classifier/internal/config"
	"github.com/flowbaker/ticket-classifier/internal/initialization"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// containerLoader builds the container once flags have been parsed
type containerLoader func() (*initialization.ClassifierContainer, error)

func NewRootCommand() *cobra.Command {
	var (
		debug      bool
		configFile string
	)

	rootCmd := &cobra.Command{
		Use:   "ticket-classifier",
		Short: "Support ticket classifier",
		Long: `Suggests a category and priority for support ticket descriptions using
Gemini, OpenAI or Anthropic, with a keyword fallback when no provider answers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a config file (default: classifier_config.yaml in ., ./config or $HOME/.ticket-classifier)")

	load := func() (*initialization.ClassifierContainer, error) {
		return initialization.NewClassifierContainer(config.Options{
			ConfigFile: configFile,
			Watch:      true,
		})
	}

	rootCmd.AddCommand(NewServeCommand(load))
	rootCmd.AddCommand(NewClassifyCommand(load))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
