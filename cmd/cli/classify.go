package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func NewClassifyCommand(load containerLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <description...>",
		Short: "Classify a ticket description and print the result as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.TrimSpace(strings.Join(args, " "))
			if description == "" {
				return fmt.Errorf("description must not be empty")
			}

			container, err := load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			result := container.BuildClassifier().Classify(context.Background(), description)

			encoder := json.NewEncoder(cmd.OutOrStdout())
			return encoder.Encode(result)
		},
	}
}
