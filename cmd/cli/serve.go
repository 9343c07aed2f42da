package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewServeCommand(load containerLoader) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the classification HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(load, address)
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Listen address (overrides HTTP_ADDRESS)")

	return cmd
}

func runServe(load containerLoader, address string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	container, err := load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if address == "" {
		address = container.GetConfig().HTTPAddress
	}

	app := container.BuildHTTPServer()

	log.Info().Str("address", address).Msg("Starting ticket classifier")

	if err := app.Listen(address, fiber.ListenConfig{
		GracefulContext:       ctx,
		DisableStartupMessage: true,
	}); err != nil {
		return fmt.Errorf("http server failed: %w", err)
	}

	log.Info().Msg("Ticket classifier stopped")
	return nil
}
