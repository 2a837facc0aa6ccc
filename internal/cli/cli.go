package cli

import (
	"context"
	"time"

	"github.com/shandysiswandi/golaunch/internal/app"
	"github.com/spf13/cobra"
)

const defaultShutdownTimeout = 10 * time.Second

// NewRootCommand builds the golaunch command tree. Running it without a
// subcommand starts the HTTP service.
func NewRootCommand() *cobra.Command {
	var configPath string
	var shutdownTimeout time.Duration

	serve := func(cmd *cobra.Command, _ []string) error {
		application := app.New(configPath) // Initialize the application
		wait := application.Start()        // Start the application and wait for the termination signal
		<-wait                             // Wait for the application to receive a termination signal

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		application.Stop(ctx) // Stop the application gracefully
		return nil
	}

	root := &cobra.Command{
		Use:           "golaunch",
		Short:         "SpaceX launch records dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: /config/config.yaml, ./config/config.yaml when LOCAL=true)")
	root.PersistentFlags().DurationVar(&shutdownTimeout, "shutdown-timeout", defaultShutdownTimeout, "Graceful shutdown timeout")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		Args:  cobra.NoArgs,
		RunE:  serve,
	})
	root.AddCommand(newImportCommand())

	return root
}
