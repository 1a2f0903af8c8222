// Package cli implements the servico command line: the server commands and
// thin gRPC clients for the user and service operations.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/servico/internal/config"
	"github.com/custodia-labs/servico/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

var (
	configPath string
	verbose    bool
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "servico",
	Short: "User and service record server",
	Long: `servico keeps a registry of users and the service records booked for them.

Run "servico serve" to start the gRPC server, then use the user and service
commands, or any gRPC client, to list, fetch and create records.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func loadConfig(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := logger.Init(logger.Config{Level: loaded.Log.Level, Format: loaded.Log.Format}); err != nil {
		return err
	}
	logger.SetVerbose(verbose)
	cfg = loaded
	logger.Debug("Loaded config: env=%s storage=%s", cfg.Env, cfg.Storage.Driver)
	return nil
}

// Execute runs the root command with ctx, which is cancelled on shutdown.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("servico: %w", err)
	}
	return nil
}
