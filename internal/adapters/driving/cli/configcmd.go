package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/servico/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a config file with the default values",
	Long: `Write the built-in defaults to a TOML file, ./` + config.DefaultFile + ` unless a path
is given. An existing file is left alone unless --force is set.`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE:              runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolP("force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultFile
	if len(args) > 0 {
		path = args[0]
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("getting force flag: %w", err)
	}
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	if err := config.WriteDefaults(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	cmd.Printf("Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cmd.Printf("env:             %s\n", cfg.Env)
	cmd.Printf("log:             %s, %s\n", cfg.Log.Level, cfg.Log.Format)
	cmd.Printf("server.addr:     %s\n", cfg.Server.Addr)
	if cfg.Server.RateLimit > 0 {
		cmd.Printf("server.rate:     %g/s burst %d\n", cfg.Server.RateLimit, cfg.Server.RateBurst)
	}
	if cfg.Metrics.Addr != "" {
		cmd.Printf("metrics.addr:    %s\n", cfg.Metrics.Addr)
	}
	cmd.Printf("storage.driver:  %s\n", cfg.Storage.Driver)
	switch cfg.Storage.Driver {
	case "json":
		cmd.Printf("storage.data_dir: %s (naming %s)\n", cfg.Storage.DataDir, cfg.Storage.Naming)
	case "sqlite":
		cmd.Printf("storage.data_dir: %s\n", cfg.Storage.DataDir)
	case "postgres":
		cmd.Println("storage.dsn:     (set)")
	}
	cmd.Printf("ids.policy:      %s\n", cfg.IDs.Policy)
	cmd.Printf("display.locale:  %s\n", cfg.Display.Locale)
	return nil
}
