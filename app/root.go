// Package app implements the main application commands.
package app

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ForageFantasy/ForageFantasy/internal/config"
	"github.com/ForageFantasy/ForageFantasy/internal/logger"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Directory holding main.toml (default ./etc/)")
}

var (
	configPath string // Directory of the main.toml configuration file

	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "forage-fantasy",
		Short: "ForageFantasy hosts the ForageFantasy mod config and its config menu",
		Long: `ForageFantasy hosts the settings of the ForageFantasy mod:
it loads and verifies the stored config and serves the config menu
of every loaded mod as a JSON API.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration and sets up logging.
func loadConfig() error {
	var err error

	// FORAGE_FANTASY_CONFIG_JSON may come from a .env file
	_ = godotenv.Load()

	if cfg, err = config.ReadConfig(configPath); err != nil {
		return err
	}

	if devMode {
		cfg.DevMode = true
		cfg.Log.LogLevel = "debug"
	}

	return logger.Init(cfg.Log)
}
