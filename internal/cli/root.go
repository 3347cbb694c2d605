package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	configcmd "github.com/steviee/mc-locate/internal/cli/config"
	"github.com/steviee/mc-locate/internal/cli/locate"
	"github.com/steviee/mc-locate/internal/cli/servers"
)

var (
	// Global flags
	cfgFile string
	jsonOut bool
	quiet   bool
	verbose bool

	// Global logger
	logger *slog.Logger
)

// NewRootCommand creates and returns the root cobra command
func NewRootCommand(version, commit, date, builtBy string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mc-locate",
		Short: "Find a Minecraft player across your configured servers",
		Long: `mc-locate looks up which of a fixed set of Minecraft servers currently
list a given player as connected, using each server's public status endpoint.

Servers are queried concurrently with a bounded number of in-flight requests
and a per-request timeout. A server that is offline or unreachable is reported
as such without affecting the other lookups; a server that hides its player
list is reported as inconclusive rather than as a miss.`,
		Example: `  # Find a player by name
  mc-locate locate Steve

  # Find a player by UUID
  mc-locate locate 069a79f4-44e9-4726-a5be-fca90e38aaf5

  # Follow a player with a live view
  mc-locate watch Steve

  # Show the configured servers
  mc-locate servers list

  # Check which configured servers are up
  mc-locate servers check`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initLogger(); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			if err := initConfig(); err != nil {
				logger.Error("failed to initialize config", "error", err)
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			return nil
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/mc-locate/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")

	rootCmd.MarkFlagsMutuallyExclusive("json", "quiet")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Subcommand packages read the output mode through viper rather
	// than reaching back into this package.
	_ = viper.BindPFlag("output.json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("output.quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.AddCommand(NewVersionCommand(version, commit, date, builtBy))
	rootCmd.AddCommand(locate.NewCommand())
	rootCmd.AddCommand(NewWatchCommand())
	rootCmd.AddCommand(servers.NewCommand())
	rootCmd.AddCommand(configcmd.NewCommand())

	return rootCmd
}

// initLogger initializes the global logger based on flags
func initLogger() error {
	var level slog.Level
	var handler slog.Handler

	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if jsonOut {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger = slog.New(handler)
	slog.SetDefault(logger)

	return nil
}

// initConfig reads in config file and ENV variables if set
func initConfig() error {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("get user home directory: %w", err)
		}

		// Search config in ~/.config/mc-locate directory
		configDir := filepath.Join(home, ".config", "mc-locate")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("MCLOCATE")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config file: %w", err)
		}
	} else {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}

	return nil
}

// GetLogger returns the global logger instance
func GetLogger() *slog.Logger {
	return logger
}

// IsJSONOutput returns true if JSON output is enabled
func IsJSONOutput() bool {
	return jsonOut
}

// IsQuiet returns true if quiet mode is enabled
func IsQuiet() bool {
	return quiet
}
