package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	runtimeconfig "github.com/steviee/mc-locate/internal/config"
)

// NewCommand creates the config command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `View and bootstrap mc-locate configuration.

Configuration lives in ~/.config/mc-locate/config.yaml by default and holds
the server list, the per-request timeout and the concurrency bound. The file
is read once per command; there is no runtime reload.`,
		Example: `  # Write an example config file
  mc-locate config init

  # Show the effective configuration
  mc-locate config show

  # Show the configuration file path
  mc-locate config path`,
		Aliases: []string{"cfg"},
	}

	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewShowCommand())
	cmd.AddCommand(NewPathCommand())

	return cmd
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get user home directory: %w", err)
	}
	return filepath.Join(home, ".config", "mc-locate", "config.yaml"), nil
}

// NewInitCommand creates the config init subcommand
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example configuration file",
		Long: `Write a commented example configuration file with default values and a
sample server entry. Refuses to overwrite an existing file unless --force
is given.`,
		Example: `  # Create ~/.config/mc-locate/config.yaml
  mc-locate config init

  # Overwrite an existing config
  mc-locate config init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.OutOrStdout(), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

// runInit executes the config init command
func runInit(stdout io.Writer, force bool) error {
	path, err := DefaultPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := exampleConfigYAML()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	_, _ = fmt.Fprintf(stdout, "Wrote example config to %s\n", path)
	_, _ = fmt.Fprintln(stdout, "Edit the servers section, then try 'mc-locate servers check'.")
	return nil
}

// exampleConfigYAML renders the default config with one sample server.
func exampleConfigYAML() ([]byte, error) {
	cfg := runtimeconfig.Default()
	cfg.Servers = []runtimeconfig.Server{
		{Name: "Example Server", Address: "play.example.org"},
	}

	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal example config: %w", err)
	}

	header := []byte(`# mc-locate configuration.
#
# servers: the fixed set of servers every lookup runs against, in the
#   order matches should be reported.
# request_timeout_seconds: hard upper bound on each status request.
# max_concurrency: how many status requests may be in flight at once.
`)
	return append(header, body...), nil
}

// NewShowCommand creates the config show subcommand
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the configuration after defaults, the config file and environment
variables have been merged.`,
		Example: `  # Show effective configuration
  mc-locate config show

  # JSON output for scripting
  mc-locate config show --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout())
		},
	}

	return cmd
}

// runShow executes the config show command
func runShow(stdout io.Writer) error {
	cfg, err := runtimeconfig.FromViper(viper.GetViper())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if viper.GetBool("output.json") {
		output := struct {
			Status string               `json:"status"`
			Data   runtimeconfig.Config `json:"data"`
		}{
			Status: "success",
			Data:   cfg,
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal configuration: %w", err)
	}
	_, err = stdout.Write(data)
	return err
}

// NewPathCommand creates the config path subcommand
func NewPathCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if used := viper.ConfigFileUsed(); used != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), used)
				return nil
			}

			path, err := DefaultPath()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	return cmd
}
