package locate

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/steviee/mc-locate/internal/config"
	"github.com/steviee/mc-locate/internal/locator"
	"github.com/steviee/mc-locate/internal/mcstatus"
)

// Flags holds all flags for the locate command
type Flags struct {
	TimeoutSeconds int
	MaxConcurrency int
	ShowAll        bool
}

// NewCommand creates the locate command
func NewCommand() *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:   "locate <player>",
		Short: "Find which configured servers list a player as online",
		Long: `Query the status endpoint of every configured server and report which
ones currently list the given player.

The player can be given as a display name (matched case-insensitively) or as
a UUID in hyphenated or compact form (matched against the listed player
UUIDs). Servers are queried concurrently; offline and unreachable servers
are reported without affecting the rest of the lookup, and servers that
hide their player list are reported as inconclusive.`,
		Example: `  # Find a player by name
  mc-locate locate Steve

  # Find a player by UUID
  mc-locate locate 069a79f444e94726a5befca90e38aaf5

  # Show every per-server outcome, not only matches
  mc-locate locate Steve --all

  # Tighten the per-server timeout
  mc-locate locate Steve --timeout 3`,
		Aliases: []string{"find"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(cmd.Context(), cmd.OutOrStdout(), flags, args[0])
		},
	}

	cmd.Flags().IntVar(&flags.TimeoutSeconds, "timeout", 0, "Per-server timeout in seconds (overrides config)")
	cmd.Flags().IntVar(&flags.MaxConcurrency, "max-concurrency", 0, "Maximum simultaneous status requests (overrides config)")
	cmd.Flags().BoolVarP(&flags.ShowAll, "all", "a", false, "Show the outcome for every server, not only matches")

	return cmd
}

// runLocate executes the locate command
func runLocate(ctx context.Context, stdout io.Writer, flags *Flags, player string) error {
	jsonMode := isJSONMode()

	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return outputError(stdout, jsonMode, fmt.Errorf("failed to load configuration: %w", err))
	}
	cfg = applyOverrides(cfg, flags)
	if err := cfg.Validate(); err != nil {
		return outputError(stdout, jsonMode, err)
	}

	if len(cfg.Servers) == 0 {
		return outputNoServers(stdout, jsonMode)
	}

	query, err := locator.ParseQuery(player)
	if err != nil {
		return outputError(stdout, jsonMode, err)
	}

	coordinator, err := buildCoordinator(cfg)
	if err != nil {
		return outputError(stdout, jsonMode, err)
	}

	report, err := coordinator.Locate(ctx, query, cfg.Servers)
	if err != nil {
		return outputError(stdout, jsonMode, err)
	}

	if jsonMode {
		return outputReportJSON(stdout, report)
	}
	return outputReportText(stdout, report, flags.ShowAll)
}

// applyOverrides folds command-line overrides into the loaded config.
func applyOverrides(cfg config.Config, flags *Flags) config.Config {
	if flags.TimeoutSeconds != 0 {
		cfg.RequestTimeoutSeconds = flags.TimeoutSeconds
	}
	if flags.MaxConcurrency != 0 {
		cfg.MaxConcurrency = flags.MaxConcurrency
	}
	return cfg
}

// buildCoordinator wires the status client, fetcher and coordinator from
// a validated config.
func buildCoordinator(cfg config.Config) (*locator.Coordinator, error) {
	client := mcstatus.NewClient(&mcstatus.Config{
		BaseURL: cfg.StatusAPI.BaseURL,
		Timeout: cfg.RequestTimeout() + time.Second,
	})

	fetcher, err := locator.NewStatusFetcher(client, cfg.RequestTimeout())
	if err != nil {
		return nil, fmt.Errorf("create status fetcher: %w", err)
	}

	coordinator, err := locator.NewCoordinator(fetcher, cfg.MaxConcurrency)
	if err != nil {
		return nil, fmt.Errorf("create coordinator: %w", err)
	}

	return coordinator, nil
}

func isJSONMode() bool {
	return viper.GetBool("output.json")
}
