package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/steviee/mc-locate/internal/config"
	"github.com/steviee/mc-locate/internal/locator"
	"github.com/steviee/mc-locate/internal/mcstatus"
	"github.com/steviee/mc-locate/internal/tui"
)

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	var refreshSeconds int

	cmd := &cobra.Command{
		Use:   "watch <player>",
		Short: "Follow a player across servers with a live view",
		Long: `Launch a live view that re-runs the player lookup on a fixed interval
and shows the outcome for every configured server.

Keyboard shortcuts:
  r           Refresh now
  q/Ctrl+C    Quit`,
		Example: `  # Watch a player
  mc-locate watch Steve

  # Refresh every 30 seconds
  mc-locate watch Steve --refresh 30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), args[0], refreshSeconds)
		},
	}

	cmd.Flags().IntVar(&refreshSeconds, "refresh", 0, "Refresh interval in seconds (overrides config)")

	return cmd
}

// runWatch executes the watch command
func runWatch(ctx context.Context, player string, refreshSeconds int) error {
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if len(cfg.Servers) == 0 {
		return fmt.Errorf("no servers configured; run 'mc-locate config init' and edit the config file")
	}

	query, err := locator.ParseQuery(player)
	if err != nil {
		return err
	}

	refresh := cfg.Watch.RefreshInterval
	if refreshSeconds > 0 {
		refresh = time.Duration(refreshSeconds) * time.Second
	}

	client := mcstatus.NewClient(&mcstatus.Config{
		BaseURL: cfg.StatusAPI.BaseURL,
		Timeout: cfg.RequestTimeout() + time.Second,
	})

	fetcher, err := locator.NewStatusFetcher(client, cfg.RequestTimeout())
	if err != nil {
		return fmt.Errorf("create status fetcher: %w", err)
	}

	coordinator, err := locator.NewCoordinator(fetcher, cfg.MaxConcurrency)
	if err != nil {
		return fmt.Errorf("create coordinator: %w", err)
	}

	model := tui.NewModel(ctx, coordinator, query, cfg.Servers, refresh)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run watch view: %w", err)
	}

	return nil
}
