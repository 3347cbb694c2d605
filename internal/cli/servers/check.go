package servers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/docker/go-units"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/steviee/mc-locate/internal/config"
	"github.com/steviee/mc-locate/internal/locator"
	"github.com/steviee/mc-locate/internal/mcstatus"
)

var (
	onlineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	offlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	hiddenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

// CheckFlags holds all flags for the check command
type CheckFlags struct {
	TimeoutSeconds int
	NoHeader       bool
}

// CheckItem represents one server in the check output
type CheckItem struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Status        string `json:"status"`
	Reason        string `json:"reason,omitempty"`
	PlayersOnline int    `json:"players_online"`
	PlayersMax    int    `json:"players_max"`
	ListVisible   bool   `json:"list_visible"`
}

// NewCheckCommand creates the servers check subcommand
func NewCheckCommand() *cobra.Command {
	flags := &CheckFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Query the current status of every configured server",
		Long: `Query the status endpoint of every configured server concurrently and
show which are online, how many players they report, and whether their
player list is public.

A server whose player list is not public can never produce a positive
locate match; this command makes those servers visible.`,
		Example: `  # Check all configured servers
  mc-locate servers check

  # JSON output for scripting
  mc-locate servers check --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().IntVar(&flags.TimeoutSeconds, "timeout", 0, "Per-server timeout in seconds (overrides config)")
	cmd.Flags().BoolVar(&flags.NoHeader, "no-header", false, "Omit table header")

	return cmd
}

// runCheck executes the check command
func runCheck(ctx context.Context, stdout io.Writer, flags *CheckFlags) error {
	jsonMode := isJSONMode()

	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return outputListError(stdout, jsonMode, fmt.Errorf("failed to load configuration: %w", err))
	}
	if flags.TimeoutSeconds != 0 {
		cfg.RequestTimeoutSeconds = flags.TimeoutSeconds
	}
	if err := cfg.Validate(); err != nil {
		return outputListError(stdout, jsonMode, err)
	}

	if len(cfg.Servers) == 0 {
		_, _ = fmt.Fprintln(stdout, "No servers configured. Run 'mc-locate config init' and edit the config file.")
		return nil
	}

	started := time.Now()
	items, err := checkServers(ctx, cfg)
	if err != nil {
		return outputListError(stdout, jsonMode, err)
	}

	if jsonMode {
		output := ListOutput{
			Status: "success",
			Data: map[string]interface{}{
				"servers": items,
				"count":   len(items),
			},
		}
		return json.NewEncoder(stdout).Encode(output)
	}

	outputCheckTable(stdout, items, flags.NoHeader)
	_, _ = fmt.Fprintln(stdout, footerStyle.Render(
		fmt.Sprintf("Checked %d servers in %s.", len(items), units.HumanDuration(time.Since(started)))))
	return nil
}

// checkServers fans the status queries out through the same limiter the
// locate command uses, one fetch per server.
func checkServers(ctx context.Context, cfg config.Config) ([]CheckItem, error) {
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

	items := make([]CheckItem, len(cfg.Servers))
	err = coordinator.ForEachServer(ctx, cfg.Servers, func(ctx context.Context, i int, srv config.Server) error {
		items[i] = checkOne(ctx, client, cfg.RequestTimeout(), srv)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("check servers: %w", err)
	}

	return items, nil
}

// checkOne queries one server and summarizes its status.
func checkOne(ctx context.Context, client *mcstatus.Client, timeout time.Duration, srv config.Server) CheckItem {
	item := CheckItem{
		Name:    srv.Name,
		Address: srv.Address,
	}

	fctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	status, err := client.ServerStatus(fctx, srv.Address)
	if err != nil {
		item.Status = "unreachable"
		if fctx.Err() == context.DeadlineExceeded {
			item.Reason = locator.ReasonTimeout
		} else {
			item.Reason = locator.ReasonRequestFailed
		}
		return item
	}

	if !status.Online {
		item.Status = "offline"
		return item
	}

	item.Status = "online"
	item.ListVisible = status.ListsPlayers()
	if status.Players != nil {
		item.PlayersOnline = status.Players.Online
		item.PlayersMax = status.Players.Max
	}

	return item
}

// outputCheckTable prints the check results as a table.
func outputCheckTable(stdout io.Writer, items []CheckItem, noHeader bool) {
	nameWidth := len("NAME")
	addrWidth := len("ADDRESS")
	for _, item := range items {
		if len(item.Name) > nameWidth {
			nameWidth = len(item.Name)
		}
		if len(item.Address) > addrWidth {
			addrWidth = len(item.Address)
		}
	}

	if !noHeader {
		_, _ = fmt.Fprintf(stdout, "%-*s  %-*s  %-12s  %-9s  %s\n",
			nameWidth, "NAME", addrWidth, "ADDRESS", "STATUS", "PLAYERS", "LIST")
	}

	for _, item := range items {
		players := "-"
		list := "-"
		if item.Status == "online" {
			players = fmt.Sprintf("%d/%d", item.PlayersOnline, item.PlayersMax)
			if item.ListVisible {
				list = "public"
			} else {
				list = hiddenStyle.Render("hidden")
			}
		}

		_, _ = fmt.Fprintf(stdout, "%-*s  %-*s  %-12s  %-9s  %s\n",
			nameWidth, item.Name,
			addrWidth, item.Address,
			renderCheckStatus(item),
			players,
			list)
	}
}

// renderCheckStatus formats a status cell with its color.
func renderCheckStatus(item CheckItem) string {
	switch item.Status {
	case "online":
		return onlineStyle.Render("● online") + "   "
	case "offline":
		return offlineStyle.Render("● offline") + "  "
	default:
		return offlineStyle.Render("✗ " + item.Status)
	}
}
