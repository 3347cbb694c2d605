package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/steviee/mc-locate/internal/config"
	"github.com/steviee/mc-locate/internal/locator"
)

// Model is the bubbletea model for the watch view. It re-runs the lookup
// on a fixed interval and shows the per-server outcomes as they come in.
type Model struct {
	query       locator.Query
	servers     []config.Server
	coordinator *locator.Coordinator
	refresh     time.Duration

	results    []locator.ServerResult
	matchCount int
	lastUpdate time.Time
	inFlight   bool
	loading    bool
	err        error
	errorTime  time.Time
	width      int
	height     int
	ctx        context.Context
	quitting   bool
}

// NewModel creates a new watch model.
func NewModel(ctx context.Context, coordinator *locator.Coordinator, query locator.Query, servers []config.Server, refresh time.Duration) *Model {
	if refresh <= 0 {
		refresh = config.DefaultWatchRefreshInterval
	}
	return &Model{
		query:       query,
		servers:     servers,
		coordinator: coordinator,
		refresh:     refresh,
		loading:     true,
		lastUpdate:  time.Now(),
		ctx:         ctx,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.refresh),
		runLookupCmd(m.ctx, m.coordinator, m.query, m.servers),
	)
}

// tickCmd returns a command that sends a tick after the refresh interval
func tickCmd(refresh time.Duration) tea.Cmd {
	return tea.Tick(refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// runLookupCmd returns a command that runs one full lookup
func runLookupCmd(ctx context.Context, coordinator *locator.Coordinator, query locator.Query, servers []config.Server) tea.Cmd {
	return func() tea.Msg {
		report, err := coordinator.Locate(ctx, query, servers)
		return lookupDoneMsg{
			report: report,
			err:    err,
		}
	}
}

// clearErrorCmd returns a command that clears the error message after a delay
func clearErrorCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}
