package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		// Re-run the lookup unless the previous one is still going
		cmds := []tea.Cmd{tickCmd(m.refresh)}
		if !m.inFlight {
			m.inFlight = true
			cmds = append(cmds, runLookupCmd(m.ctx, m.coordinator, m.query, m.servers))
		}
		return m, tea.Batch(cmds...)

	case lookupDoneMsg:
		m.loading = false
		m.inFlight = false
		if msg.err != nil {
			m.err = msg.err
			m.errorTime = time.Now()
			slog.Error("lookup failed", "query", m.query.Raw, "error", msg.err)
			return m, clearErrorCmd()
		}

		m.results = msg.report.Results
		m.matchCount = len(msg.report.Matches)
		m.lastUpdate = time.Now()
		return m, nil

	case clearErrorMsg:
		// Only clear if error is older than 3 seconds
		if time.Since(m.errorTime) >= 3*time.Second {
			m.err = nil
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "r":
		if m.inFlight {
			return m, nil
		}
		m.inFlight = true
		return m, runLookupCmd(m.ctx, m.coordinator, m.query, m.servers)
	}

	return m, nil
}
