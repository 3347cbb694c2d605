package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/docker/go-units"

	"github.com/steviee/mc-locate/internal/locator"
)

// View renders the watch view
func (m Model) View() string {
	if m.quitting {
		return "Watch closed.\n"
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.loading && len(m.results) == 0 {
		b.WriteString("\nLooking up " + m.query.Raw + "...\n")
	} else if len(m.results) == 0 {
		b.WriteString("\nNo servers configured.\n")
	} else {
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	if m.err != nil && time.Since(m.errorTime) < 3*time.Second {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %s", m.err)))
	}

	return b.String()
}

// renderHeader renders the watch header
func (m Model) renderHeader() string {
	title := fmt.Sprintf("Watching %s", m.query.Raw)
	summary := fmt.Sprintf("Online on %d/%d servers", m.matchCount, len(m.servers))
	if m.loading {
		summary = "Looking up..."
	}

	totalWidth := 80
	if m.width > 0 {
		totalWidth = m.width
	}

	spacing := totalWidth - len(title) - len(summary) - 4
	if spacing < 1 {
		spacing = 1
	}

	var b strings.Builder
	b.WriteString("╭")
	b.WriteString(strings.Repeat("─", totalWidth-2))
	b.WriteString("╮\n")

	headerText := fmt.Sprintf(" %s%s%s ", title, strings.Repeat(" ", spacing), summary)
	b.WriteString("│")
	b.WriteString(headerStyle.Render(headerText))
	b.WriteString("│\n")

	b.WriteString("╰")
	b.WriteString(strings.Repeat("─", totalWidth-2))
	b.WriteString("╯")

	return b.String()
}

// renderTable renders the per-server outcome table
func (m Model) renderTable() string {
	var b strings.Builder

	nameWidth := len("SERVER")
	addrWidth := len("ADDRESS")
	for _, result := range m.results {
		if len(result.Server.Name) > nameWidth {
			nameWidth = len(result.Server.Name)
		}
		if len(result.Server.Address) > addrWidth {
			addrWidth = len(result.Server.Address)
		}
	}

	headerRow := fmt.Sprintf("  %-*s  %-*s  %s",
		nameWidth, "SERVER",
		addrWidth, "ADDRESS",
		"OUTCOME",
	)
	b.WriteString(tableHeaderStyle.Render(headerRow))
	b.WriteString("\n")

	for _, result := range m.results {
		style := getOutcomeStyle(result.Outcome.Kind)
		row := fmt.Sprintf("%s %-*s  %-*s  %s",
			style.Render(getOutcomeIndicator(result.Outcome.Kind)),
			nameWidth, result.Server.Name,
			addrWidth, result.Server.Address,
			style.Render(outcomeLabel(result.Outcome)),
		)
		b.WriteString(row)
		b.WriteString("\n")

		if result.Outcome.Kind == locator.OutcomeFound && len(result.Outcome.Players) > 0 {
			b.WriteString(footerStyle.Render(fmt.Sprintf("  %*s  online: %s",
				nameWidth, "", strings.Join(result.Outcome.Players, ", "))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderFooter renders the key help and freshness line
func (m Model) renderFooter() string {
	age := units.HumanDuration(time.Since(m.lastUpdate))
	return footerStyle.Render(fmt.Sprintf("r: refresh  q: quit  |  updated %s ago, refreshing every %s",
		age, m.refresh))
}
