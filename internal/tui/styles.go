package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/steviee/mc-locate/internal/locator"
)

var (
	// Header styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#00ADD8")).
			Padding(0, 1)

	// Table header styles
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true).
				Foreground(lipgloss.Color("#FFFFFF"))

	// Outcome color styles
	foundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))

	notFoundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))

	unreachableStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF0000"))

	hiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFF00"))

	// Footer style
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))

	// Error style
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

// getOutcomeStyle returns the style for a given outcome kind
func getOutcomeStyle(kind locator.OutcomeKind) lipgloss.Style {
	switch kind {
	case locator.OutcomeFound:
		return foundStyle
	case locator.OutcomeNotFound:
		return notFoundStyle
	case locator.OutcomeUnreachable:
		return unreachableStyle
	case locator.OutcomeHidden:
		return hiddenStyle
	default:
		return lipgloss.NewStyle()
	}
}

// getOutcomeIndicator returns the indicator symbol for an outcome kind
func getOutcomeIndicator(kind locator.OutcomeKind) string {
	switch kind {
	case locator.OutcomeFound:
		return "●"
	case locator.OutcomeNotFound:
		return "○"
	case locator.OutcomeUnreachable:
		return "✗"
	case locator.OutcomeHidden:
		return "◌"
	default:
		return "?"
	}
}

// outcomeLabel returns the table label for one outcome
func outcomeLabel(outcome locator.Outcome) string {
	switch outcome.Kind {
	case locator.OutcomeFound:
		return "found"
	case locator.OutcomeNotFound:
		return "not found"
	case locator.OutcomeUnreachable:
		return "unreachable (" + outcome.Reason + ")"
	case locator.OutcomeHidden:
		return "list hidden"
	default:
		return "unknown"
	}
}
