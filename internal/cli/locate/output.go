package locate

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/steviee/mc-locate/internal/config"
	"github.com/steviee/mc-locate/internal/locator"
)

var (
	foundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	notFoundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))

	unreachableStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF0000"))

	hiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFF00"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))
)

// ServerResultItem is one per-server outcome in the JSON output.
type ServerResultItem struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Outcome string   `json:"outcome"`
	Reason  string   `json:"reason,omitempty"`
	Players []string `json:"players,omitempty"`
}

// ReportData is the JSON payload for a completed lookup.
type ReportData struct {
	Query       string             `json:"query"`
	Matches     []config.Server    `json:"matches"`
	Results     []ServerResultItem `json:"results"`
	Checked     int                `json:"checked"`
	Unreachable int                `json:"unreachable"`
	Hidden      int                `json:"hidden"`
}

// Output holds the output envelope for JSON mode
type Output struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// outputError reports a failed request in the appropriate format.
func outputError(stdout io.Writer, jsonMode bool, err error) error {
	if jsonMode {
		output := Output{
			Status: "error",
			Error:  err.Error(),
		}
		if encErr := json.NewEncoder(stdout).Encode(output); encErr != nil {
			return encErr
		}
	}
	return err
}

// outputNoServers reports an empty server configuration.
func outputNoServers(stdout io.Writer, jsonMode bool) error {
	if jsonMode {
		output := Output{
			Status:  "success",
			Data:    ReportData{Matches: []config.Server{}, Results: []ServerResultItem{}},
			Message: "No servers configured",
		}
		return json.NewEncoder(stdout).Encode(output)
	}

	_, _ = fmt.Fprintln(stdout, "No servers configured. Add servers with 'mc-locate config init' and edit the config file.")
	return nil
}

// outputReportJSON prints a lookup report in JSON format.
func outputReportJSON(stdout io.Writer, report *locator.Report) error {
	data := ReportData{
		Query:       report.Query.Raw,
		Matches:     report.Matches,
		Results:     make([]ServerResultItem, 0, len(report.Results)),
		Checked:     report.CheckedCount,
		Unreachable: report.UnreachableCount,
		Hidden:      report.HiddenCount,
	}
	if data.Matches == nil {
		data.Matches = []config.Server{}
	}

	for _, result := range report.Results {
		data.Results = append(data.Results, ServerResultItem{
			Name:    result.Server.Name,
			Address: result.Server.Address,
			Outcome: result.Outcome.Kind.String(),
			Reason:  result.Outcome.Reason,
			Players: result.Outcome.Players,
		})
	}

	output := Output{
		Status: "success",
		Data:   data,
	}
	return json.NewEncoder(stdout).Encode(output)
}

// outputReportText prints a lookup report in human-readable format.
func outputReportText(stdout io.Writer, report *locator.Report, showAll bool) error {
	if len(report.Matches) == 0 {
		_, _ = fmt.Fprintf(stdout, "%s is not listed on any of the %d configured servers.\n",
			report.Query.Raw, report.CheckedCount)
	} else {
		_, _ = fmt.Fprintf(stdout, "%s is online on %d of %d configured servers:\n",
			report.Query.Raw, len(report.Matches), report.CheckedCount)
		for _, srv := range report.Matches {
			_, _ = fmt.Fprintf(stdout, "  %s %s (%s)\n", foundStyle.Render("●"), srv.Name, srv.Address)
		}
	}

	if showAll {
		_, _ = fmt.Fprintln(stdout)
		outputResultTable(stdout, report.Results)
	}

	var notes []string
	if report.UnreachableCount > 0 {
		notes = append(notes, fmt.Sprintf("%d unreachable", report.UnreachableCount))
	}
	if report.HiddenCount > 0 {
		notes = append(notes, fmt.Sprintf("%d with hidden player list", report.HiddenCount))
	}
	if len(notes) > 0 {
		_, _ = fmt.Fprintln(stdout, summaryStyle.Render(fmt.Sprintf("Note: %s.", strings.Join(notes, ", "))))
	}

	return nil
}

// outputResultTable prints the per-server outcome table.
func outputResultTable(stdout io.Writer, results []locator.ServerResult) {
	nameWidth := len("SERVER")
	addrWidth := len("ADDRESS")
	for _, result := range results {
		if len(result.Server.Name) > nameWidth {
			nameWidth = len(result.Server.Name)
		}
		if len(result.Server.Address) > addrWidth {
			addrWidth = len(result.Server.Address)
		}
	}

	_, _ = fmt.Fprintf(stdout, "%-*s  %-*s  %s\n", nameWidth, "SERVER", addrWidth, "ADDRESS", "OUTCOME")
	for _, result := range results {
		_, _ = fmt.Fprintf(stdout, "%-*s  %-*s  %s\n",
			nameWidth, result.Server.Name,
			addrWidth, result.Server.Address,
			renderOutcome(result.Outcome))
	}
}

// renderOutcome formats one outcome with its status color.
func renderOutcome(outcome locator.Outcome) string {
	switch outcome.Kind {
	case locator.OutcomeFound:
		return foundStyle.Render("found")
	case locator.OutcomeNotFound:
		return notFoundStyle.Render("not found")
	case locator.OutcomeHidden:
		return hiddenStyle.Render("online, player list hidden")
	case locator.OutcomeUnreachable:
		return unreachableStyle.Render("unreachable (" + outcome.Reason + ")")
	default:
		return outcome.Kind.String()
	}
}
