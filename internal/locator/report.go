package locator

import "github.com/steviee/mc-locate/internal/config"

// ServerResult pairs one configured server with its fetch outcome.
type ServerResult struct {
	Server  config.Server
	Outcome Outcome
}

// Report is the final result of one lookup. Matches and Results follow
// the input server order. HiddenCount is a bucket of its own: an online
// server that hides its player list is neither a match nor unreachable,
// its negative result is simply inconclusive.
type Report struct {
	Query            Query
	Results          []ServerResult
	Matches          []config.Server
	CheckedCount     int
	UnreachableCount int
	HiddenCount      int
}

// buildReport aggregates per-server outcomes into a Report. Pure: given
// the same outcomes it produces the same report, independent of the
// order in which the underlying fetches completed. servers and outcomes
// are parallel slices.
func buildReport(query Query, servers []config.Server, outcomes []Outcome) Report {
	report := Report{
		Query:        query,
		Results:      make([]ServerResult, 0, len(servers)),
		CheckedCount: len(servers),
	}

	for i, srv := range servers {
		outcome := outcomes[i]
		report.Results = append(report.Results, ServerResult{
			Server:  srv,
			Outcome: outcome,
		})

		switch outcome.Kind {
		case OutcomeFound:
			report.Matches = append(report.Matches, srv)
		case OutcomeUnreachable:
			report.UnreachableCount++
		case OutcomeHidden:
			report.HiddenCount++
		}
	}

	return report
}
