package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steviee/mc-locate/internal/config"
)

func TestBuildReport(t *testing.T) {
	query := Query{Raw: "Steve", name: "steve"}
	servers := []config.Server{
		{Name: "Alpha", Address: "a.example.org"},
		{Name: "Beta", Address: "b.example.org"},
		{Name: "Gamma", Address: "c.example.org"},
		{Name: "Delta", Address: "d.example.org"},
		{Name: "Epsilon", Address: "e.example.org"},
	}
	outcomes := []Outcome{
		{Kind: OutcomeFound, Players: []string{"Steve"}},
		{Kind: OutcomeUnreachable, Reason: ReasonTimeout},
		{Kind: OutcomeHidden},
		{Kind: OutcomeFound, Players: []string{"Steve", "Alex"}},
		{Kind: OutcomeNotFound},
	}

	report := buildReport(query, servers, outcomes)

	assert.Equal(t, query, report.Query)
	assert.Equal(t, 5, report.CheckedCount)
	assert.Equal(t, 1, report.UnreachableCount)
	assert.Equal(t, 1, report.HiddenCount)

	require.Len(t, report.Matches, 2)
	assert.Equal(t, "Alpha", report.Matches[0].Name)
	assert.Equal(t, "Delta", report.Matches[1].Name)

	require.Len(t, report.Results, 5)
	for i, result := range report.Results {
		assert.Equal(t, servers[i], result.Server)
		assert.Equal(t, outcomes[i], result.Outcome)
	}
}

func TestBuildReport_Empty(t *testing.T) {
	report := buildReport(Query{Raw: "Steve"}, nil, nil)

	assert.Empty(t, report.Matches)
	assert.Empty(t, report.Results)
	assert.Equal(t, 0, report.CheckedCount)
	assert.Equal(t, 0, report.UnreachableCount)
	assert.Equal(t, 0, report.HiddenCount)
}

func TestBuildReport_Deterministic(t *testing.T) {
	query := Query{Raw: "Steve", name: "steve"}
	servers := []config.Server{
		{Name: "Alpha", Address: "a.example.org"},
		{Name: "Beta", Address: "b.example.org"},
	}
	outcomes := []Outcome{
		{Kind: OutcomeFound},
		{Kind: OutcomeUnreachable, Reason: ReasonOffline},
	}

	first := buildReport(query, servers, outcomes)
	second := buildReport(query, servers, outcomes)

	assert.Equal(t, first, second)
}

func TestOutcomeKindString(t *testing.T) {
	assert.Equal(t, "found", OutcomeFound.String())
	assert.Equal(t, "not-found", OutcomeNotFound.String())
	assert.Equal(t, "unreachable", OutcomeUnreachable.String())
	assert.Equal(t, "hidden", OutcomeHidden.String())
	assert.Equal(t, "unknown", OutcomeKind(42).String())
}
