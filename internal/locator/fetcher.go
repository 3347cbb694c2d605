package locator

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/steviee/mc-locate/internal/mcstatus"
)

// StatusProvider is the remote status API surface the fetcher depends on.
// *mcstatus.Client satisfies it.
type StatusProvider interface {
	ServerStatus(ctx context.Context, address string) (*mcstatus.ServerStatus, error)
}

// Fetcher performs one status lookup for one server and classifies the
// result. Implementations must never return control-flow errors: every
// failure is normalized into an Outcome so that one server's failure
// cannot affect its siblings.
type Fetcher interface {
	Fetch(ctx context.Context, query Query, address string) Outcome
}

// StatusFetcher is the production Fetcher over the status API client.
// It enforces a hard per-fetch timeout and issues exactly one outbound
// request per call; there are no retries.
type StatusFetcher struct {
	provider StatusProvider
	timeout  time.Duration
}

// NewStatusFetcher creates a StatusFetcher. The timeout is the upper
// bound on each individual fetch, not on a whole lookup.
func NewStatusFetcher(provider StatusProvider, timeout time.Duration) (*StatusFetcher, error) {
	if provider == nil {
		return nil, ErrNilFetcher
	}
	if timeout <= 0 {
		return nil, ErrInvalidTimeout
	}
	return &StatusFetcher{
		provider: provider,
		timeout:  timeout,
	}, nil
}

// Fetch queries the status of one server and classifies the payload
// against the query.
func (f *StatusFetcher) Fetch(ctx context.Context, query Query, address string) Outcome {
	fctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	status, err := f.provider.ServerStatus(fctx, address)
	if err != nil {
		outcome := classifyFetchError(err)
		slog.Debug("server unreachable",
			"address", address,
			"reason", outcome.Reason,
			"error", err)
		return outcome
	}

	if !status.Online {
		return Outcome{Kind: OutcomeUnreachable, Reason: ReasonOffline}
	}

	if !status.ListsPlayers() {
		return Outcome{Kind: OutcomeHidden}
	}

	players := make([]string, 0, len(status.Players.List))
	found := false
	for _, entry := range status.Players.List {
		if entry.Name != "" {
			players = append(players, entry.Name)
		}
		if query.MatchesName(entry.Name) || query.MatchesUUID(entry.UUID) {
			found = true
		}
	}

	if found {
		return Outcome{Kind: OutcomeFound, Players: players}
	}
	return Outcome{Kind: OutcomeNotFound, Players: players}
}

// classifyFetchError maps a transport or decode failure onto the closed
// set of unreachable reasons.
func classifyFetchError(err error) Outcome {
	var netErr net.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return Outcome{Kind: OutcomeUnreachable, Reason: ReasonTimeout}
	case errors.As(err, &netErr) && netErr.Timeout():
		return Outcome{Kind: OutcomeUnreachable, Reason: ReasonTimeout}
	case errors.Is(err, context.Canceled):
		return Outcome{Kind: OutcomeUnreachable, Reason: ReasonCancelled}
	case errors.Is(err, mcstatus.ErrInvalidResponse):
		return Outcome{Kind: OutcomeUnreachable, Reason: ReasonInvalidResponse}
	default:
		return Outcome{Kind: OutcomeUnreachable, Reason: ReasonRequestFailed}
	}
}
