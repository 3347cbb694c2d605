package locator

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steviee/mc-locate/internal/mcstatus"
)

// fakeProvider is an injectable StatusProvider with a configurable
// response and artificial latency.
type fakeProvider struct {
	status *mcstatus.ServerStatus
	err    error
	delay  time.Duration
	calls  atomic.Int32
}

func (p *fakeProvider) ServerStatus(ctx context.Context, address string) (*mcstatus.ServerStatus, error) {
	p.calls.Add(1)
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return p.status, p.err
}

func onlineStatus(players ...mcstatus.PlayerEntry) *mcstatus.ServerStatus {
	list := make([]mcstatus.PlayerEntry, 0, len(players))
	list = append(list, players...)
	return &mcstatus.ServerStatus{
		Online: true,
		Players: &mcstatus.PlayerList{
			Online: len(list),
			Max:    20,
			List:   list,
		},
	}
}

func mustParseQuery(t *testing.T, raw string) Query {
	t.Helper()
	query, err := ParseQuery(raw)
	require.NoError(t, err)
	return query
}

func TestNewStatusFetcher(t *testing.T) {
	_, err := NewStatusFetcher(nil, time.Second)
	assert.ErrorIs(t, err, ErrNilFetcher)

	_, err = NewStatusFetcher(&fakeProvider{}, 0)
	assert.ErrorIs(t, err, ErrInvalidTimeout)

	_, err = NewStatusFetcher(&fakeProvider{}, -time.Second)
	assert.ErrorIs(t, err, ErrInvalidTimeout)

	fetcher, err := NewStatusFetcher(&fakeProvider{}, time.Second)
	require.NoError(t, err)
	assert.NotNil(t, fetcher)
}

func TestStatusFetcher_Fetch_Classification(t *testing.T) {
	steve := mcstatus.PlayerEntry{Name: "Steve", UUID: "069a79f4-44e9-4726-a5be-fca90e38aaf5"}
	alex := mcstatus.PlayerEntry{Name: "Alex", UUID: "853c80ef-3c37-49fd-aa49-938b674adae6"}

	tests := []struct {
		name       string
		query      string
		provider   *fakeProvider
		wantKind   OutcomeKind
		wantReason string
	}{
		{
			name:     "found by name",
			query:    "steve",
			provider: &fakeProvider{status: onlineStatus(steve, alex)},
			wantKind: OutcomeFound,
		},
		{
			name:     "found by hyphenated UUID",
			query:    "069a79f4-44e9-4726-a5be-fca90e38aaf5",
			provider: &fakeProvider{status: onlineStatus(steve, alex)},
			wantKind: OutcomeFound,
		},
		{
			name:     "found by compact UUID",
			query:    "069a79f444e94726a5befca90e38aaf5",
			provider: &fakeProvider{status: onlineStatus(steve, alex)},
			wantKind: OutcomeFound,
		},
		{
			name:     "not found",
			query:    "Herobrine",
			provider: &fakeProvider{status: onlineStatus(steve, alex)},
			wantKind: OutcomeNotFound,
		},
		{
			name:     "not found on empty list",
			query:    "Steve",
			provider: &fakeProvider{status: onlineStatus()},
			wantKind: OutcomeNotFound,
		},
		{
			name:       "offline server",
			query:      "Steve",
			provider:   &fakeProvider{status: &mcstatus.ServerStatus{Online: false}},
			wantKind:   OutcomeUnreachable,
			wantReason: ReasonOffline,
		},
		{
			name:  "hidden player list",
			query: "Steve",
			provider: &fakeProvider{status: &mcstatus.ServerStatus{
				Online:  true,
				Players: &mcstatus.PlayerList{Online: 5, Max: 20},
			}},
			wantKind: OutcomeHidden,
		},
		{
			name:  "hidden player section",
			query: "Steve",
			provider: &fakeProvider{status: &mcstatus.ServerStatus{
				Online: true,
			}},
			wantKind: OutcomeHidden,
		},
		{
			name:       "invalid response",
			query:      "Steve",
			provider:   &fakeProvider{err: fmt.Errorf("decode: %w", mcstatus.ErrInvalidResponse)},
			wantKind:   OutcomeUnreachable,
			wantReason: ReasonInvalidResponse,
		},
		{
			name:       "transport failure",
			query:      "Steve",
			provider:   &fakeProvider{err: fmt.Errorf("%w: connection refused", mcstatus.ErrAPIUnavailable)},
			wantKind:   OutcomeUnreachable,
			wantReason: ReasonRequestFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher, err := NewStatusFetcher(tt.provider, time.Second)
			require.NoError(t, err)

			outcome := fetcher.Fetch(context.Background(), mustParseQuery(t, tt.query), "mc.example.org")

			assert.Equal(t, tt.wantKind, outcome.Kind, "kind")
			assert.Equal(t, tt.wantReason, outcome.Reason, "reason")
			assert.Equal(t, int32(1), tt.provider.calls.Load(), "exactly one request per fetch")
		})
	}
}

func TestStatusFetcher_Fetch_PlayersSnapshot(t *testing.T) {
	provider := &fakeProvider{status: onlineStatus(
		mcstatus.PlayerEntry{Name: "Steve"},
		mcstatus.PlayerEntry{Name: "Alex"},
	)}
	fetcher, err := NewStatusFetcher(provider, time.Second)
	require.NoError(t, err)

	outcome := fetcher.Fetch(context.Background(), mustParseQuery(t, "Steve"), "mc.example.org")

	assert.Equal(t, OutcomeFound, outcome.Kind)
	assert.Equal(t, []string{"Steve", "Alex"}, outcome.Players)
}

func TestStatusFetcher_Fetch_Timeout(t *testing.T) {
	provider := &fakeProvider{
		status: onlineStatus(mcstatus.PlayerEntry{Name: "Steve"}),
		delay:  200 * time.Millisecond,
	}
	fetcher, err := NewStatusFetcher(provider, 20*time.Millisecond)
	require.NoError(t, err)

	outcome := fetcher.Fetch(context.Background(), mustParseQuery(t, "Steve"), "mc.example.org")

	assert.Equal(t, OutcomeUnreachable, outcome.Kind)
	assert.Equal(t, ReasonTimeout, outcome.Reason)
}

func TestStatusFetcher_Fetch_Cancelled(t *testing.T) {
	provider := &fakeProvider{
		status: onlineStatus(),
		delay:  time.Second,
	}
	fetcher, err := NewStatusFetcher(provider, 10*time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome := fetcher.Fetch(ctx, mustParseQuery(t, "Steve"), "mc.example.org")

	assert.Equal(t, OutcomeUnreachable, outcome.Kind)
	assert.Equal(t, ReasonCancelled, outcome.Reason)
}
