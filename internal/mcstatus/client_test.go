package mcstatus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		want   *Client
	}{
		{
			name:   "nil config uses defaults",
			config: nil,
			want: &Client{
				baseURL:   DefaultBaseURL,
				userAgent: UserAgent,
			},
		},
		{
			name: "custom config",
			config: &Config{
				BaseURL:   "https://custom.api.example.com",
				Timeout:   5 * time.Second,
				UserAgent: "custom-agent",
			},
			want: &Client{
				baseURL:   "https://custom.api.example.com",
				userAgent: "custom-agent",
			},
		},
		{
			name: "trailing slash trimmed",
			config: &Config{
				BaseURL: "https://custom.api.example.com/",
			},
			want: &Client{
				baseURL:   "https://custom.api.example.com",
				userAgent: UserAgent,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewClient(tt.config)

			assert.Equal(t, tt.want.baseURL, got.baseURL)
			assert.Equal(t, tt.want.userAgent, got.userAgent)
			assert.NotNil(t, got.httpClient)
		})
	}
}

func TestClient_ServerStatus(t *testing.T) {
	tests := []struct {
		name       string
		address    string
		statusCode int
		body       string
		check      func(*testing.T, *ServerStatus)
		wantErr    error
	}{
		{
			name:       "online with player list",
			address:    "mc.example.org",
			statusCode: http.StatusOK,
			body: `{
				"online": true,
				"players": {
					"online": 2,
					"max": 20,
					"list": [
						{"name": "Steve", "uuid": "069a79f4-44e9-4726-a5be-fca90e38aaf5"},
						{"name": "Alex", "uuid": "853c80ef-3c37-49fd-aa49-938b674adae6"}
					]
				}
			}`,
			check: func(t *testing.T, status *ServerStatus) {
				assert.True(t, status.Online)
				assert.True(t, status.ListsPlayers())
				require.NotNil(t, status.Players)
				assert.Equal(t, 2, status.Players.Online)
				assert.Equal(t, 20, status.Players.Max)
				require.Len(t, status.Players.List, 2)
				assert.Equal(t, "Steve", status.Players.List[0].Name)
			},
		},
		{
			name:       "offline server",
			address:    "down.example.org",
			statusCode: http.StatusOK,
			body:       `{"online": false}`,
			check: func(t *testing.T, status *ServerStatus) {
				assert.False(t, status.Online)
				assert.False(t, status.ListsPlayers())
			},
		},
		{
			name:       "online without player list",
			address:    "private.example.org",
			statusCode: http.StatusOK,
			body:       `{"online": true, "players": {"online": 7, "max": 50}}`,
			check: func(t *testing.T, status *ServerStatus) {
				assert.True(t, status.Online)
				assert.False(t, status.ListsPlayers())
				require.NotNil(t, status.Players)
				assert.Equal(t, 7, status.Players.Online)
			},
		},
		{
			name:       "online with empty player list",
			address:    "quiet.example.org",
			statusCode: http.StatusOK,
			body:       `{"online": true, "players": {"online": 0, "max": 20, "list": []}}`,
			check: func(t *testing.T, status *ServerStatus) {
				assert.True(t, status.Online)
				assert.True(t, status.ListsPlayers())
				assert.Empty(t, status.Players.List)
			},
		},
		{
			name:       "malformed payload",
			address:    "broken.example.org",
			statusCode: http.StatusOK,
			body:       `{"online": "definitely"`,
			wantErr:    ErrInvalidResponse,
		},
		{
			name:       "server error",
			address:    "mc.example.org",
			statusCode: http.StatusInternalServerError,
			body:       "boom",
			wantErr:    &APIError{},
		},
		{
			name:    "empty address",
			address: "",
			wantErr: ErrInvalidAddress,
		},
		{
			name:    "address with whitespace",
			address: "mc.example .org",
			wantErr: ErrInvalidAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/"+tt.address, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				assert.NotEmpty(t, r.Header.Get("User-Agent"))

				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(&Config{
				BaseURL: server.URL,
				Timeout: 5 * time.Second,
			})

			status, err := client.ServerStatus(context.Background(), tt.address)

			switch want := tt.wantErr.(type) {
			case nil:
				require.NoError(t, err)
				tt.check(t, status)
			case *APIError:
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			default:
				require.ErrorIs(t, err, want)
				assert.Nil(t, status)
			}
		})
	}
}

func TestClient_ServerStatus_ContextCancelled(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	client := NewClient(&Config{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ServerStatus(ctx, "mc.example.org")
	require.Error(t, err)
}
