package mcstatus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the default status API base URL.
	DefaultBaseURL = "https://api.mcsrvstat.us/3"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second

	// UserAgent is the user agent string sent with API requests.
	UserAgent = "mc-locate/dev (https://github.com/steviee/mc-locate)"
)

// Client queries the public status API for individual servers. One call
// issues exactly one outbound request; retry policy, if any, belongs to
// the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Config holds client configuration.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// NewClient creates a new status API client.
func NewClient(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}

	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	if config.UserAgent == "" {
		config.UserAgent = UserAgent
	}

	slog.Debug("creating status API client",
		"base_url", config.BaseURL,
		"timeout", config.Timeout)

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: &http.Client{Timeout: config.Timeout},
		userAgent:  config.UserAgent,
	}
}

// ServerStatus fetches the current status of the server at address.
// The payload is decoded into the typed ServerStatus model; a payload
// that does not decode is reported as ErrInvalidResponse rather than
// surfacing a partial result.
func (c *Client) ServerStatus(ctx context.Context, address string) (*ServerStatus, error) {
	if err := validateAddress(address); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	reqURL := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	slog.Debug("status API request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Keep the transport error in the chain so callers can still
		// classify timeouts and cancellation.
		return nil, fmt.Errorf("%w: %w", ErrAPIUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, NewAPIError(resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var status ServerStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	slog.Debug("status API response",
		"address", address,
		"online", status.Online,
		"lists_players", status.ListsPlayers())

	return &status, nil
}

// validateAddress checks that an address is a plausible server address.
// The status API accepts "host" or "host:port"; whitespace or an empty
// host would produce a malformed request URL.
func validateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("address cannot be empty")
	}
	if strings.ContainsAny(address, " \t\n/") {
		return fmt.Errorf("address must not contain whitespace or slashes: %q", address)
	}
	return nil
}
