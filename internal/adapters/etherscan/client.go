// Package etherscan fetches verified-contract ABIs from Etherscan-compatible
// explorer APIs.
package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/protoscout-org/protoscout/internal/config"
	"github.com/protoscout-org/protoscout/internal/domain"
	"github.com/protoscout-org/protoscout/internal/usecase"
)

// Client talks to one explorer API endpoint.
type Client struct {
	baseURL string
	apiKey  string
	pause   time.Duration
	http    *http.Client
	log     *slog.Logger

	lastCall time.Time
}

// NewClient creates an explorer client from the runtime configuration.
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.Etherscan.URL,
		apiKey:  cfg.Etherscan.APIKey,
		pause:   cfg.Etherscan.Pause,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// APIErr is a non-OK response from the explorer API (unverified contract,
// rate limit, bad key).
type APIErr struct {
	Message string
	Result  string
}

func (e APIErr) Error() string {
	if e.Result != "" {
		return fmt.Sprintf("explorer API: %s: %s", e.Message, e.Result)
	}
	return fmt.Sprintf("explorer API: %s", e.Message)
}

type apiResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  string `json:"result"`
}

// FetchABI retrieves the verified ABI for a contract address. Consecutive
// calls are spaced by the configured pause to respect free-tier rate limits.
func (c *Client) FetchABI(ctx context.Context, address string) (domain.ABI, error) {
	c.throttle(ctx)

	query := url.Values{}
	query.Set("module", "contract")
	query.Set("action", "getabi")
	query.Set("address", address)
	if c.apiKey != "" {
		query.Set("apikey", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	c.log.Debug("fetching ABI", "address", address, "url", c.baseURL)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("explorer request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("explorer API returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decoding explorer response: %w", err)
	}
	if parsed.Status != "1" {
		return nil, APIErr{Message: parsed.Message, Result: parsed.Result}
	}

	abi, err := domain.ParseABI([]byte(parsed.Result))
	if err != nil {
		return nil, fmt.Errorf("parsing ABI for %s: %w", address, err)
	}
	return abi, nil
}

// throttle sleeps off the remainder of the configured pause since the last
// call, respecting context cancellation.
func (c *Client) throttle(ctx context.Context) {
	if c.pause <= 0 || c.lastCall.IsZero() {
		c.lastCall = time.Now()
		return
	}
	wait := c.pause - time.Since(c.lastCall)
	if wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
		}
	}
	c.lastCall = time.Now()
}

var _ usecase.ABIFetcher = (*Client)(nil)
