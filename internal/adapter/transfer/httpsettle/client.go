// Package httpsettle implements ports.TransferSystem against a remote
// settlement service's REST API.
package httpsettle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"custody-ledger/internal/core/domain"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the settlement service's transfer endpoints. Transfers are
// synchronous: a 2xx response means the movement is settled, anything else
// is a rejection.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	log        zerolog.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// NewClientWithHTTP injects a custom HTTP client, used in tests.
func NewClientWithHTTP(baseURL, apiKey string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		log:        log,
	}
}

type transferRequest struct {
	Asset  string `json:"asset"`
	From   string `json:"from,omitempty"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

type transferResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// DirectTransfer pushes funds from the ledger's settlement account.
func (c *Client) DirectTransfer(ctx context.Context, asset, to domain.Address, amount uint64) error {
	return c.post(ctx, "/v1/transfers/direct", transferRequest{
		Asset:  asset.Hex(),
		To:     to.Hex(),
		Amount: amount,
	})
}

// PullTransfer moves funds between third-party accounts under a standing
// authorization held by the ledger's settlement account.
func (c *Client) PullTransfer(ctx context.Context, asset, from, to domain.Address, amount uint64) error {
	return c.post(ctx, "/v1/transfers/pull", transferRequest{
		Asset:  asset.Hex(),
		From:   from.Hex(),
		To:     to.Hex(),
		Amount: amount,
	})
}

func (c *Client) post(ctx context.Context, path string, body transferRequest) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling transfer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building transfer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling settlement service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.log.Debug().
			Str("path", path).
			Str("asset", body.Asset).
			Uint64("amount", body.Amount).
			Msg("transfer settled")
		return nil
	}

	var rejection transferResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(raw, &rejection); err != nil || rejection.Reason == "" {
		return fmt.Errorf("settlement service returned %d", resp.StatusCode)
	}
	return fmt.Errorf("settlement rejected: %s", rejection.Reason)
}
