// Package api is the typed client for the SokaStore REST API. The API
// server owns all persistence; this client only shuttles JSON and never
// retries (failures surface to the caller after a single attempt).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sokastore/soka/internal/types"
)

type Client struct {
	baseURL string
	tokens  types.TokenSource
	client  *http.Client
}

// NewClient creates a client for the API at baseURL. Requests carry a
// bearer token whenever tokens has one.
func NewClient(baseURL string, timeout time.Duration, tokens types.TokenSource) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if tokens == nil {
		tokens = types.NoToken{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Authenticated reports whether a usable token is currently available.
func (c *Client) Authenticated() bool {
	_, ok := c.tokens.Token()
	return ok
}

// do issues one request and returns the raw response body. Non-2xx
// responses become an *Error carrying the server's message.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.tokens.Token(); ok {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newError(resp.StatusCode, raw)
	}

	return raw, nil
}

// doJSON issues one request and decodes the response into out when out
// is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Path: path, Reason: err.Error()}
	}
	return nil
}
