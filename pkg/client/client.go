// Package client is the Go SDK for the WealthTrack API. It wraps the REST
// endpoints with typed calls and carries the view-model logic (filtering,
// ledger reconciliation, dashboard merging) that UI layers build on.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// TokenProvider supplies the bearer token for authenticated calls. An empty
// token means no session.
type TokenProvider interface {
	Token() string
}

// APIError is a non-2xx response from the server, carrying the message from
// the failure envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client is the remote data gateway. All resource stores and view models
// issue their requests through it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger replaces the client's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a gateway against the given base URL (e.g.
// "http://localhost:8080/api/v1").
func New(baseURL string, tokens TokenProvider, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the server's response shape: data on success, message on
// failure. Both are parsed regardless of status.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do issues one request. When authenticated is true and no token is present
// the call is skipped: out is left untouched and (true, nil) is returned.
// Network failures are logged and returned, never retried.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, authenticated bool) (skipped bool, err error) {
	var token string
	if authenticated {
		token = c.tokens.Token()
		if token == "" {
			return true, nil
		}
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return false, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return false, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Request failed",
			slog.String("method", method), slog.String("path", path), slog.String("error", err.Error()))
		return false, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("%s %s: failed to read response: %w", method, path, err)
	}

	var env envelope
	if len(raw) > 0 {
		// The body may be the data/message envelope or a top-level payload
		// (auth endpoints); a parse failure only matters on success paths
		// that need data out of it.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := env.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return false, &APIError{Status: resp.StatusCode, Message: message}
	}

	if out != nil {
		payload := env.Data
		if payload == nil {
			payload = raw
		}
		if err := json.Unmarshal(payload, out); err != nil {
			return false, fmt.Errorf("%s %s: failed to decode response: %w", method, path, err)
		}
	}
	return false, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) (bool, error) {
	return c.do(ctx, http.MethodGet, path, nil, out, true)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) (bool, error) {
	return c.do(ctx, http.MethodPost, path, body, out, true)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) (bool, error) {
	return c.do(ctx, http.MethodPut, path, body, out, true)
}

func (c *Client) patch(ctx context.Context, path string, body, out interface{}) (bool, error) {
	return c.do(ctx, http.MethodPatch, path, body, out, true)
}

func (c *Client) delete(ctx context.Context, path string) (bool, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil, true)
}
