// Package api contains the REST wrappers for the backend admin API: one
// small client per resource over a shared HTTP core. Wrappers attach the
// bearer token, speak JSON both ways, and map failures to typed errors; they
// never cache, deduplicate, or retry; sequencing is the caller's job.
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

	"github.com/google/uuid"

	"promptadmin/internal/logging"
)

// TokenSource supplies the current bearer token. An empty token means the
// request goes out unauthenticated (only the login call does that).
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is the shared HTTP core behind the per-resource wrappers.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewClient builds a core client for the API rooted at baseURL. The timeout
// applies per request so a dead backend cannot hang the shell forever.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// SetTokenSource attaches the token source after construction. The session
// store and the core client depend on each other (login goes through the
// core, every other call reads the session's token), so one side is wired
// late, before any request is made.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// do issues one request and decodes the JSON response into out (when out is
// non-nil and the body is non-empty; deletes return 200 with no content).
// resource and op only label errors and log lines.
func (c *Client) do(ctx context.Context, resource, op, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %s: encode request: %w", resource, op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", resource, op, err)
	}

	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("%s: %s: read token: %w", resource, op, err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "resource", resource, "op", op, "err", err)
		return &RequestError{Resource: resource, Op: op}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(ctx, "read response failed", "resource", resource, "op", op, "err", err)
		return &RequestError{Resource: resource, Op: op}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		reqErr := &RequestError{
			Resource: resource,
			Op:       op,
			Status:   resp.StatusCode,
			Message:  serverMessage(data),
		}
		c.log.Error(ctx, "request rejected",
			"resource", resource, "op", op, "status", resp.StatusCode)
		return reqErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %s: decode response: %w", resource, op, err)
	}
	return nil
}

// getJSON fetches path and decodes the response into T.
func getJSON[T any](ctx context.Context, c *Client, resource, op, path string) (T, error) {
	var out T
	err := c.do(ctx, resource, op, http.MethodGet, path, nil, &out)
	return out, err
}

// callJSON sends body (may be nil) with the given method and decodes the
// response into T.
func callJSON[T any](ctx context.Context, c *Client, resource, op, method, path string, body any) (T, error) {
	var out T
	err := c.do(ctx, resource, op, method, path, body, &out)
	return out, err
}
