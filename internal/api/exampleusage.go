package api

import (
	"context"
	"fmt"
	"net/http"

	"promptadmin/internal/models"
)

// ExampleUsage wraps the /api/example-usage resource: server-side aggregated
// run counters for the built-in prompt-engineering examples.
type ExampleUsage struct {
	c *Client
}

func NewExampleUsage(c *Client) *ExampleUsage { return &ExampleUsage{c: c} }

func (e *ExampleUsage) Stats(ctx context.Context) (models.UsageStats, error) {
	return getJSON[models.UsageStats](ctx, e.c, "example-usage", "stats", "/api/example-usage/stats")
}

// Increment bumps the server-side counter for one example. The endpoint
// returns no body.
func (e *ExampleUsage) Increment(ctx context.Context, exampleIndex int) error {
	return e.c.do(ctx, "example-usage", "increment",
		http.MethodPost, fmt.Sprintf("/api/example-usage/increment/%d", exampleIndex), nil, nil)
}
