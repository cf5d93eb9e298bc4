package api

import (
	"context"
	"net/http"
)

// AI wraps the /api/ai endpoints backing the assistant screen. The model
// itself lives behind the backend; this client only ferries prompt text.
type AI struct {
	c *Client
}

func NewAI(c *Client) *AI { return &AI{c: c} }

type promptRequest struct {
	Prompt string `json:"prompt"`
}

// Suggestions asks for improvement suggestions for the given prompt text.
func (a *AI) Suggestions(ctx context.Context, prompt string) (string, error) {
	resp, err := callJSON[struct {
		Suggestions string `json:"suggestions"`
	}](ctx, a.c, "ai", "suggestions", http.MethodPost, "/api/ai/suggestions", promptRequest{Prompt: prompt})
	return resp.Suggestions, err
}

// Test runs the prompt against the backend's model and returns the output.
func (a *AI) Test(ctx context.Context, prompt string) (string, error) {
	resp, err := callJSON[struct {
		Result string `json:"result"`
	}](ctx, a.c, "ai", "test", http.MethodPost, "/api/ai/test", promptRequest{Prompt: prompt})
	return resp.Result, err
}

// Improve returns a rewritten version of the prompt.
func (a *AI) Improve(ctx context.Context, prompt string) (string, error) {
	resp, err := callJSON[struct {
		Improved string `json:"improved"`
	}](ctx, a.c, "ai", "improve", http.MethodPost, "/api/ai/improve", promptRequest{Prompt: prompt})
	return resp.Improved, err
}

type alternativeRequest struct {
	OriginalPrompt string `json:"originalPrompt"`
	Improvement    string `json:"improvement,omitempty"`
}

// GenerateAlternative produces an alternative phrasing of originalPrompt,
// optionally steered by an improvement hint.
func (a *AI) GenerateAlternative(ctx context.Context, originalPrompt, improvement string) (string, error) {
	resp, err := callJSON[struct {
		Alternative string `json:"alternative"`
	}](ctx, a.c, "ai", "generate-alternative", http.MethodPost, "/api/ai/generate-alternative",
		alternativeRequest{OriginalPrompt: originalPrompt, Improvement: improvement})
	return resp.Alternative, err
}

// Status reports whether the backend has a model API configured.
func (a *AI) Status(ctx context.Context) (bool, error) {
	resp, err := getJSON[struct {
		Configured bool `json:"configured"`
	}](ctx, a.c, "ai", "status", "/api/ai/status")
	return resp.Configured, err
}
