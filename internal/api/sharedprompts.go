package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"promptadmin/internal/models"
)

// SharedPrompts wraps the /api/shared-prompts resource (community prompts
// visible to every user).
type SharedPrompts struct {
	c *Client
}

func NewSharedPrompts(c *Client) *SharedPrompts { return &SharedPrompts{c: c} }

func (p *SharedPrompts) List(ctx context.Context) ([]models.SharedPrompt, error) {
	return getJSON[[]models.SharedPrompt](ctx, p.c, "shared-prompts", "list", "/api/shared-prompts")
}

func (p *SharedPrompts) ListByCategory(ctx context.Context, category models.Category) ([]models.SharedPrompt, error) {
	return getJSON[[]models.SharedPrompt](ctx, p.c, "shared-prompts", "list-by-category",
		"/api/shared-prompts/category/"+url.PathEscape(category))
}

func (p *SharedPrompts) Popular(ctx context.Context) ([]models.SharedPrompt, error) {
	return getJSON[[]models.SharedPrompt](ctx, p.c, "shared-prompts", "popular", "/api/shared-prompts/popular")
}

func (p *SharedPrompts) MostUsed(ctx context.Context) ([]models.SharedPrompt, error) {
	return getJSON[[]models.SharedPrompt](ctx, p.c, "shared-prompts", "most-used", "/api/shared-prompts/most-used")
}

// Mine lists the shared prompts authored by the authenticated user.
func (p *SharedPrompts) Mine(ctx context.Context) ([]models.SharedPrompt, error) {
	return getJSON[[]models.SharedPrompt](ctx, p.c, "shared-prompts", "my-prompts", "/api/shared-prompts/my-prompts")
}

func (p *SharedPrompts) Create(ctx context.Context, req models.CreateSharedPromptRequest) (models.SharedPrompt, error) {
	return callJSON[models.SharedPrompt](ctx, p.c, "shared-prompts", "create",
		http.MethodPost, "/api/shared-prompts", req)
}

func (p *SharedPrompts) ToggleLike(ctx context.Context, id int64) (models.SharedPrompt, error) {
	return callJSON[models.SharedPrompt](ctx, p.c, "shared-prompts", "toggle-like",
		http.MethodPut, fmt.Sprintf("/api/shared-prompts/%d/like", id), nil)
}

func (p *SharedPrompts) HasLiked(ctx context.Context, id int64) (bool, error) {
	resp, err := getJSON[struct {
		HasLiked bool `json:"hasLiked"`
	}](ctx, p.c, "shared-prompts", "has-liked", fmt.Sprintf("/api/shared-prompts/%d/has-liked", id))
	return resp.HasLiked, err
}

func (p *SharedPrompts) IncrementUsage(ctx context.Context, id int64) (models.SharedPrompt, error) {
	return callJSON[models.SharedPrompt](ctx, p.c, "shared-prompts", "increment-usage",
		http.MethodPut, fmt.Sprintf("/api/shared-prompts/%d/increment-usage", id), nil)
}

func (p *SharedPrompts) Delete(ctx context.Context, id int64) error {
	return p.c.do(ctx, "shared-prompts", "delete",
		http.MethodDelete, fmt.Sprintf("/api/shared-prompts/%d", id), nil, nil)
}
