package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"promptadmin/internal/models"
)

// UserPrompts wraps the /api/user-prompts resource (prompts private to the
// authenticated user).
type UserPrompts struct {
	c *Client
}

func NewUserPrompts(c *Client) *UserPrompts { return &UserPrompts{c: c} }

func (p *UserPrompts) List(ctx context.Context) ([]models.UserPrompt, error) {
	return getJSON[[]models.UserPrompt](ctx, p.c, "user-prompts", "list", "/api/user-prompts")
}

func (p *UserPrompts) ListFavorites(ctx context.Context) ([]models.UserPrompt, error) {
	return getJSON[[]models.UserPrompt](ctx, p.c, "user-prompts", "favorites", "/api/user-prompts/favorites")
}

func (p *UserPrompts) ListByCategory(ctx context.Context, category models.Category) ([]models.UserPrompt, error) {
	return getJSON[[]models.UserPrompt](ctx, p.c, "user-prompts", "list-by-category",
		"/api/user-prompts/category/"+url.PathEscape(category))
}

func (p *UserPrompts) Create(ctx context.Context, req models.CreateUserPromptRequest) (models.UserPrompt, error) {
	return callJSON[models.UserPrompt](ctx, p.c, "user-prompts", "create",
		http.MethodPost, "/api/user-prompts", req)
}

func (p *UserPrompts) ToggleFavorite(ctx context.Context, id int64) (models.UserPrompt, error) {
	return callJSON[models.UserPrompt](ctx, p.c, "user-prompts", "toggle-favorite",
		http.MethodPut, fmt.Sprintf("/api/user-prompts/%d/favorite", id), nil)
}

func (p *UserPrompts) IncrementUsage(ctx context.Context, id int64) (models.UserPrompt, error) {
	return callJSON[models.UserPrompt](ctx, p.c, "user-prompts", "increment-usage",
		http.MethodPut, fmt.Sprintf("/api/user-prompts/%d/increment-usage", id), nil)
}

func (p *UserPrompts) Delete(ctx context.Context, id int64) error {
	return p.c.do(ctx, "user-prompts", "delete",
		http.MethodDelete, fmt.Sprintf("/api/user-prompts/%d", id), nil, nil)
}
