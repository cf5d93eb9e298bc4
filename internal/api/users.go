package api

import (
	"context"
	"fmt"
	"net/http"

	"promptadmin/internal/models"
)

// Users wraps the /api/users resource.
type Users struct {
	c *Client
}

func NewUsers(c *Client) *Users { return &Users{c: c} }

func (u *Users) List(ctx context.Context) ([]models.User, error) {
	return getJSON[[]models.User](ctx, u.c, "users", "list", "/api/users")
}

func (u *Users) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	return callJSON[models.User](ctx, u.c, "users", "create",
		http.MethodPost, "/api/users", req)
}

func (u *Users) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	return callJSON[models.User](ctx, u.c, "users", "update",
		http.MethodPut, fmt.Sprintf("/api/users/%d", id), req)
}

// Delete returns nil on success; the endpoint sends no body.
func (u *Users) Delete(ctx context.Context, id int64) error {
	return u.c.do(ctx, "users", "delete",
		http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil)
}
