package api

import (
	"context"
	"net/http"
)

// Auth wraps the authentication endpoint. Login is the only call that goes
// out without a bearer token.
type Auth struct {
	c *Client
}

func NewAuth(c *Client) *Auth { return &Auth{c: c} }

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := callJSON[loginResponse](ctx, a.c, "auth", "login",
		http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
