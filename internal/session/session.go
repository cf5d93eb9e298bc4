// Package session owns the client side of "currently logged in as": the
// bearer token in durable storage and the identity derived from it.
//
// The token payload is decoded without signature verification. That decode is
// advisory: it gates which screens and affordances the UI offers, nothing
// more. The backend remains the sole authority on authorization; an expired
// or forged token simply fails server-side on the next guarded request.
package session

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"promptadmin/internal/common"
	"promptadmin/internal/logging"
	"promptadmin/internal/models"
)

// tokenKey is the fixed storage key the token persists under. There is only
// ever one session at a time.
const tokenKey = "token"

// Identity is what the token payload asserts about the caller.
type Identity struct {
	Subject string
	Role    models.Role
}

// Storage is the durable key/value store the token lives in.
// *store.MetadataRepository satisfies it.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// LoginAPI is the single auth endpoint the store needs.
type LoginAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Store holds the current session. All access happens on the UI goroutine;
// the token is written only at login/logout.
type Store struct {
	storage Storage
	auth    LoginAPI
	log     logging.Logger
}

func NewStore(storage Storage, auth LoginAPI, log logging.Logger) *Store {
	return &Store{storage: storage, auth: auth, log: log}
}

// Login exchanges credentials for a token, persists it, and returns the
// decoded identity. On rejection the caller gets a generic error; the server
// detail (if any) is already folded into err by the API layer.
func (s *Store) Login(ctx context.Context, email, password string) (*Identity, error) {
	token, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if err := s.storage.Set(ctx, tokenKey, []byte(token)); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	return s.CurrentUser(ctx)
}

// Logout removes the stored token. Idempotent: logging out twice in a row is
// fine and never an error.
func (s *Store) Logout(ctx context.Context) error {
	return s.storage.Delete(ctx, tokenKey)
}

// IsAuthenticated reports whether a non-empty token is stored. It says
// nothing about the token's validity.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	token, err := s.Token(ctx)
	return err == nil && token != ""
}

// Token returns the stored token, or "" when absent.
func (s *Store) Token(ctx context.Context) (string, error) {
	value, err := s.storage.Get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// CurrentUser decodes the stored token's payload segment. A malformed token
// yields (nil, nil) with a logged diagnostic, never a panic and never an
// error that could crash a screen.
func (s *Store) CurrentUser(ctx context.Context) (*Identity, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	identity, err := decodeIdentity(token)
	if err != nil {
		s.log.Warn(ctx, "failed to decode stored token", "err", err)
		return nil, nil
	}
	return identity, nil
}

// Role is a convenience for UI gating; "" when unauthenticated or the token
// does not decode.
func (s *Store) Role(ctx context.Context) models.Role {
	identity, err := s.CurrentUser(ctx)
	if err != nil || identity == nil {
		return ""
	}
	return identity.Role
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Role models.Role `json:"role"`
}

// decodeIdentity parses the payload segment without verifying the signature.
// Expiry is not checked either; a stale token surfaces as a 401 on the next
// request.
func decodeIdentity(token string) (*Identity, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", common.ErrInvalidToken)
	}
	return &Identity{Subject: claims.Subject, Role: claims.Role}, nil
}
