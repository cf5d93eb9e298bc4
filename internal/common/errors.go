// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Authorization errors (rejected or expired token).
	ErrUnauthorized = errors.New("unauthorized")

	// Resource-level errors.
	ErrNotFound = errors.New("not found")

	// Token structure errors (malformed stored token).
	ErrInvalidToken = errors.New("invalid token")
)
