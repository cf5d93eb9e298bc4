// Package models holds the wire types shared by the API wrappers and the UI.
// The backend owns these records; the client only caches them per screen load.
package models

import "time"

// Role is the backend-assigned authorization role. The client reads it from
// the token payload for UI gating only; the server re-checks every request.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID        int64     `json:"id"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateUserRequest mirrors the backend's creation DTO. Email is immutable
// after creation, so the update DTO below does not carry it.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

type UpdateUserRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Role      Role   `json:"role"`
}
