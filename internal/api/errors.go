package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"promptadmin/internal/common"
)

// RequestError describes a failed API call. Status 0 means the request never
// completed (transport failure). Message carries server-provided detail when
// the error body parsed as JSON with a "message" field.
//
// Unwrap maps well-known statuses onto the shared sentinels, so callers can
// write errors.Is(err, common.ErrUnauthorized) without importing this package.
type RequestError struct {
	Resource string
	Op       string
	Status   int
	Message  string
}

func (e *RequestError) Error() string {
	switch {
	case e.Status == 0:
		return fmt.Sprintf("%s: %s: %v", e.Resource, e.Op, common.ErrUnavailable)
	case e.Message != "":
		return fmt.Sprintf("%s: %s: %s", e.Resource, e.Op, e.Message)
	default:
		return fmt.Sprintf("%s: %s: server returned status %d", e.Resource, e.Op, e.Status)
	}
}

func (e *RequestError) Unwrap() error {
	switch e.Status {
	case 0:
		return common.ErrUnavailable
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	}
	return nil
}

// serverMessage extracts the "message" field from an error body, tolerating
// non-JSON and empty bodies.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
