package api

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx response from the backend. Message carries the
// server's own error text when the body had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// ServerMessage returns the server-reported error text from err, or fallback
// when err is not an APIError or carried no message. Callers use this to show
// the backend's wording verbatim where it exists.
func ServerMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
