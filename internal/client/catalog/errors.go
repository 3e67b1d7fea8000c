package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// NetworkError reports a transport failure or an unclassified non-2xx
// status. The caller must treat it as "catalog unknown", never as
// "catalog empty".
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AuthError reports a 401 or 403: the bearer token is missing, invalid,
// or expired.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// ValidationError reports a 4xx rejection of the submitted payload,
// carrying the server's human-readable reason.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a 404 on update or delete of an identifier that
// no longer exists server-side.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// responseError classifies a non-2xx response into the error taxonomy,
// extracting the server's {"message": ...} payload when present.
func responseError(resp *http.Response) error {
	msg := serverMessage(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if msg == "" {
			msg = "authorization rejected"
		}
		return &AuthError{Message: msg}
	case resp.StatusCode == http.StatusNotFound:
		if msg == "" {
			msg = "not found"
		}
		return &NotFoundError{Message: msg}
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		if msg == "" {
			msg = "request rejected"
		}
		return &ValidationError{Message: msg}
	default:
		return &NetworkError{Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
}

// serverMessage decodes the error payload's message field, tolerating
// bodies that are not the expected shape.
func serverMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	data, err := io.ReadAll(io.LimitReader(body, 1<<20))
	if err != nil {
		return ""
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Message
}
