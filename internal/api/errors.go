package api

import (
	"errors"
	"fmt"
)

// ErrAuthExpired is returned when the backend answers 401: the token was
// invalid or expired. The client has already cleared the stored token and
// notified the host by the time callers see this.
var ErrAuthExpired = errors.New("session expired. Please login again")

// ErrForbidden is returned when the backend answers 403: the session is
// valid but lacks permission. The stored token is left untouched.
var ErrForbidden = errors.New("access denied. You do not have permission to access this resource")

// HTTPError is any other non-2xx response. It carries the status code and
// the raw body so callers can surface backend validation messages.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request failed (status %d)", e.Status)
	}
	return fmt.Sprintf("request failed (status %d): %s", e.Status, e.Body)
}
