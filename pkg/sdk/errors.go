package sdk

import (
	"errors"
	"fmt"
)

// ErrSessionExpired is returned when the server rejects the bearer token.
// The session has already been cleared by the time callers see it; there is
// no refresh flow, the user must log in again.
var ErrSessionExpired = errors.New("session expired")

// genericErrMessage stands in when the server gives no usable message.
const genericErrMessage = "something went wrong, please try again"

// APIError is a non-2xx response from the Mesa API. Message carries the
// server-provided reason verbatim when the error envelope could be decoded.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
