package client

import (
	"errors"
	"net/http"
)

// ServerError is implemented by errors carrying the HTTP status code of
// a failed API response.
type ServerError interface {
	error
	StatusCode() int
}

// UnauthorizedError indicates a 401 response. It is never retried and
// callers are expected to force re-authentication.
type UnauthorizedError struct{}

func (UnauthorizedError) Error() string {
	return "Unauthorized"
}

func (UnauthorizedError) StatusCode() int {
	return http.StatusUnauthorized
}

// APIError is any other non-2xx response. Message is the message field
// of the response body when the server supplied one.
type APIError struct {
	Status  int
	Message string
}

func (e APIError) Error() string {
	return e.Message
}

func (e APIError) StatusCode() int {
	return e.Status
}

var (
	_ ServerError = UnauthorizedError{}
	_ ServerError = APIError{}
)

// IsUnauthorized reports whether err classifies as a 401 response.
func IsUnauthorized(err error) bool {
	var unauthorized UnauthorizedError
	return errors.As(err, &unauthorized)
}
