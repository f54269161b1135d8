package rest

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is any non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	message := e.Message
	if message == "" {
		message = http.StatusText(e.StatusCode)
	}

	return fmt.Sprintf("the server rejected the request (%d): %s", e.StatusCode, message)
}

// NetworkError is a transport-level failure; no response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AuthenticationError is a rejected login or signup attempt.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message == "" {
		return "authentication failed"
	}

	return "authentication failed: " + e.Message
}

// authError downgrades credential rejections to AuthenticationError so the
// session layer can surface the server's message; everything else passes
// through untouched.
func authError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) &&
		(apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusBadRequest) {
		return &AuthenticationError{Message: apiErr.Message}
	}

	return err
}
