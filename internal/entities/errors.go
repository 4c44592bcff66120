// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthorized signals a missing, expired or rejected token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden signals an action not allowed for the user's role.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound signals a missing user or feedback entry.
	ErrNotFound = errors.New("not found")
	// ErrUpstream signals a transport failure or unexpected API response.
	ErrUpstream = errors.New("upstream failure")
)

// APIError is a non-2xx response from the feedback API.
type APIError struct {
	Status int
	Detail string
	Err    error
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api status %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

// ValidationError is a form rejected before any API call.
type ValidationError struct {
	Message string
}

// NewValidationError builds a ValidationError with the inline message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

// Is makes errors.Is(err, ErrInvalidArgument) hold for validation failures.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidArgument }

// UserMessage returns the message a form should show for err.
func UserMessage(err error, fallback string) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
