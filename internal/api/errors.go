package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrReferentialIntegrity indicates a delete was rejected because
	// other entities still reference the target
	ErrReferentialIntegrity = errors.New("entity is referenced by other records")
)

// APIError is a classified failure returned by the catalog service.
// It wraps one of the sentinel errors above when the status code maps to a
// known condition; otherwise errors.Is matches nothing and callers treat
// it as a generic network-or-server failure.
type APIError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// classify maps an HTTP status code and server message to an APIError
func classify(status int, message string) error {
	err := &APIError{
		StatusCode: status,
		Message:    message,
	}

	switch status {
	case 404:
		err.kind = ErrNotFound
	case 409:
		err.kind = ErrReferentialIntegrity
	}

	return err
}
