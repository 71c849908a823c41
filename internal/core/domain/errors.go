package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates a required service was not wired.
	ErrNotConfigured = errors.New("not configured")

	// Directory Errors.

	// ErrTransport indicates the request never produced an HTTP response.
	ErrTransport = errors.New("directory transport failure")

	// ErrUnexpectedStatus indicates the directory answered with a non-200 status.
	ErrUnexpectedStatus = errors.New("directory returned unexpected status")

	// ErrDecode indicates the response body was not valid JSON.
	ErrDecode = errors.New("directory response decode failure")

	// ErrMissingPath indicates data.entitiesV2.nodes was absent from the response.
	ErrMissingPath = errors.New("directory response missing entity nodes")
)

// FetchErrorKind classifies a candidate pool fetch failure.
type FetchErrorKind int

const (
	// FetchErrorTransport is a network or transport failure.
	FetchErrorTransport FetchErrorKind = iota

	// FetchErrorStatus is a non-success HTTP status.
	FetchErrorStatus

	// FetchErrorDecode is a response body decode failure.
	FetchErrorDecode

	// FetchErrorMissingPath is a missing data.entitiesV2.nodes path.
	FetchErrorMissingPath
)

// String returns the string representation.
func (k FetchErrorKind) String() string {
	switch k {
	case FetchErrorTransport:
		return "transport"
	case FetchErrorStatus:
		return "status"
	case FetchErrorDecode:
		return "decode"
	case FetchErrorMissingPath:
		return "missing_path"
	default:
		return "unknown"
	}
}

// sentinel maps a kind to its package-level error.
func (k FetchErrorKind) sentinel() error {
	switch k {
	case FetchErrorTransport:
		return ErrTransport
	case FetchErrorStatus:
		return ErrUnexpectedStatus
	case FetchErrorDecode:
		return ErrDecode
	case FetchErrorMissingPath:
		return ErrMissingPath
	default:
		return nil
	}
}

// FetchError is the classified failure returned by a DirectoryClient.
// It matches the sentinel for its Kind via errors.Is and unwraps to the cause.
type FetchError struct {
	// Kind classifies the failure.
	Kind FetchErrorKind

	// StatusCode is the HTTP status, zero when no response was received.
	StatusCode int

	// Detail is a short description (status text, GraphQL error message).
	Detail string

	// Err is the underlying cause, may be nil.
	Err error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *FetchError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}
