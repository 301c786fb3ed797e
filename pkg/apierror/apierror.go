package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies every error the handlers can surface.
type Kind string

const (
	InvalidRequest      Kind = "invalid_request"
	NotFound            Kind = "not_found"
	RateLimited         Kind = "rate_limited"
	UpstreamUnavailable Kind = "upstream_unavailable"
	Internal            Kind = "internal"
)

// Error is a classified error with a human readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with a static message.
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a classified error keeping the underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// KindOf extracts the kind of a given error.
// Unclassified errors are treated as internal.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return Internal
}

// IsKind reports whether the error carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// StatusCode maps a error to the HTTP status the handlers must return.
func StatusCode(err error) int {
	switch KindOf(err) {
	case InvalidRequest:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case RateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
