package drive

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Kind classifies gateway errors into the categories callers can act on.
type Kind string

const (
	KindInvalidInput     Kind = "INVALID_INPUT"
	KindNotFound         Kind = "NOT_FOUND"
	KindConflict         Kind = "CONFLICT"
	KindPermissionDenied Kind = "PERMISSION_DENIED"
	KindTransportFailure Kind = "TRANSPORT_FAILURE"
	KindUnknown          Kind = "UNKNOWN"
)

// Error is the typed error returned by every gateway operation.
type Error struct {
	Kind    Kind
	Message string
}

// Error returns the error message.
func (e *Error) Error() string {
	if e == nil {
		return "drive error: <nil>"
	}
	if e.Message == "" {
		return fmt.Sprintf("drive error: %s", e.Kind)
	}
	return e.Message
}

// NewError constructs a typed gateway error.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsError extracts a typed gateway error from the error chain.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var typed *Error
	if errors.As(err, &typed) {
		return typed, true
	}
	return nil, false
}

// IsKind reports whether the error chain contains the given kind.
func IsKind(err error, kind Kind) bool {
	typed, ok := AsError(err)
	return ok && typed.Kind == kind
}

// classifyProviderError converts an SDK error into a typed gateway error.
// The SDK flattens API failures into their error summary text, so there is
// no better signal than the summary itself.
func classifyProviderError(op string, err error) *Error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return NewError(KindTransportFailure, "%s: %v", op, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return NewError(KindTransportFailure, "%s: %v", op, err)
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "not_found"):
		return NewError(KindNotFound, "%s: %v", op, err)
	case strings.Contains(msg, "conflict"), strings.Contains(msg, "disallowed_name"):
		return NewError(KindConflict, "%s: %v", op, err)
	case strings.Contains(msg, "malformed_path"), strings.Contains(msg, "invalid_revision"):
		return NewError(KindInvalidInput, "%s: %v", op, err)
	case strings.Contains(msg, "permission"), strings.Contains(msg, "access_denied"),
		strings.Contains(msg, "access_token"):
		return NewError(KindPermissionDenied, "%s: %v", op, err)
	default:
		return NewError(KindUnknown, "%s: %v", op, err)
	}
}
