// Package apperr defines the single error taxonomy used across the service.
// Handlers map kinds to HTTP status codes in exactly one place; everything
// below the handlers deals in kinds, never in status codes.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Unauthenticated Kind = iota
	PreconditionFailed
	NotFound
	RateLimitExceeded
	UploadRejected
	DispatchError
	RecordAfterDispatch
	Internal
)

func (k Kind) String() string {
	switch k {
	case Unauthenticated:
		return "unauthenticated"
	case PreconditionFailed:
		return "precondition-failed"
	case NotFound:
		return "not-found"
	case RateLimitExceeded:
		return "rate-limit-exceeded"
	case UploadRejected:
		return "upload-rejected"
	case DispatchError:
		return "dispatch-error"
	case RecordAfterDispatch:
		return "record-after-dispatch"
	default:
		return "internal"
	}
}

// Error carries a kind plus a short message safe to show to the end user.
// The wrapped cause is for server-side logs only.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Message is the client-facing string.
func (e *Error) Message() string { return e.Msg }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind from err, defaulting to Internal for anything
// that did not originate from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
