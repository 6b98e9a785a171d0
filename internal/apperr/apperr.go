// Package apperr defines the single domain error type shared by the service
// layer. Services return an *Error with a Kind discriminant; the HTTP layer
// maps kinds to status codes and never inspects messages.
package apperr

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindConflict
	KindInvalidCredentials
	KindInternal
)

// Error carries a human-readable message and a kind. It is created once at
// the point of detection and propagates unmodified to the boundary.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func InvalidCredentials(message string) *Error {
	return &Error{Kind: KindInvalidCredentials, Message: message}
}

func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// KindOf returns the kind of err, or KindUnknown when err is not an *Error.
// Storage-engine failures deliberately report KindUnknown so the boundary
// treats them as unhandled faults.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}
