// Package errs holds the tagged error type every operation returns.
// Handlers never inspect messages; they switch on Kind.
package errs

import (
	"errors"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindStore      Kind = "store"
)

// Error is a failed operation result: a kind plus the message sent to the client.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match on kind and message, so sentinel values below compare equal
// to freshly built errors carrying the same text.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Message: msg} }

// Store wraps a persistence failure, keeping the driver's message.
func Store(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindStore, Message: err.Error(), Err: err}
}

// KindOf reports the kind of err. Untagged errors count as store failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}

// Messages shared across packages.
const (
	MsgMissingFields   = "Missing or empty fields"
	MsgMissingRequired = "Missing required fields"
	MsgUserNotFound    = "User not found"
	MsgRecipeNotFound  = "Recipe not found"
)

var (
	ErrUserNotFound   = NotFound(MsgUserNotFound)
	ErrRecipeNotFound = NotFound(MsgRecipeNotFound)
)
