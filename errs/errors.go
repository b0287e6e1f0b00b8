// Package errs carries the error taxonomy shared by services and controllers.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so the HTTP boundary can pick a status code.
type Kind int

const (
	Internal Kind = iota
	InvalidInput
	NotFound
	Conflict
	Unauthorized
	InsufficientStock
	InvalidAmount
	Expired
	InvalidToken
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case Unauthorized:
		return "unauthorized"
	case InsufficientStock:
		return "insufficient_stock"
	case InvalidAmount:
		return "invalid_amount"
	case Expired:
		return "expired"
	case InvalidToken:
		return "invalid_token"
	default:
		return "internal"
	}
}

// Error is a tagged domain error.
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

func (e *Error) Unwrap() error { return e.Err }

// New returns an error of the given kind.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Newf is New with formatting.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags err with a kind and message, keeping it in the chain.
func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf reports the kind of the first tagged error in err's chain.
// Untagged errors are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the client-facing message for err. Internal errors never
// leak their cause.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Internal {
		return e.Message
	}
	return "Internal Server Error"
}

// HTTPStatus maps a kind to the response status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case InvalidInput, InvalidToken:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict, InsufficientStock:
		return http.StatusConflict
	case Expired:
		return http.StatusGone
	case InvalidAmount:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
