// Package apperr defines the error kinds shared by every resource.
//
// Repositories return the bare sentinels (ErrNotFound, ErrConflict) and services
// wrap them into *Error values carrying a client-facing message. Handlers map the
// kind to an HTTP status with errors.Is.
package apperr

import "errors"

var (
	ErrValidation    = errors.New("validation failed")
	ErrBadRequest    = errors.New("bad request")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrUnprocessable = errors.New("unprocessable")
	ErrPersistence   = errors.New("persistence failure")
)

// Error pairs an error kind with a message that is safe to show to clients.
// Err, when set, is the underlying cause and is only meant for logs.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func Validation(msg string) error    { return &Error{Kind: ErrValidation, Message: msg} }
func BadRequest(msg string) error    { return &Error{Kind: ErrBadRequest, Message: msg} }
func Unauthorized(msg string) error  { return &Error{Kind: ErrUnauthorized, Message: msg} }
func NotFound(msg string) error      { return &Error{Kind: ErrNotFound, Message: msg} }
func Conflict(msg string) error      { return &Error{Kind: ErrConflict, Message: msg} }
func Unprocessable(msg string) error { return &Error{Kind: ErrUnprocessable, Message: msg} }

// Persistence wraps a store failure. The cause is kept for logging only.
func Persistence(msg string, err error) error {
	return &Error{Kind: ErrPersistence, Message: msg, Err: err}
}

// Message returns the client-facing text of err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}
