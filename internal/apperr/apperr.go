// Package apperr carries HTTP-aware errors from services to handlers.
package apperr

import (
	"errors"
	"net/http"
)

const (
	CodeInvalidPayload     = "invalid_payload"
	CodeValidation         = "validation_error"
	CodeUnauthorized       = "unauthorized"
	CodeInvalidCredentials = "invalid_credentials"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "not_found"
	CodeConflict           = "conflict"
	CodeInternal           = "internal_server_error"
)

// Error is a failure with a public message and status. Err holds the
// underlying cause and is never shown to production callers.
type Error struct {
	Status  int
	Code    string
	Message string
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	ErrInvalidCredentials = &Error{Status: http.StatusUnauthorized, Code: CodeInvalidCredentials, Message: "Invalid credentials"}
	ErrUserAlreadyExists  = &Error{Status: http.StatusBadRequest, Code: CodeConflict, Message: "User already exists"}
)

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, CodeNotFound, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, CodeForbidden, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, message)
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, CodeInvalidPayload, message)
}

// Validation wraps field-level issues.
func Validation(details any) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeValidation, Message: "Validation error", Details: details}
}

func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: CodeInternal, Message: "Internal server error", Err: err}
}

// From returns err as an *Error, treating anything unclassified as internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
