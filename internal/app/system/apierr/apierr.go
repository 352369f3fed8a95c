// Package apierr defines the typed, HTTP-aware errors the API surfaces.
//
// Every user-visible failure maps 1:1 to a status code: unknown username to
// 401, malformed dates and identifiers to 400, missing records to 404.
// Anything else (store connectivity and the like) is normalized to a generic
// 500 and the detail stays in the server log.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a terminal, user-visible failure.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates an Error with the given code, status, and message.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches a cause to a new Error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for the announcement API's failure taxonomy.
var (
	ErrUnauthorized = New("UNAUTHORIZED", http.StatusUnauthorized, "Authentication required")
	ErrInvalidID    = New("INVALID_ID", http.StatusBadRequest, "Invalid announcement ID")
	ErrNotFound     = New("NOT_FOUND", http.StatusNotFound, "Announcement not found")
	ErrInternal     = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

// InvalidDate reports a date field that failed YYYY-MM-DD validation.
// The message names the offending field so callers can fix the right one.
func InvalidDate(field string) *Error {
	return New("INVALID_DATE", http.StatusBadRequest,
		fmt.Sprintf("Invalid %s format. Use YYYY-MM-DD", field))
}

// FromError normalizes any error into an *Error. Errors that are not already
// typed become ErrInternal with the original as the wrapped cause.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}
