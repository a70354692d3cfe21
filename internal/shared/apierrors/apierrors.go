// Package apierrors defines the flat JSON error envelope returned by the API.
package apierrors

import (
	"fmt"
	"net/http"
)

// Error is an HTTP-mappable error. Status selects the response code and is
// never serialized; Message lands in the body's "error" field.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Detail  string `json:"detail,omitempty"`
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// WithDetail returns a copy carrying extra diagnostic text.
func (e Error) WithDetail(detail string) Error {
	e.Detail = detail
	return e
}

// Validation reports malformed or missing client input.
func Validation(message string) Error {
	return Error{Status: http.StatusBadRequest, Message: message}
}

// NotFound reports an identifier absent from the store.
func NotFound(message string) Error {
	return Error{Status: http.StatusNotFound, Message: message}
}

// Unauthorized reports rejected credentials.
func Unauthorized(message string) Error {
	return Error{Status: http.StatusUnauthorized, Message: message}
}

// Internal reports an unexpected fault.
func Internal(message string) Error {
	return Error{Status: http.StatusInternalServerError, Message: message}
}
