// Package apperror carries an HTTP status alongside an error so a single
// middleware can pick the error page.
package apperror

import (
	"errors"
	"net/http"
)

type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message, nil)
}

func TooManyRequests() *Error {
	return New(http.StatusTooManyRequests, "Too many requests, please try again later.", nil)
}

// Internal hides err behind a generic message.
func Internal(err error) *Error {
	return New(http.StatusInternalServerError, "Something went wrong", err)
}

// StatusOf returns the status carried by err, or 500.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the public message for err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return http.StatusText(http.StatusInternalServerError)
}
