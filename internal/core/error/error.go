package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// RedisErrorMessage describes session store failures.
	RedisErrorMessage = "session store operation failed"
	// RedisNotFoundMessage is used when a session key does not exist.
	RedisNotFoundMessage = "session not found"
	// ConflictMessage is used when a cart changed underneath a mutation.
	ConflictMessage = "cart was modified concurrently"
)

// Error wraps an underlying error with an HTTP-style status and a safe message.
type Error struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error with the provided information.
func New(err error, status int, message string) *Error {
	return &Error{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

func NotFound(err error, message string) *Error {
	return New(err, http.StatusNotFound, message)
}

func InvalidArgument(err error, message string) *Error {
	return New(err, http.StatusBadRequest, message)
}

func Conflict(err error, message string) *Error {
	return New(err, http.StatusConflict, message)
}

// Unprocessable marks input that is well formed but rejected by a business rule,
// such as an expired coupon.
func Unprocessable(err error, message string) *Error {
	return New(err, http.StatusUnprocessableEntity, message)
}

// StatusOf returns the status carried by the first *Error in err's chain,
// or 500 when there is none.
func StatusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var e *Error
	if errors.As(err, &e) && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}
