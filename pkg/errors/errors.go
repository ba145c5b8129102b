package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Public returns the client-facing form of the error. Server-side failures keep
// their code and status but carry the generic message for their code.
func (e *Error) Public() *Error {
	if e == nil {
		return nil
	}
	public := &Error{Code: e.Code, Status: e.Status, Message: e.Message}
	if e.Status >= http.StatusInternalServerError {
		public.Message = genericMessage(e.Code)
	}
	return public
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrNotFound    = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrValidation  = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal    = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrQueryFailed = New("QUERY_FAILED", http.StatusBadGateway, "query failed")
	ErrDisabled    = New("FEATURE_DISABLED", http.StatusNotFound, "feature disabled")
)

// FromError normalises any error into an *Error.
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

// AsQueryFailure keeps typed errors as they are and wraps anything else as a
// QUERY_FAILED error carrying the original message.
func AsQueryFailure(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrQueryFailed.Code, ErrQueryFailed.Status, err.Error())
}

// FromPanic converts a recovered value into a QUERY_FAILED error using its string form.
func FromPanic(recovered interface{}) *Error {
	if err, ok := recovered.(error); ok {
		return AsQueryFailure(err)
	}
	return Wrap(fmt.Errorf("%v", recovered), ErrQueryFailed.Code, ErrQueryFailed.Status, fmt.Sprint(recovered))
}

func genericMessage(code string) string {
	switch code {
	case ErrQueryFailed.Code:
		return ErrQueryFailed.Message
	default:
		return ErrInternal.Message
	}
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
