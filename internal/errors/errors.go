// Package errors defines the service error taxonomy shared by the domain
// services and the HTTP boundary.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the class of a service error.
type Code string

const (
	CodeValidation   Code = "VALIDATION"
	CodeConflict     Code = "CONFLICT"
	CodeNotFound     Code = "NOT_FOUND"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeInternal     Code = "INTERNAL"
)

// ServiceError is an error with an HTTP mapping. It is handled at the request
// boundary and never propagates beyond a single request.
type ServiceError struct {
	Code       Code
	Message    string
	HTTPStatus int
	cause      error
}

func (e *ServiceError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error { return e.cause }

// WithCause attaches an underlying error for logging.
func (e *ServiceError) WithCause(err error) *ServiceError {
	clone := *e
	clone.cause = err
	return &clone
}

// Validation reports a missing or malformed required field.
func Validation(format string, args ...any) *ServiceError {
	return &ServiceError{Code: CodeValidation, Message: fmt.Sprintf(format, args...), HTTPStatus: http.StatusBadRequest}
}

// Conflict reports a duplicate name, an already active session or an already
// recorded like. Conflicts map to 400, not 409; existing clients key on that
// status.
func Conflict(format string, args ...any) *ServiceError {
	return &ServiceError{Code: CodeConflict, Message: fmt.Sprintf(format, args...), HTTPStatus: http.StatusBadRequest}
}

// NotFound reports an unknown user, session or post.
func NotFound(format string, args ...any) *ServiceError {
	return &ServiceError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...), HTTPStatus: http.StatusNotFound}
}

// Unauthorized reports a request acting outside its identity, such as a
// non-owner delete or a missing session token.
func Unauthorized(format string, args ...any) *ServiceError {
	return &ServiceError{Code: CodeUnauthorized, Message: fmt.Sprintf(format, args...), HTTPStatus: http.StatusUnauthorized}
}

// Internal wraps an unexpected failure, such as a durable write error.
func Internal(message string, cause error) *ServiceError {
	return &ServiceError{Code: CodeInternal, Message: message, HTTPStatus: http.StatusInternalServerError, cause: cause}
}

// GetServiceError extracts a *ServiceError from err's chain, or nil.
func GetServiceError(err error) *ServiceError {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	svcErr := GetServiceError(err)
	return svcErr != nil && svcErr.Code == code
}
