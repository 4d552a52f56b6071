package apperr

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

// Code classifies a failure for callers and for the HTTP layer.
type Code string

const (
	CodeValidation        Code = "VALIDATION_ERROR"
	CodeNotFound          Code = "NOT_FOUND"
	CodeInsufficientStock Code = "INSUFFICIENT_STOCK"
	CodeStorage           Code = "STORAGE_FAULT"
)

var statusByCode = map[Code]int{
	CodeValidation:        http.StatusBadRequest,
	CodeNotFound:          http.StatusNotFound,
	CodeInsufficientStock: http.StatusConflict,
	CodeStorage:           http.StatusInternalServerError,
}

// Error is a coded application error. Message is safe to show to the caller;
// Err carries the underlying cause for logs.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func InsufficientStock(format string, args ...any) *Error {
	return &Error{Code: CodeInsufficientStock, Message: fmt.Sprintf(format, args...)}
}

// Storage wraps an underlying read/write failure. The cause stays out of the
// public message; callers log it and report generically.
func Storage(err error) *Error {
	return &Error{Code: CodeStorage, Message: "storage operation failed", Err: err}
}

// CodeOf extracts the code from err, defaulting to CodeStorage for untyped errors.
func CodeOf(err error) Code {
	var appErr *Error
	if stdErrors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeStorage
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// HTTPStatus maps err to the response status the handlers should use.
func HTTPStatus(err error) int {
	if status, ok := statusByCode[CodeOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the caller-safe message for err. Storage faults are
// reported generically without exposing internal detail.
func PublicMessage(err error) string {
	var appErr *Error
	if stdErrors.As(err, &appErr) && appErr.Code != CodeStorage {
		return appErr.Message
	}
	return "internal storage error"
}
