package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"time"
)

// AppError là custom error type cho application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the upstream failure to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// IsCode reports whether err carries an AppError with the given code
func IsCode(err error, code ErrorCode) bool {
	var appErr AppError
	if !stdErrors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_INTERNAL,
		Message:   "Internal server error",
		Timestamp: time.Now(),
	}
}

// ErrInvalidArgument is the validation error: the caller violated a
// precondition and can recover by correcting the input.
func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode:  http.StatusBadRequest,
		Code:      ErrorCode_INVALID_ARGUMENT,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func ErrInvalidPayload(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusBadRequest,
		Code:      ErrorCode_INVALID_PAYLOAD,
		Message:   "Invalid payload",
		Timestamp: time.Now(),
	}
}

// ErrHTTP converts a framework-level HTTP failure (unknown route, body too
// large, wrong method) into an AppError.
func ErrHTTP(status int, message string) AppError {
	code := ErrorCode_INTERNAL
	switch {
	case status == http.StatusNotFound:
		code = ErrorCode_NOT_FOUND
	case status == http.StatusRequestEntityTooLarge:
		code = ErrorCode_PAYLOAD_TOO_LARGE
	case status == http.StatusMethodNotAllowed:
		code = ErrorCode_METHOD_NOT_ALLOWED
	case status >= 400 && status < 500:
		code = ErrorCode_INVALID_ARGUMENT
	}
	return AppError{
		HTTPCode:  status,
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// AI Errors

// ErrAISummaryFailed wraps any failure to obtain a usable completion from the
// language model. The upstream text is kept verbatim in Raw.
func ErrAISummaryFailed(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_AI_SUMMARY_FAILED,
		Message:   "Failed to generate summary",
		Timestamp: time.Now(),
	}
}

// Integration Errors

// ErrShareFailed wraps any failure reported by the mail transport.
func ErrShareFailed(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_INTEGRATION_MAIL_FAILED,
		Message:   "Failed to share summary",
		Timestamp: time.Now(),
	}
}
