package errors

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrorCode identifies the kind of an AppError
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 200

	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_CONFIGURATION    ErrorCode = 1002
	ErrorCode_SERVICE          ErrorCode = 1003
	ErrorCode_NOT_FOUND        ErrorCode = 1004
	ErrorCode_STORAGE_FAILED   ErrorCode = 1005
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:          "HTTP_OK",
	ErrorCode_INTERNAL:         "INTERNAL",
	ErrorCode_INVALID_ARGUMENT: "INVALID_ARGUMENT",
	ErrorCode_CONFIGURATION:    "CONFIGURATION",
	ErrorCode_SERVICE:          "SERVICE",
	ErrorCode_NOT_FOUND:        "NOT_FOUND",
	ErrorCode_STORAGE_FAILED:   "STORAGE_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText renders the code by name in JSON bodies and logs
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// AppError is the application's error type; Code tells callers which kind it is
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// IsCode reports whether err is an AppError of the given kind
func IsCode(err error, code ErrorCode) bool {
	var appErr AppError
	if !As(err, &appErr) {
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

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode:  http.StatusBadRequest,
		Code:      ErrorCode_INVALID_ARGUMENT,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Pipeline Errors

// ErrConfiguration reports a missing or unusable credential
func ErrConfiguration(message string) AppError {
	return AppError{
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_CONFIGURATION,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// ErrService reports a non-success response from an external service.
// The raw body is kept in the message so it reaches the caller verbatim.
func ErrService(service string, status int, body string) AppError {
	return AppError{
		HTTPCode:  http.StatusBadGateway,
		Code:      ErrorCode_SERVICE,
		Message:   fmt.Sprintf("%s API error (status %d): %s", service, status, body),
		Timestamp: time.Now(),
	}.WithDetail("service", service).
		WithDetail("status", strconv.Itoa(status)).
		WithDetail("body", body)
}

// ErrNotFound reports a lookup miss for the given entity kind and search term
func ErrNotFound(entity, term string) AppError {
	return AppError{
		HTTPCode:  http.StatusNotFound,
		Code:      ErrorCode_NOT_FOUND,
		Message:   fmt.Sprintf("%s not found: %s", entity, term),
		Timestamp: time.Now(),
	}.WithDetail("entity", entity).
		WithDetail("term", term)
}

func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_STORAGE_FAILED,
		Message:   fmt.Sprintf("Storage operation failed: %s", operation),
		Timestamp: time.Now(),
	}
}

// Custom Errors
func ErrInvalidPayload() AppError {
	return ErrInvalidArgument("Invalid payload")
}

func ErrMissingTranscriptFile() AppError {
	return ErrInvalidArgument("Missing transcript file (meeting_file)")
}
