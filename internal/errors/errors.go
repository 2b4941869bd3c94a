package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is membandingkan berdasarkan Code, sehingga errors.Is(err, ErrNotFound) cocok
// untuk semua not found dengan pesan apa pun.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeUploadFailed       = "UPLOAD_FAILED"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeSelfDeletion       = "SELF_DELETION"
	CodeInternal           = "INTERNAL_ERROR"
	CodeUnavailable        = "SERVICE_UNAVAILABLE"
)

// Predefined domain errors
var (
	ErrInvalidInput       = NewDomainError(CodeInvalidInput, "invalid input")
	ErrUploadFailed       = NewDomainError(CodeUploadFailed, "upload gagal")
	ErrNotFound           = NewDomainError(CodeNotFound, "resource not found")
	ErrConflict           = NewDomainError(CodeConflict, "resource already exists")
	ErrUnauthorized       = NewDomainError(CodeUnauthorized, "Unauthorized")
	ErrInvalidCredentials = NewDomainError(CodeInvalidCredentials, "Invalid email or password")
	ErrInvalidToken       = NewDomainError(CodeInvalidToken, "invalid or expired token")
	ErrSelfDeletion       = NewDomainError(CodeSelfDeletion, "users cannot delete themselves")

	ErrInternal           = NewDomainError(CodeInternal, "internal server error")
	ErrServiceUnavailable = NewDomainError(CodeUnavailable, "service unavailable")
)

// NewNotFound membuat error 404 dengan pesan khusus entitas.
func NewNotFound(message string) *DomainError {
	return NewDomainError(CodeNotFound, message)
}

// NewBadRequest membuat error 400 dengan pesan khusus.
func NewBadRequest(message string) *DomainError {
	return NewDomainError(CodeInvalidInput, message)
}

// NewConflict membuat error 409 dengan pesan khusus.
func NewConflict(message string) *DomainError {
	return NewDomainError(CodeConflict, message)
}

// NewUploadFailed membungkus kegagalan storage saat upload.
func NewUploadFailed(message string, err error) *DomainError {
	return &DomainError{Code: CodeUploadFailed, Message: message, Err: err}
}

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps domain errors to HTTP status codes
// This should only be used in the handler/presentation layer
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	return http.StatusInternalServerError
}

func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	case CodeInvalidInput, CodeUploadFailed, CodeSelfDeletion:
		return http.StatusBadRequest

	case CodeUnauthorized, CodeInvalidCredentials, CodeInvalidToken:
		return http.StatusUnauthorized

	case CodeNotFound:
		return http.StatusNotFound

	case CodeConflict:
		return http.StatusConflict

	case CodeUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts error message
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return err.Error()
}
