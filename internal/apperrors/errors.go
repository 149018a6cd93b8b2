package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCredentials is returned when an email/password pair does not match a user.
// Unknown emails and wrong passwords both map to it.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrUnauthenticated indicates a missing, expired, revoked or malformed session.
var ErrUnauthenticated = errors.New("authentication required")

// ErrForbidden indicates that the caller's role does not allow the action.
var ErrForbidden = errors.New("insufficient role")

// ErrDomain indicates that well-formed input violates a business rule.
var ErrDomain = errors.New("domain rule violation")

// ValidationError describes a single missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// DomainError is a rule violation such as a negative amount or a rate above 100%.
type DomainError struct {
	Rule    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return ErrDomain }

// NewDomainError builds a DomainError for rule.
func NewDomainError(rule, message string) error {
	return &DomainError{Rule: rule, Message: message}
}

// AppError carries an HTTP-ish status code alongside an internal cause.
// It is used for infrastructure failures that have no better sentinel.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
