package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrInvalidURL   ErrorType = "INVALID_URL"
	ErrInvalidInput ErrorType = "INVALID_INPUT"
	ErrRepoNotFound ErrorType = "REPO_NOT_FOUND"
	ErrRateLimited  ErrorType = "RATE_LIMITED"
	ErrBackend      ErrorType = "BACKEND_ERROR"
	ErrNetwork      ErrorType = "NETWORK_ERROR"
	ErrSchema       ErrorType = "SCHEMA_ERROR"
	ErrGitHub       ErrorType = "GITHUB_ERROR"
	ErrInternal     ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type      ErrorType
	Message   string
	Cause     error
	Timestamp time.Time
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:      errType,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

// TypeOf returns the kind of the first AppError in err's chain, or ErrInternal.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	var rlErr *RateLimitError
	if stderrors.As(err, &rlErr) {
		return ErrRateLimited
	}
	return ErrInternal
}

// Message returns the user-facing message of err. AppErrors yield their
// Message without the kind prefix or cause.
func Message(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func is(err error, t ErrorType) bool {
	return err != nil && TypeOf(err) == t
}

func IsInvalidURL(err error) bool   { return is(err, ErrInvalidURL) }
func IsInvalidInput(err error) bool { return is(err, ErrInvalidInput) }
func IsRepoNotFound(err error) bool { return is(err, ErrRepoNotFound) }
func IsRateLimited(err error) bool  { return is(err, ErrRateLimited) }
func IsBackend(err error) bool      { return is(err, ErrBackend) }
func IsNetwork(err error) bool      { return is(err, ErrNetwork) }
func IsSchema(err error) bool       { return is(err, ErrSchema) }

// IsValidationError reports whether err was caused by bad caller input,
// either a malformed URL or another invalid argument.
func IsValidationError(err error) bool {
	return IsInvalidURL(err) || IsInvalidInput(err)
}

// RateLimitError represents an exhausted GitHub API rate limit
type RateLimitError struct {
	ResetTime time.Time
	Limit     int
	Remaining int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("GitHub API rate limit exceeded, resets at %v (limit: %d, remaining: %d)",
		e.ResetTime, e.Limit, e.Remaining)
}

// NewRateLimitError creates a RATE_LIMITED AppError carrying the limit details
func NewRateLimitError(resetTime time.Time, limit, remaining int) *AppError {
	return New(ErrRateLimited, "GitHub API rate limit exceeded. Please try again later.", &RateLimitError{
		ResetTime: resetTime,
		Limit:     limit,
		Remaining: remaining,
	})
}

// RepositoryNotFoundError represents a repository the GitHub API would not return
type RepositoryNotFoundError struct {
	Owner      string
	Name       string
	StatusCode int
}

func (e *RepositoryNotFoundError) Error() string {
	return fmt.Sprintf("repository not found: %s/%s (status %d)", e.Owner, e.Name, e.StatusCode)
}

// NewRepositoryNotFoundError creates a REPO_NOT_FOUND AppError
func NewRepositoryNotFoundError(owner, name string, statusCode int) *AppError {
	return New(ErrRepoNotFound,
		fmt.Sprintf("Repository not found or API error (%d)", statusCode),
		&RepositoryNotFoundError{Owner: owner, Name: name, StatusCode: statusCode})
}

// NewInvalidURLError creates an INVALID_URL error
func NewInvalidURLError(message string, err error) *AppError {
	return New(ErrInvalidURL, message, err)
}

// NewValidationError creates an INVALID_INPUT error
func NewValidationError(message string, err error) *AppError {
	return New(ErrInvalidInput, message, err)
}

// NewBackendError creates a BACKEND_ERROR error
func NewBackendError(message string, err error) *AppError {
	return New(ErrBackend, message, err)
}

// NewNetworkError creates a NETWORK_ERROR error
func NewNetworkError(message string, err error) *AppError {
	return New(ErrNetwork, message, err)
}

// NewSchemaError creates a SCHEMA_ERROR error
func NewSchemaError(message string, err error) *AppError {
	return New(ErrSchema, message, err)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return New(ErrInternal, message, err)
}
