package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeAuthInvalidCredentials ErrorCode = "AUTH-001"
	ErrCodeAuthNotLoggedIn        ErrorCode = "AUTH-002"
	ErrCodeAuthTokenRejected      ErrorCode = "AUTH-003"
	ErrCodeAuthOTPInvalid         ErrorCode = "AUTH-004"
	ErrCodeAuthForbidden          ErrorCode = "AUTH-005"

	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionStoreRead    ErrorCode = "SESSION-001"
	ErrCodeSessionStoreWrite   ErrorCode = "SESSION-002"
	ErrCodeSessionStoreCorrupt ErrorCode = "SESSION-003"

	// API errors (API-001 to API-099)
	ErrCodeAPIRequest   ErrorCode = "API-001"
	ErrCodeAPITransport ErrorCode = "API-002"
	ErrCodeAPIDecode    ErrorCode = "API-003"

	// Validation errors (VALIDATE-001 to VALIDATE-099)
	ErrCodeValidation ErrorCode = "VALIDATE-001"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigNotFound ErrorCode = "CONFIG-001"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG-002"
)

// ClientError represents an enhanced error with code, suggestions, and an
// optional HTTP status for errors originating from the backend
type ClientError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Status      int
	Cause       error
}

// Error implements the error interface
func (e *ClientError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// New creates a new ClientError
func New(code ErrorCode, message string) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new ClientError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *ClientError) WithSuggestion(suggestion string) *ClientError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *ClientError) WithSuggestions(suggestions ...string) *ClientError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithStatus records the HTTP status the backend answered with
func (e *ClientError) WithStatus(status int) *ClientError {
	e.Status = status
	return e
}

// CodeOf returns the error code of err, or the empty code when err carries none
func CodeOf(err error) ErrorCode {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Code
	}
	return ""
}

// StatusOf returns the HTTP status carried by err, or 0 when there is none
func StatusOf(err error) int {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Status
	}
	return 0
}

// IsTransport reports whether err is a transport error: the request never
// produced a response. Distinguished from application errors for diagnostics
// only; callers treat both the same for control flow.
func IsTransport(err error) bool {
	return CodeOf(err) == ErrCodeAPITransport
}

// IsUnauthorized reports whether the backend rejected the bearer credential
func IsUnauthorized(err error) bool {
	return StatusOf(err) == 401
}

// Common error constructors for frequently used errors

// NewInvalidCredentialsError creates a login rejection error
func NewInvalidCredentialsError(cause error) *ClientError {
	return Wrap(ErrCodeAuthInvalidCredentials, "unable to sign in, please check your credentials and try again", cause).
		WithSuggestion("Verify the email and password are correct").
		WithSuggestion("Use 'eventplanner auth resend-otp' if your account is not verified yet")
}

// NewNotLoggedInError creates an error for commands that need a session
func NewNotLoggedInError() *ClientError {
	return New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestion("Run 'eventplanner auth login' to authenticate")
}

// NewForbiddenError creates an error for commands the current role may not use
func NewForbiddenError(role string) *ClientError {
	return New(ErrCodeAuthForbidden, fmt.Sprintf("your role (%s) does not have access to this command", role)).
		WithSuggestion("Run 'eventplanner auth status' to see your current account")
}

// NewStoreCorruptError creates an error for unreadable persisted session data
func NewStoreCorruptError(cause error) *ClientError {
	return Wrap(ErrCodeSessionStoreCorrupt, "stored session data is unreadable", cause).
		WithSuggestion("Log in again to create a fresh session")
}

// NewTransportError creates an error for requests that got no response
func NewTransportError(cause error) *ClientError {
	return Wrap(ErrCodeAPITransport, "could not reach the backend", cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Verify the configured API base URL")
}
