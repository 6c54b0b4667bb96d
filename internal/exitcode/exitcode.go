package exitcode

import (
	"os"
	"strings"

	"github.com/yasminaliabdi/event-planner/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication or authorization failure
	AuthError = 3

	// NetworkError indicates a network connectivity issue
	NetworkError = 4

	// ValidationError indicates a rejected payload before it was sent
	ValidationError = 5

	// Interrupted indicates the process was stopped by a signal
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch errors.CodeOf(err) {
	case errors.ErrCodeAuthInvalidCredentials,
		errors.ErrCodeAuthNotLoggedIn,
		errors.ErrCodeAuthTokenRejected,
		errors.ErrCodeAuthOTPInvalid,
		errors.ErrCodeAuthForbidden:
		return AuthError
	case errors.ErrCodeAPITransport:
		return NetworkError
	case errors.ErrCodeValidation:
		return ValidationError
	}

	if errors.IsUnauthorized(err) {
		return AuthError
	}

	// Errors raised by cobra itself carry no code.
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unknown command") || strings.Contains(errMsg, "unknown flag") {
		return UsageError
	}

	return GeneralError
}
