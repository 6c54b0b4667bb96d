package exitcode

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/yasminaliabdi/event-planner/internal/errors"
)

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"Success", Success, 0},
		{"GeneralError", GeneralError, 1},
		{"UsageError", UsageError, 2},
		{"AuthError", AuthError, 3},
		{"NetworkError", NetworkError, 4},
		{"ValidationError", ValidationError, 5},
		{"Interrupted", Interrupted, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("Exit code %s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			expected: Success,
		},
		{
			name:     "invalid credentials",
			err:      errors.NewInvalidCredentialsError(fmt.Errorf("401")),
			expected: AuthError,
		},
		{
			name:     "not logged in",
			err:      errors.NewNotLoggedInError(),
			expected: AuthError,
		},
		{
			name:     "role mismatch",
			err:      errors.NewForbiddenError("user"),
			expected: AuthError,
		},
		{
			name:     "rejected bearer token without code",
			err:      errors.New(errors.ErrCodeAPIRequest, "unauthorized").WithStatus(401),
			expected: AuthError,
		},
		{
			name:     "transport failure",
			err:      errors.NewTransportError(fmt.Errorf("connection refused")),
			expected: NetworkError,
		},
		{
			name:     "payload validation",
			err:      errors.New(errors.ErrCodeValidation, "capacity must be positive"),
			expected: ValidationError,
		},
		{
			name:     "unknown cobra command",
			err:      stderrors.New(`unknown command "evnets" for "eventplanner"`),
			expected: UsageError,
		},
		{
			name:     "unknown flag",
			err:      stderrors.New("unknown flag: --colour"),
			expected: UsageError,
		},
		{
			name:     "backend application error",
			err:      errors.New(errors.ErrCodeAPIRequest, "event is full").WithStatus(409),
			expected: GeneralError,
		},
		{
			name:     "plain error",
			err:      stderrors.New("something broke"),
			expected: GeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.expected {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
