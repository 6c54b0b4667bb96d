package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeAuthNotLoggedIn, "not logged in")

	if err.Code != ErrCodeAuthNotLoggedIn {
		t.Errorf("expected code %s, got %s", ErrCodeAuthNotLoggedIn, err.Code)
	}
	if err.Message != "not logged in" {
		t.Errorf("expected message 'not logged in', got '%s'", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeAPITransport, "could not reach the backend", cause)

	if err.Code != ErrCodeAPITransport {
		t.Errorf("expected code %s, got %s", ErrCodeAPITransport, err.Code)
	}
	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	err := Wrap(ErrCodeAPIRequest, "booking rejected", fmt.Errorf("event is full")).
		WithSuggestion("Pick another event")

	msg := err.Error()
	if !strings.Contains(msg, "[API-001]") {
		t.Errorf("message should carry the code, got: %s", msg)
	}
	if !strings.Contains(msg, "event is full") {
		t.Errorf("message should carry the cause, got: %s", msg)
	}
	if !strings.Contains(msg, "Pick another event") {
		t.Errorf("message should carry suggestions, got: %s", msg)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"client error", New(ErrCodeValidation, "bad payload"), ErrCodeValidation},
		{"wrapped client error", fmt.Errorf("outer: %w", NewNotLoggedInError()), ErrCodeAuthNotLoggedIn},
		{"plain error", fmt.Errorf("plain"), ""},
		{"nil error", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusHelpers(t *testing.T) {
	err := New(ErrCodeAPIRequest, "unauthorized").WithStatus(401)

	if StatusOf(err) != 401 {
		t.Errorf("StatusOf() = %d, want 401", StatusOf(err))
	}
	if !IsUnauthorized(err) {
		t.Error("IsUnauthorized() should be true for status 401")
	}
	if IsUnauthorized(New(ErrCodeAPIRequest, "forbidden").WithStatus(403)) {
		t.Error("IsUnauthorized() should be false for status 403")
	}
}

func TestIsTransport(t *testing.T) {
	if !IsTransport(NewTransportError(fmt.Errorf("dial tcp: refused"))) {
		t.Error("IsTransport() should be true for transport errors")
	}
	if IsTransport(New(ErrCodeAPIRequest, "bad request").WithStatus(400)) {
		t.Error("IsTransport() should be false for application errors")
	}
}
