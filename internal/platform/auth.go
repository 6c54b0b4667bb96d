package platform

import (
	"context"
	"fmt"
	"net/url"
)

// Role is the closed set of account roles the backend issues
type Role string

// Account roles
const (
	RoleUser       Role = "user"
	RoleUniversity Role = "university"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleUniversity, RoleAdmin:
		return true
	}
	return false
}

// User represents an account as the backend reports it
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     Role    `json:"role"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is what the backend answers with when it issues a session
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone,omitempty" validate:"omitempty"`
}

// RegisterResponse acknowledges a registration pending OTP verification
type RegisterResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// VerifyOTPRequest carries the one-time code mailed after registration
type VerifyOTPRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Code    string `json:"code" validate:"required"`
	Purpose string `json:"purpose,omitempty"`
}

// ResendOTPRequest asks the backend to mail a fresh code
type ResendOTPRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Purpose string `json:"purpose,omitempty"`
}

// MessageResponse is the generic acknowledgement shape
type MessageResponse struct {
	Message string `json:"message"`
}

// Login authenticates with the backend and returns the issued session
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	req := LoginRequest{
		Email:    email,
		Password: password,
	}
	if err := validatePayload(req); err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, "POST", "/auth/login", req)
	if err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := parseResponse(resp, &authResp); err != nil {
		return nil, err
	}

	return &authResp, nil
}

// Register creates a new account; the backend mails an OTP to verify it
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, "POST", "/auth/register", req)
	if err != nil {
		return nil, err
	}

	var regResp RegisterResponse
	if err := parseResponse(resp, &regResp); err != nil {
		return nil, err
	}

	return &regResp, nil
}

// VerifyOTP confirms a mailed code; on success the backend issues a session
func (c *Client) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*AuthResponse, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, "POST", "/auth/verify", req)
	if err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := parseResponse(resp, &authResp); err != nil {
		return nil, err
	}

	return &authResp, nil
}

// ResendOTP asks for a fresh verification code
func (c *Client) ResendOTP(ctx context.Context, req ResendOTPRequest) (*MessageResponse, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, "POST", "/auth/resend-otp", req)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := parseResponse(resp, &msg); err != nil {
		return nil, err
	}

	return &msg, nil
}

// Profile retrieves the account the current bearer credential belongs to
func (c *Client) Profile(ctx context.Context) (*User, error) {
	resp, err := c.doRequest(ctx, "GET", "/auth/profile", nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := parseResponse(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// DevOTP fetches the pending OTP for an email. Backend exposes this in
// development mode only.
func (c *Client) DevOTP(ctx context.Context, email string) (*DevOTPResponse, error) {
	path := fmt.Sprintf("/auth/dev/otp/%s", url.PathEscape(email))
	resp, err := c.doRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	var otp DevOTPResponse
	if err := parseResponse(resp, &otp); err != nil {
		return nil, err
	}

	return &otp, nil
}

// DevOTPResponse is the development-only OTP inspection payload
type DevOTPResponse struct {
	Code      string `json:"code"`
	Email     string `json:"email"`
	ExpiresAt string `json:"expires_at"`
}
