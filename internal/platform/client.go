// Package platform is the HTTP client for the event planner REST backend.
// It decorates outgoing requests with the current bearer credential and
// separates transport failures (no response at all) from application errors
// (non-2xx responses).
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/yasminaliabdi/event-planner/internal/errors"
)

// TokenSource yields the bearer credential to attach to outgoing requests.
// An empty string means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource holding a fixed credential
type StaticToken string

// Token returns the credential
func (t StaticToken) Token() string { return string(t) }

// Client is the event planner API client
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	tokens TokenSource
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewClient creates a new API client. baseURL includes the /api prefix.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetTokenSource installs the source consulted on every request
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// SetToken installs a fixed bearer credential
func (c *Client) SetToken(token string) {
	c.tokens = StaticToken(token)
}

// doRequest performs an HTTP request with authentication
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeAPIRequest, "failed to marshal request body", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAPIRequest, "failed to create request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.NewTransportError(err)
	}

	return resp, nil
}

// apiError is the error payload shape the backend answers with
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// parseResponse parses the response body into the target struct
func parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		message := fmt.Sprintf("request failed with status %d", resp.StatusCode)
		var errResp apiError
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Message != "" {
				message = errResp.Message
			} else if errResp.Error != "" {
				message = errResp.Error
			}
		}

		return errors.New(errors.ErrCodeAPIRequest, message).WithStatus(resp.StatusCode)
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return errors.Wrap(errors.ErrCodeAPIDecode, "failed to decode response", err)
		}
	}

	return nil
}

// validatePayload rejects malformed payloads before they reach the wire
func validatePayload(payload interface{}) error {
	if err := validate.Struct(payload); err != nil {
		return errors.Wrap(errors.ErrCodeValidation, "invalid request payload", err)
	}
	return nil
}

// PageMeta describes one page of a paginated listing
type PageMeta struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	Pages       int  `json:"pages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// Paginated is a page of results plus its meta block
type Paginated[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}
