package platform

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// AdminStats is the aggregate counters block on the admin dashboard
type AdminStats struct {
	TotalUsers        int `json:"total_users"`
	TotalUniversities int `json:"total_universities"`
	TotalEvents       int `json:"total_events"`
	TotalBookings     int `json:"total_bookings"`
	ActiveEvents      int `json:"active_events"`
	PendingBookings   int `json:"pending_bookings"`
}

// University represents an organizer organization
type University struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Address     *string `json:"address,omitempty"`
	Contact     *string `json:"contact,omitempty"`
	Description *string `json:"description,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
	UserID      int     `json:"user_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`

	User *struct {
		ID    int     `json:"id"`
		Name  string  `json:"name"`
		Email string  `json:"email"`
		Phone *string `json:"phone,omitempty"`
	} `json:"user,omitempty"`
}

// CreateUniversityRequest onboards a university together with its login account
type CreateUniversityRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Phone          string `json:"phone,omitempty"`
	UniversityName string `json:"university_name" validate:"required"`
	Address        string `json:"address,omitempty"`
	Contact        string `json:"contact,omitempty"`
	Description    string `json:"description,omitempty"`
	LogoURL        string `json:"logo_url,omitempty" validate:"omitempty,url"`
}

// AdminStats retrieves the aggregate platform counters
func (c *Client) AdminStats(ctx context.Context) (*AdminStats, error) {
	resp, err := c.doRequest(ctx, "GET", "/admin/stats", nil)
	if err != nil {
		return nil, err
	}

	var stats AdminStats
	if err := parseResponse(resp, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// ListUsers retrieves a page of accounts, optionally filtered by role
func (c *Client) ListUsers(ctx context.Context, page, pageSize int, role Role) (*Paginated[User], error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}
	if role != "" {
		params.Set("role", string(role))
	}
	path := "/admin/users"
	if q := params.Encode(); q != "" {
		path += "?" + q
	}

	resp, err := c.doRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	var result Paginated[User]
	if err := parseResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// BanUser bans or unbans an account; action is "ban" or "unban"
func (c *Client) BanUser(ctx context.Context, userID int, action string) (*User, error) {
	path := fmt.Sprintf("/admin/users/%d/ban?action=%s", userID, url.QueryEscape(action))
	resp, err := c.doRequest(ctx, "PUT", path, nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := parseResponse(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// DeleteUser removes an account
func (c *Client) DeleteUser(ctx context.Context, userID int) error {
	resp, err := c.doRequest(ctx, "DELETE", fmt.Sprintf("/admin/users/%d", userID), nil)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// ListUniversities retrieves a page of universities
func (c *Client) ListUniversities(ctx context.Context, page, pageSize int) (*Paginated[University], error) {
	path := "/admin/universities" + pageQuery(page, pageSize)
	resp, err := c.doRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	var result Paginated[University]
	if err := parseResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// CreateUniversity onboards a new university and its organizer account
func (c *Client) CreateUniversity(ctx context.Context, req CreateUniversityRequest) (*University, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, "POST", "/admin/universities", req)
	if err != nil {
		return nil, err
	}

	var university University
	if err := parseResponse(resp, &university); err != nil {
		return nil, err
	}

	return &university, nil
}

// DeleteUniversity removes a university
func (c *Client) DeleteUniversity(ctx context.Context, universityID int) error {
	resp, err := c.doRequest(ctx, "DELETE", fmt.Sprintf("/admin/universities/%d", universityID), nil)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// AdminListEvents retrieves a page of events across all organizers
func (c *Client) AdminListEvents(ctx context.Context, page, pageSize int, status EventStatus) (*Paginated[Event], error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}
	if status != "" {
		params.Set("status", string(status))
	}
	path := "/admin/events"
	if q := params.Encode(); q != "" {
		path += "?" + q
	}

	resp, err := c.doRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	var result Paginated[Event]
	if err := parseResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// AdminSetEventStatus forces an event's lifecycle state
func (c *Client) AdminSetEventStatus(ctx context.Context, eventID int, status EventStatus) (*Event, error) {
	body := map[string]EventStatus{"status": status}
	resp, err := c.doRequest(ctx, "PATCH", fmt.Sprintf("/admin/events/%d/status", eventID), body)
	if err != nil {
		return nil, err
	}

	var event Event
	if err := parseResponse(resp, &event); err != nil {
		return nil, err
	}

	return &event, nil
}

// AdminDeleteEvent removes any event
func (c *Client) AdminDeleteEvent(ctx context.Context, eventID int) error {
	resp, err := c.doRequest(ctx, "DELETE", fmt.Sprintf("/admin/events/%d", eventID), nil)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}
