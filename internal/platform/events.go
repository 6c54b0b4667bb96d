package platform

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// EventStatus is the lifecycle state of an event
type EventStatus string

// Event lifecycle states
const (
	EventDraft     EventStatus = "draft"
	EventPublished EventStatus = "published"
	EventCancelled EventStatus = "cancelled"
	EventCompleted EventStatus = "completed"
)

// Event represents an event listing
type Event struct {
	ID           int         `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Date         string      `json:"date"`
	Time         string      `json:"time"`
	Location     string      `json:"location"`
	Capacity     int         `json:"capacity"`
	Price        string      `json:"price"`
	Status       EventStatus `json:"status"`
	OrganizerID  int         `json:"organizer_id"`
	UniversityID *int        `json:"university_id,omitempty"`
	ImageURL     *string     `json:"image_url,omitempty"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`

	Organizer *struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"organizer,omitempty"`
	University *struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"university,omitempty"`
}

// EventFilters narrows and pages an event listing
type EventFilters struct {
	Status       EventStatus
	OrganizerID  int
	UniversityID int
	StartDate    string
	EndDate      string
	OrderBy      string
	Direction    string
	Page         int
	PageSize     int
}

func (f EventFilters) query() string {
	params := url.Values{}
	if f.Status != "" {
		params.Set("status", string(f.Status))
	}
	if f.OrganizerID > 0 {
		params.Set("organizer_id", strconv.Itoa(f.OrganizerID))
	}
	if f.UniversityID > 0 {
		params.Set("university_id", strconv.Itoa(f.UniversityID))
	}
	if f.StartDate != "" {
		params.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		params.Set("end_date", f.EndDate)
	}
	if f.OrderBy != "" {
		params.Set("order_by", f.OrderBy)
	}
	if f.Direction != "" {
		params.Set("direction", f.Direction)
	}
	if f.Page > 0 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(f.PageSize))
	}
	return params.Encode()
}

// CreateEventRequest carries a new event listing
type CreateEventRequest struct {
	Title        string      `json:"title" validate:"required"`
	Description  string      `json:"description" validate:"required"`
	Date         string      `json:"date" validate:"required"`
	Time         string      `json:"time" validate:"required"`
	Location     string      `json:"location" validate:"required"`
	Capacity     int         `json:"capacity" validate:"required,gt=0"`
	Price        string      `json:"price" validate:"required"`
	UniversityID int         `json:"university_id,omitempty"`
	ImageURL     string      `json:"image_url,omitempty" validate:"omitempty,url"`
	Status       EventStatus `json:"status,omitempty"`
}

// UpdateEventRequest carries a partial event update; nil fields are untouched
type UpdateEventRequest struct {
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Date        *string      `json:"date,omitempty"`
	Time        *string      `json:"time,omitempty"`
	Location    *string      `json:"location,omitempty"`
	Capacity    *int         `json:"capacity,omitempty"`
	Price       *string      `json:"price,omitempty"`
	Status      *EventStatus `json:"status,omitempty"`
	ImageURL    *string      `json:"image_url,omitempty"`
}

// ListEvents retrieves a page of events matching the filters
func (c *Client) ListEvents(ctx context.Context, filters EventFilters) (*Paginated[Event], error) {
	path := "/events"
	if q := filters.query(); q != "" {
		path += "?" + q
	}
	resp, err := c.doRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	var page Paginated[Event]
	if err := parseResponse(resp, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// GetEvent retrieves an event by ID
func (c *Client) GetEvent(ctx context.Context, id int) (*Event, error) {
	resp, err := c.doRequest(ctx, "GET", fmt.Sprintf("/events/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var event Event
	if err := parseResponse(resp, &event); err != nil {
		return nil, err
	}

	return &event, nil
}

// CreateEvent creates a new event listing
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, "POST", "/events", req)
	if err != nil {
		return nil, err
	}

	var event Event
	if err := parseResponse(resp, &event); err != nil {
		return nil, err
	}

	return &event, nil
}

// UpdateEvent applies a partial update to an event
func (c *Client) UpdateEvent(ctx context.Context, id int, req UpdateEventRequest) (*Event, error) {
	resp, err := c.doRequest(ctx, "PUT", fmt.Sprintf("/events/%d", id), req)
	if err != nil {
		return nil, err
	}

	var event Event
	if err := parseResponse(resp, &event); err != nil {
		return nil, err
	}

	return &event, nil
}

// DeleteEvent removes an event listing
func (c *Client) DeleteEvent(ctx context.Context, id int) error {
	resp, err := c.doRequest(ctx, "DELETE", fmt.Sprintf("/events/%d", id), nil)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// SetEventStatus moves an event through its lifecycle
func (c *Client) SetEventStatus(ctx context.Context, id int, status EventStatus) (*Event, error) {
	body := map[string]EventStatus{"status": status}
	resp, err := c.doRequest(ctx, "PATCH", fmt.Sprintf("/events/%d/status", id), body)
	if err != nil {
		return nil, err
	}

	var event Event
	if err := parseResponse(resp, &event); err != nil {
		return nil, err
	}

	return &event, nil
}
