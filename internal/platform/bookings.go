package platform

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// BookingStatus is the review state of a booking
type BookingStatus string

// Booking review states
const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking represents a seat reservation on an event
type Booking struct {
	ID        int           `json:"id"`
	EventID   int           `json:"event_id"`
	UserID    int           `json:"user_id"`
	Seats     int           `json:"seats"`
	Status    BookingStatus `json:"status"`
	Notes     *string       `json:"notes,omitempty"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`

	Event *struct {
		ID       int    `json:"id"`
		Title    string `json:"title"`
		Date     string `json:"date"`
		Time     string `json:"time"`
		Location string `json:"location"`
	} `json:"event,omitempty"`
	User *struct {
		ID    int     `json:"id"`
		Name  string  `json:"name"`
		Email string  `json:"email"`
		Phone *string `json:"phone,omitempty"`
	} `json:"user,omitempty"`
}

// CreateBookingRequest reserves seats on an event
type CreateBookingRequest struct {
	Seats int    `json:"seats" validate:"required,gt=0"`
	Notes string `json:"notes,omitempty"`
}

func pageQuery(page, pageSize int) string {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}
	if q := params.Encode(); q != "" {
		return "?" + q
	}
	return ""
}

// MyBookings retrieves the caller's bookings
func (c *Client) MyBookings(ctx context.Context, page, pageSize int) (*Paginated[Booking], error) {
	path := "/bookings/me" + pageQuery(page, pageSize)
	resp, err := c.doRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	var result Paginated[Booking]
	if err := parseResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// EventBookings retrieves the bookings made against one event
func (c *Client) EventBookings(ctx context.Context, eventID, page, pageSize int) (*Paginated[Booking], error) {
	path := fmt.Sprintf("/bookings/event/%d%s", eventID, pageQuery(page, pageSize))
	resp, err := c.doRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	var result Paginated[Booking]
	if err := parseResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// CreateBooking reserves seats on an event. Capacity is enforced server-side.
func (c *Client) CreateBooking(ctx context.Context, eventID int, req CreateBookingRequest) (*Booking, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, "POST", fmt.Sprintf("/events/%d/book", eventID), req)
	if err != nil {
		return nil, err
	}

	var booking Booking
	if err := parseResponse(resp, &booking); err != nil {
		return nil, err
	}

	return &booking, nil
}

// SetBookingStatus moves a booking through review
func (c *Client) SetBookingStatus(ctx context.Context, id int, status BookingStatus) (*Booking, error) {
	body := map[string]BookingStatus{"status": status}
	resp, err := c.doRequest(ctx, "PUT", fmt.Sprintf("/bookings/%d", id), body)
	if err != nil {
		return nil, err
	}

	var booking Booking
	if err := parseResponse(resp, &booking); err != nil {
		return nil, err
	}

	return &booking, nil
}

// DeleteBooking removes a booking
func (c *Client) DeleteBooking(ctx context.Context, id int) error {
	resp, err := c.doRequest(ctx, "DELETE", fmt.Sprintf("/bookings/%d", id), nil)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}
