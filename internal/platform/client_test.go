package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yasminaliabdi/event-planner/internal/errors"
)

func TestBearerDecoration(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode(User{ID: 1, Role: RoleUser})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	// Before any session exists, requests go out unauthenticated.
	_, err := client.Profile(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth)
	require.NotEmpty(t, gotRequestID, "every request carries a request id")

	client.SetToken("token-123")
	_, err = client.Profile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer token-123", gotAuth)
}

func TestTokenSourceIsConsultedPerRequest(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(User{ID: 1, Role: RoleUser})
	}))
	defer server.Close()

	current := ""
	client := NewClient(server.URL, time.Second)
	client.SetTokenSource(tokenFunc(func() string { return current }))

	_, err := client.Profile(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth)

	current = "fresh"
	_, err = client.Profile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer fresh", gotAuth)
}

type tokenFunc func() string

func (f tokenFunc) Token() string { return f() }

func TestApplicationErrorCarriesBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid email or password"})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Login(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)
	require.Equal(t, errors.ErrCodeAPIRequest, errors.CodeOf(err))
	require.Equal(t, 401, errors.StatusOf(err))
	require.Contains(t, err.Error(), "invalid email or password")
	require.False(t, errors.IsTransport(err))
}

func TestApplicationErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Profile(context.Background())
	require.Error(t, err)
	require.Equal(t, 500, errors.StatusOf(err))
	require.Contains(t, err.Error(), "status 500")
}

func TestTransportErrorIsDistinct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	client := NewClient(server.URL, time.Second)
	_, err := client.Profile(context.Background())
	require.Error(t, err)
	require.True(t, errors.IsTransport(err))
	require.Zero(t, errors.StatusOf(err), "transport errors carry no HTTP status")
}

func TestLoginValidatesPayloadBeforeSending(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Login(context.Background(), "not-an-email", "pw")
	require.Error(t, err)
	require.Equal(t, errors.ErrCodeValidation, errors.CodeOf(err))
	require.False(t, called, "invalid payloads never reach the wire")
}

func TestListEventsPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/events", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "published", q.Get("status"))
		require.Equal(t, "2", q.Get("page"))
		require.Equal(t, "10", q.Get("page_size"))

		_ = json.NewEncoder(w).Encode(Paginated[Event]{
			Data: []Event{{ID: 11, Title: "Open Day", Status: EventPublished}},
			Meta: PageMeta{Total: 25, Page: 2, PageSize: 10, Pages: 3, HasNextPage: true, HasPrevPage: true},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	page, err := client.ListEvents(context.Background(), EventFilters{
		Status:   EventPublished,
		Page:     2,
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	require.Equal(t, "Open Day", page.Data[0].Title)
	require.True(t, page.Meta.HasNextPage)
}

func TestVerifyOTPReturnsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/verify", r.URL.Path)

		var req VerifyOTPRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "123456", req.Code)

		_ = json.NewEncoder(w).Encode(AuthResponse{
			AccessToken: "issued-token",
			User:        User{ID: 5, Email: req.Email, Role: RoleUser},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	resp, err := client.VerifyOTP(context.Background(), VerifyOTPRequest{
		Email: "new@user.dev",
		Code:  "123456",
	})
	require.NoError(t, err)
	require.Equal(t, "issued-token", resp.AccessToken)
	require.Equal(t, RoleUser, resp.User.Role)
}
