package guard

import (
	"testing"

	"github.com/yasminaliabdi/event-planner/internal/platform"
	"github.com/yasminaliabdi/event-planner/internal/session"
)

func identity(role platform.Role) *platform.User {
	return &platform.User{ID: 1, Name: "Someone", Email: "someone@example.com", Role: role}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		snap         session.Snapshot
		allowed      []platform.Role
		wantState    State
		wantRedirect string
	}{
		{
			name:      "loading never redirects",
			snap:      session.Snapshot{Loading: true},
			allowed:   []platform.Role{platform.RoleAdmin},
			wantState: Pending,
		},
		{
			name:      "loading with restored identity still pending",
			snap:      session.Snapshot{Loading: true, Token: "t", Identity: identity(platform.RoleAdmin)},
			allowed:   []platform.Role{platform.RoleAdmin},
			wantState: Pending,
		},
		{
			name:         "no identity goes to login",
			snap:         session.Snapshot{},
			allowed:      []platform.Role{platform.RoleAdmin},
			wantState:    Denied,
			wantRedirect: LoginRoute,
		},
		{
			name:         "wrong role goes to landing, not login",
			snap:         session.Snapshot{Token: "t", Identity: identity(platform.RoleUser)},
			allowed:      []platform.Role{platform.RoleAdmin},
			wantState:    Denied,
			wantRedirect: LandingRoute,
		},
		{
			name:      "matching role is allowed",
			snap:      session.Snapshot{Token: "t", Identity: identity(platform.RoleAdmin)},
			allowed:   []platform.Role{platform.RoleAdmin},
			wantState: Allowed,
		},
		{
			name:      "any of several allowed roles",
			snap:      session.Snapshot{Token: "t", Identity: identity(platform.RoleUniversity)},
			allowed:   []platform.Role{platform.RoleAdmin, platform.RoleUniversity},
			wantState: Allowed,
		},
		{
			name:      "empty allowed set admits any authenticated role",
			snap:      session.Snapshot{Token: "t", Identity: identity(platform.RoleUser)},
			allowed:   nil,
			wantState: Allowed,
		},
		{
			name:         "empty allowed set still requires authentication",
			snap:         session.Snapshot{},
			allowed:      nil,
			wantState:    Denied,
			wantRedirect: LoginRoute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.snap, tt.allowed)
			if got.State != tt.wantState {
				t.Errorf("state = %v, want %v", got.State, tt.wantState)
			}
			if got.RedirectTo != tt.wantRedirect {
				t.Errorf("redirect = %q, want %q", got.RedirectTo, tt.wantRedirect)
			}
			if got.State == Pending && got.RedirectTo != "" {
				t.Error("pending decisions must never carry a redirect")
			}
		})
	}
}

func TestIsPermitted(t *testing.T) {
	if !IsPermitted(platform.RoleUser, nil) {
		t.Error("empty allowed set must permit every role")
	}
	if IsPermitted(platform.RoleUser, []platform.Role{platform.RoleAdmin}) {
		t.Error("user must not be permitted in an admin-only region")
	}
	if !IsPermitted(platform.RoleAdmin, []platform.Role{platform.RoleAdmin, platform.RoleUniversity}) {
		t.Error("admin must be permitted when listed")
	}
}

func TestDefaultRouteForRole(t *testing.T) {
	tests := []struct {
		role platform.Role
		want string
	}{
		{platform.RoleAdmin, "/dashboard/admin"},
		{platform.RoleUniversity, "/dashboard/university"},
		{platform.RoleUser, "/dashboard/user"},
		{platform.Role("unknown"), LandingRoute},
	}

	for _, tt := range tests {
		if got := DefaultRouteForRole(tt.role); got != tt.want {
			t.Errorf("DefaultRouteForRole(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Pending, "pending"},
		{Denied, "denied"},
		{Allowed, "allowed"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
