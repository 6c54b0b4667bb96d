// Package guard decides whether a session may enter a guarded region. The
// decision is a pure function of the session snapshot and the region's
// permitted roles, so it is re-evaluated on every navigation and on every
// session change rather than computed once.
package guard

import (
	"github.com/yasminaliabdi/event-planner/internal/platform"
	"github.com/yasminaliabdi/event-planner/internal/session"
)

// State is the guard's resolution for one evaluation
type State int

const (
	// Pending means the session is still being restored; render a waiting
	// indicator and never redirect.
	Pending State = iota
	// Denied means no session or a role mismatch; redirect.
	Denied
	// Allowed means the guarded content may render.
	Allowed
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Denied:
		return "denied"
	case Allowed:
		return "allowed"
	default:
		return "unknown"
	}
}

// Well-known navigation targets
const (
	LoginRoute   = "/login"
	LandingRoute = "/"
)

// Decision is the outcome of evaluating a guard
type Decision struct {
	State State

	// RedirectTo is set only when State is Denied. An unauthenticated caller
	// goes to login; an authenticated caller with the wrong role goes to the
	// landing page instead, since asking them to log in again fixes nothing.
	RedirectTo string
}

// Evaluate resolves the guard for a region permitting the given roles.
// An empty allowed set admits any authenticated caller.
func Evaluate(snap session.Snapshot, allowed []platform.Role) Decision {
	if snap.Loading {
		return Decision{State: Pending}
	}

	if snap.Identity == nil {
		return Decision{State: Denied, RedirectTo: LoginRoute}
	}

	if !IsPermitted(snap.Identity.Role, allowed) {
		return Decision{State: Denied, RedirectTo: LandingRoute}
	}

	return Decision{State: Allowed}
}

// IsPermitted reports whether role is in the allowed set. An empty set
// permits every role.
func IsPermitted(role platform.Role, allowed []platform.Role) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == role {
			return true
		}
	}
	return false
}

// DefaultRouteForRole is the single place the post-login destination is
// computed; every caller that branches on role routes through it.
func DefaultRouteForRole(role platform.Role) string {
	switch role {
	case platform.RoleAdmin:
		return "/dashboard/admin"
	case platform.RoleUniversity:
		return "/dashboard/university"
	case platform.RoleUser:
		return "/dashboard/user"
	default:
		return LandingRoute
	}
}
