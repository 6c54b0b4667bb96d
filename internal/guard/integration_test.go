package guard

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/yasminaliabdi/event-planner/internal/log"
	"github.com/yasminaliabdi/event-planner/internal/platform"
	"github.com/yasminaliabdi/event-planner/internal/session"
)

type profileBackend struct {
	user platform.User
}

func (b profileBackend) Login(ctx context.Context, email, password string) (*platform.AuthResponse, error) {
	return &platform.AuthResponse{AccessToken: "t", User: b.user}, nil
}

func (b profileBackend) Profile(ctx context.Context) (*platform.User, error) {
	u := b.user
	return &u, nil
}

func TestGuardLeavesPendingExactlyOncePerInitialization(t *testing.T) {
	user := platform.User{ID: 3, Name: "Dana", Email: "dana@example.com", Role: platform.RoleUser}
	store := session.NewStore(t.TempDir(), "p")
	identityJSON, err := json.Marshal(user)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save("t", identityJSON); err != nil {
		t.Fatal(err)
	}

	logger := log.New(log.Config{Level: log.LevelError, Format: log.FormatText, Output: log.NewOutput(io.Discard)})
	mgr := session.NewManager(profileBackend{user: user}, store, logger)

	allowed := []platform.Role{platform.RoleUser}
	transitions := 0
	redirectsWhilePending := 0
	prev := Pending
	unsubscribe := mgr.Subscribe(func(snap session.Snapshot) {
		decision := Evaluate(snap, allowed)
		if decision.State == Pending && decision.RedirectTo != "" {
			redirectsWhilePending++
		}
		if prev == Pending && decision.State != Pending {
			transitions++
		}
		prev = decision.State
	})
	defer unsubscribe()

	mgr.Initialize(context.Background())

	if transitions != 1 {
		t.Errorf("guard left pending %d times, want exactly once", transitions)
	}
	if redirectsWhilePending != 0 {
		t.Errorf("guard issued %d redirects while pending, want none", redirectsWhilePending)
	}
	if prev != Allowed {
		t.Errorf("final guard state = %v, want %v", prev, Allowed)
	}
}
