// Package session owns the process-wide authentication session: the bearer
// token, the identity it belongs to, and their persisted copies. All mutation
// goes through the Manager; everything else reads snapshots and subscribes to
// changes.
package session

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"sync"

	"github.com/yasminaliabdi/event-planner/internal/errors"
	"github.com/yasminaliabdi/event-planner/internal/log"
	"github.com/yasminaliabdi/event-planner/internal/platform"
)

// Backend is the slice of the API client the Manager needs
type Backend interface {
	Login(ctx context.Context, email, password string) (*platform.AuthResponse, error)
	Profile(ctx context.Context) (*platform.User, error)
}

// Snapshot is a read-only view of the session at one instant
type Snapshot struct {
	Token     string
	Identity  *platform.User
	Loading   bool
	LastError string
}

// Authenticated reports whether the snapshot carries an identity
func (s Snapshot) Authenticated() bool {
	return s.Identity != nil
}

// Subscriber is notified after every session mutation
type Subscriber func(Snapshot)

// Manager maintains the single authentication session
type Manager struct {
	backend  Backend
	store    *Store
	logger   *log.Logger
	navigate func(path string)

	mu        sync.Mutex
	token     string
	identity  *platform.User
	loading   bool
	lastError string

	// epoch increments whenever the session is cleared or replaced so that
	// late validation responses can detect they are stale.
	epoch uint64

	initialized bool

	subMu   sync.Mutex
	subs    map[int]Subscriber
	nextSub int
}

// Option configures a Manager
type Option func(*Manager)

// WithNavigator installs the navigation side effect Logout triggers
func WithNavigator(navigate func(path string)) Option {
	return func(m *Manager) {
		m.navigate = navigate
	}
}

// NewManager creates a session manager backed by the given API client and store
func NewManager(backend Backend, store *Store, logger *log.Logger, opts ...Option) *Manager {
	m := &Manager{
		backend: backend,
		store:   store,
		logger:  logger,
		subs:    make(map[int]Subscriber),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.DefaultLogger()
	}
	if m.navigate == nil {
		m.navigate = func(string) {}
	}
	return m
}

// Token implements platform.TokenSource with a live lookup, so requests
// issued after a logout go out without the old credential.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Current returns a snapshot of the session
func (m *Manager) Current() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	return Snapshot{
		Token:     m.token,
		Identity:  m.identity,
		Loading:   m.loading,
		LastError: m.lastError,
	}
}

// Subscribe registers fn to run after every mutation and returns an
// unsubscribe function
func (m *Manager) Subscribe(fn Subscriber) func() {
	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

func (m *Manager) notify(snap Snapshot) {
	m.subMu.Lock()
	subs := make([]Subscriber, 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.subMu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Initialize restores the persisted session. The restored state becomes
// visible immediately; the token is then validated against the profile
// endpoint and the validation outcome overwrites or clears the optimistic
// state. Failures never propagate: any problem degenerates to a cleared
// session plus a logged diagnostic. Repeat calls are no-ops.
func (m *Manager) Initialize(ctx context.Context) {
	m.mu.Lock()
	if m.initialized {
		m.mu.Unlock()
		return
	}
	m.initialized = true
	m.mu.Unlock()

	token, identityJSON, err := m.store.Load()
	if err != nil {
		if errors.CodeOf(err) == errors.ErrCodeSessionStoreCorrupt {
			m.logger.WithError(err).Warn("clearing unreadable session store")
			if clearErr := m.store.Clear(); clearErr != nil {
				m.logger.WithError(clearErr).Warn("failed to clear session store")
			}
		}
		m.settle()
		return
	}

	var identity platform.User
	if unmarshalErr := json.Unmarshal(identityJSON, &identity); unmarshalErr != nil || token == "" || !identity.Role.Valid() {
		// Fail safe: a half-usable stored session is treated as none at all.
		m.logger.Warn("discarding malformed stored session")
		if clearErr := m.store.Clear(); clearErr != nil {
			m.logger.WithError(clearErr).Warn("failed to clear session store")
		}
		m.settle()
		return
	}

	// Optimistic restore: make the stored session visible before validating
	// it, so an already-valid session is never bounced through login.
	m.mu.Lock()
	m.token = token
	m.identity = &identity
	m.loading = true
	epoch := m.epoch
	snap := m.snapshotLocked()
	m.mu.Unlock()
	m.notify(snap)

	profile, err := m.backend.Profile(ctx)

	m.mu.Lock()
	if m.epoch != epoch {
		// A logout or a fresh login happened while the validation call was
		// in flight; its outcome no longer describes this session.
		m.mu.Unlock()
		m.logger.Debug("discarding stale session validation result")
		return
	}

	if err != nil {
		m.token = ""
		m.identity = nil
		m.loading = false
		snap = m.snapshotLocked()
		m.mu.Unlock()

		m.logger.WithError(err).Info("stored session rejected, clearing it")
		if clearErr := m.store.Clear(); clearErr != nil {
			m.logger.WithError(clearErr).Warn("failed to clear session store")
		}
		m.notify(snap)
		return
	}

	m.identity = profile
	m.loading = false
	snap = m.snapshotLocked()
	m.mu.Unlock()
	m.notify(snap)
}

// settle marks initialization finished without touching the session
func (m *Manager) settle() {
	m.mu.Lock()
	m.loading = false
	snap := m.snapshotLocked()
	m.mu.Unlock()
	m.notify(snap)
}

// Login authenticates and, on success, installs and persists the returned
// session. On failure the session is untouched; the error message is recorded
// for display and the failure is returned to the caller.
func (m *Manager) Login(ctx context.Context, email, password string) (*platform.AuthResponse, error) {
	m.mu.Lock()
	m.loading = true
	m.lastError = ""
	snap := m.snapshotLocked()
	m.mu.Unlock()
	m.notify(snap)

	resp, err := m.backend.Login(ctx, email, password)
	if err != nil {
		loginErr := err
		if errors.StatusOf(err) == 401 {
			loginErr = errors.NewInvalidCredentialsError(err)
		}

		m.mu.Lock()
		m.loading = false
		m.lastError = messageOf(loginErr)
		snap = m.snapshotLocked()
		m.mu.Unlock()
		m.notify(snap)
		return nil, loginErr
	}

	if err := m.install(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SetSession unconditionally replaces the session with one issued outside the
// login flow, e.g. by OTP verification
func (m *Manager) SetSession(resp *platform.AuthResponse) error {
	return m.install(resp)
}

// install overwrites memory and storage together
func (m *Manager) install(resp *platform.AuthResponse) error {
	identityJSON, err := json.Marshal(resp.User)
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionStoreWrite, "cannot serialize identity", err)
	}

	m.mu.Lock()
	m.epoch++
	m.token = resp.AccessToken
	identity := resp.User
	m.identity = &identity
	m.loading = false
	m.lastError = ""

	saveErr := m.store.Save(resp.AccessToken, identityJSON)
	snap := m.snapshotLocked()
	m.mu.Unlock()

	if saveErr != nil {
		// The in-memory session stands; persistence is best effort here and
		// the next restart simply starts logged out.
		m.logger.WithError(saveErr).Warn("failed to persist session")
	}
	m.notify(snap)
	return nil
}

// Logout clears memory and storage and navigates to the login entry point.
// Calling it without an active session is a no-op beyond the navigation.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.epoch++
	m.token = ""
	m.identity = nil
	m.loading = false
	m.lastError = ""
	snap := m.snapshotLocked()
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		m.logger.WithError(err).Warn("failed to clear session store")
	}
	m.notify(snap)
	m.navigate("/login")
}

func messageOf(err error) string {
	var clientErr *errors.ClientError
	if stderrors.As(err, &clientErr) {
		return clientErr.Message
	}
	return err.Error()
}
