// Package auth owns the client's authentication state: the in-memory
// current user, its durable mirror in the session store, and the guard
// protecting authenticated commands.
package auth

import (
	"context"
	"log/slog"

	"github.com/akulikov/stockpile/internal/client/session"
	"github.com/akulikov/stockpile/internal/models"
	"github.com/akulikov/stockpile/internal/validation"
	pkgapi "github.com/akulikov/stockpile/pkg/api"
)

// API is the slice of the backend client the machine needs.
type API interface {
	SignIn(ctx context.Context, req pkgapi.SignInRequest) (*models.User, string, error)
	SignUp(ctx context.Context, req pkgapi.SignUpRequest) (*models.User, string, error)
	SignOut(ctx context.Context, token string) error
	ValidateUserToken(ctx context.Context, token string) (*models.User, error)
}

// Machine holds the current user for the lifetime of the process and keeps
// the session store synchronized with every transition. It is the only
// writer of authentication state; everything else reads through it.
// Not safe for concurrent use: commands run one at a time.
type Machine struct {
	api      API
	sessions *session.Store
	log      *slog.Logger
	user     *models.User
	token    string
}

// NewMachine creates the authentication state machine. logger may be nil.
func NewMachine(api API, sessions *session.Store, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Machine{
		api:      api,
		sessions: sessions,
		log:      logger,
	}
}

// Restore loads a previously persisted session at process start.
func (m *Machine) Restore(ctx context.Context) {
	m.user = m.sessions.User(ctx)
	m.token = m.sessions.Token(ctx)

	if m.user != nil {
		m.log.Debug("restored session", "email", m.user.Email)
	}
}

// CurrentUser returns the user of the active session, or nil when
// anonymous. Callers must treat the value as read-only and route every
// mutation through SetUser.
func (m *Machine) CurrentUser() *models.User {
	return m.user
}

// Token returns the session credential, or "" when anonymous.
func (m *Machine) Token() string {
	return m.token
}

// Login authenticates with the backend. On success the machine becomes
// Authenticated and the session store is updated; on failure state is
// unchanged and the error is returned for display.
func (m *Machine) Login(ctx context.Context, req pkgapi.SignInRequest) (*models.User, error) {
	if err := validation.ValidateSignIn(req); err != nil {
		return nil, err
	}

	user, token, err := m.api.SignIn(ctx, req)
	if err != nil {
		return nil, err
	}

	m.setSession(ctx, user, token)

	return user, nil
}

// Register creates an account; same contract as Login.
func (m *Machine) Register(ctx context.Context, req pkgapi.SignUpRequest) (*models.User, error) {
	if err := validation.ValidateSignUp(req); err != nil {
		return nil, err
	}

	user, token, err := m.api.SignUp(ctx, req)
	if err != nil {
		return nil, err
	}

	m.setSession(ctx, user, token)

	return user, nil
}

// Logout notifies the server (best effort) and unconditionally clears the
// local session. It never fails: losing connectivity must not keep a user
// signed in.
func (m *Machine) Logout(ctx context.Context) {
	if m.token != "" {
		if err := m.api.SignOut(ctx, m.token); err != nil {
			m.log.Warn("failed to sign out on server", "error", err)
		}
	}

	m.user = nil
	m.token = ""
	m.sessions.DeleteUser(ctx)
	m.sessions.DeleteToken(ctx)
}

// SetUser replaces the current user directly. Used by collaborators that
// obtain an updated record from other endpoints (guard, profile editor).
// The session store is synchronized as a side effect; nil clears the key.
func (m *Machine) SetUser(ctx context.Context, user *models.User) {
	m.user = user

	if user != nil {
		m.sessions.SetUser(ctx, user)
	} else {
		m.sessions.DeleteUser(ctx)
	}
}

// setSession applies a successful sign-in/sign-up result: in-memory state
// first, then the write-through to storage.
func (m *Machine) setSession(ctx context.Context, user *models.User, token string) {
	m.user = user
	m.token = token
	m.sessions.SetUser(ctx, user)
	m.sessions.SetToken(ctx, token)
}
