// Package session holds the current identity: the bearer token and the
// user it belongs to. The user is set if and only if a token is held; any
// authentication failure clears both together.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/NangRotha/Cloths-Frontend-User/internal/domain"
)

type Status string

const (
	StatusAnonymous      Status = "ANONYMOUS"
	StatusAuthenticating Status = "AUTHENTICATING"
	StatusAuthenticated  Status = "AUTHENTICATED"
)

var ErrLoginInProgress = errors.New("a login attempt is already in progress")

// AuthAPI is the slice of the shop API the session manager needs.
type AuthAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (string, domain.User, error)
	Register(ctx context.Context, reg domain.Registration) error
	Profile(ctx context.Context) (domain.User, error)
}

type Manager struct {
	api    AuthAPI
	tokens *TokenStore
	log    zerolog.Logger

	mu     sync.Mutex
	status Status
	user   *domain.User
}

func NewManager(api AuthAPI, tokens *TokenStore, log zerolog.Logger) *Manager {
	return &Manager{
		api:    api,
		tokens: tokens,
		status: StatusAnonymous,
		log:    log,
	}
}

// Resume validates a token left over from a previous run. An invalid or
// expired token is discarded and the session stays anonymous. This is the
// only state transition not triggered by an explicit user action.
func (m *Manager) Resume(ctx context.Context) {
	if _, ok := m.tokens.Token(ctx); !ok {
		return
	}

	user, err := m.api.Profile(ctx)
	if err != nil {
		m.log.Warn().Err(err).Msg("stored token rejected, clearing it")
		m.clear(ctx)
		return
	}
	m.commit(user)
}

// Login exchanges credentials for a token. On failure the session remains
// anonymous and the returned error carries the server's message.
func (m *Manager) Login(ctx context.Context, creds domain.Credentials) error {
	if err := m.beginAuth(); err != nil {
		return err
	}

	token, user, err := m.api.Login(ctx, creds)
	if err != nil {
		m.clear(ctx)
		return fmt.Errorf("login: %w", err)
	}

	if err := m.tokens.Save(ctx, token); err != nil {
		m.clear(ctx)
		return err
	}
	m.commit(user)
	return nil
}

// Register creates the account but does not authenticate. The caller logs
// in separately afterwards.
func (m *Manager) Register(ctx context.Context, reg domain.Registration) error {
	if err := m.api.Register(ctx, reg); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// LoginWithGoogle accepts the token the redirect-based OAuth flow produced
// outside this codebase. The token is stored first, then proven by fetching
// the profile; a failed fetch discards it again.
func (m *Manager) LoginWithGoogle(ctx context.Context, token string) error {
	if err := m.beginAuth(); err != nil {
		return err
	}

	if err := m.tokens.Save(ctx, token); err != nil {
		m.clear(ctx)
		return err
	}

	user, err := m.api.Profile(ctx)
	if err != nil {
		m.clear(ctx)
		return fmt.Errorf("google login: %w", err)
	}
	m.commit(user)
	return nil
}

// Logout drops token and user unconditionally. Safe to call repeatedly.
func (m *Manager) Logout(ctx context.Context) {
	m.clear(ctx)
}

// ForceLogout is the global 401 hook: any shop API call that comes back
// unauthorized lands here, regardless of which call it was.
func (m *Manager) ForceLogout() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	m.log.Warn().Msg("unauthorized response, forcing logout")
	m.clear(ctx)
}

func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *Manager) IsAuthenticated() bool {
	return m.Status() == StatusAuthenticated
}

// User returns the authenticated user, or nil when anonymous.
func (m *Manager) User() *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

// beginAuth moves the session into the authenticating state, refusing
// reentrant attempts while a call is outstanding.
func (m *Manager) beginAuth() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status == StatusAuthenticating {
		return ErrLoginInProgress
	}
	m.status = StatusAuthenticating
	return nil
}

func (m *Manager) commit(user domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &user
	m.status = StatusAuthenticated
}

// clear resets token and user together, keeping the token/user invariant.
func (m *Manager) clear(ctx context.Context) {
	if err := m.tokens.Clear(ctx); err != nil {
		m.log.Warn().Err(err).Msg("clear stored token")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	m.status = StatusAnonymous
}
