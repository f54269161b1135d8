// Package session establishes who is acting for the whole application: it
// owns the persisted credential, derives the typed identity from it, and
// answers role-based access questions.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/aston-csic/csic-go/domain"
	"github.com/aston-csic/csic-go/rest/request"
	"github.com/aston-csic/csic-go/rest/response"
)

type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateAuthenticated
	StateUnauthenticated
)

// AuthAPI is the slice of the rest client the manager needs.
type AuthAPI interface {
	Login(ctx context.Context, req request.LoginRequest) (response.AuthResponse, error)
	Register(ctx context.Context, req request.SignupRequest) (response.AuthResponse, error)
}

type Manager struct {
	api   AuthAPI
	store CredentialStore

	mu       sync.RWMutex
	state    State
	identity *domain.Identity
}

func NewManager(api AuthAPI, store CredentialStore) *Manager {
	return &Manager{
		api:   api,
		store: store,
		state: StateUninitialized,
	}
}

// Initialize reads the persisted credential once at startup. A credential
// that no longer decodes is discarded and the session degrades to
// unauthenticated; a corrupted local token must not break startup.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateLoading

	token, err := m.store.Load()
	if err != nil {
		m.state = StateUnauthenticated
		return fmt.Errorf("m.store.Load -> %w", err)
	}
	if token == "" {
		m.state = StateUnauthenticated
		return nil
	}

	identity, err := DecodeCredential(token)
	if err != nil {
		zap.L().Warn("discarding undecodable credential", zap.Error(err))
		if clearErr := m.store.Clear(); clearErr != nil {
			zap.L().Warn("failed to clear credential", zap.Error(clearErr))
		}
		m.state = StateUnauthenticated
		return nil
	}

	m.identity = &identity
	m.state = StateAuthenticated

	return nil
}

func (m *Manager) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	req := request.LoginRequest{Email: email, Password: password}
	if err := req.Validate(); err != nil {
		return domain.Identity{}, err
	}

	resp, err := m.api.Login(ctx, req)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("m.api.Login -> %w", err)
	}

	return m.establish(resp, "")
}

// Signup merges the locally supplied name into the identity, since the
// credential itself may not carry it.
func (m *Manager) Signup(ctx context.Context, req request.SignupRequest) (domain.Identity, error) {
	if err := req.Validate(); err != nil {
		return domain.Identity{}, err
	}

	resp, err := m.api.Register(ctx, req)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("m.api.Register -> %w", err)
	}

	fullName := strings.TrimSpace(req.FirstName + " " + req.LastName)

	return m.establish(resp, fullName)
}

// establish decodes before persisting, so a failed login never leaves a
// partially written credential behind.
func (m *Manager) establish(resp response.AuthResponse, fullName string) (domain.Identity, error) {
	identity, err := DecodeCredential(resp.Token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("DecodeCredential -> %w", err)
	}

	if identity.Email == "" {
		identity.Email = resp.Email
	}
	if fullName != "" {
		identity.FullName = fullName
	}

	if err = m.store.Save(resp.Token); err != nil {
		return domain.Identity{}, fmt.Errorf("m.store.Save -> %w", err)
	}

	m.mu.Lock()
	m.identity = &identity
	m.state = StateAuthenticated
	m.mu.Unlock()

	return identity, nil
}

// Logout resets the session synchronously; no network call is involved.
func (m *Manager) Logout() error {
	m.mu.Lock()
	m.identity = nil
	m.state = StateUnauthenticated
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("m.store.Clear -> %w", err)
	}

	return nil
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state
}

func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

func (m *Manager) Identity() (domain.Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state != StateAuthenticated || m.identity == nil {
		return domain.Identity{}, false
	}

	return *m.identity, true
}

// IsAllowed reports whether the current identity may access something gated
// by the given roles. No required roles means open access.
func (m *Manager) IsAllowed(roles ...domain.Role) bool {
	if len(roles) == 0 {
		return true
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state != StateAuthenticated || m.identity == nil {
		return false
	}

	for _, role := range roles {
		if role == m.identity.Role {
			return true
		}
	}

	return false
}
