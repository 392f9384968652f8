// Package auth owns the dashboard session lifecycle. A session is created by
// a successful backend login, held in memory, and mirrored to the session
// store so it survives a restart; there is no expiry, only explicit logout.
package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arsathrahman00-arsath/fpda/internal/domain/models"
)

// ErrNotAuthenticated marks requests without a resolvable session.
var ErrNotAuthenticated = errors.New("not authenticated")

// Backend is the slice of the API client the auth service needs.
type Backend interface {
	Register(ctx context.Context, reg models.Registration) error
	Login(ctx context.Context, creds models.Credentials) (*models.UserSession, error)
}

// SessionStore persists sessions outside process memory.
type SessionStore interface {
	SaveSession(ctx context.Context, id string, session models.UserSession) error
	FindSession(ctx context.Context, id string) (*models.UserSession, error)
	DeleteSession(ctx context.Context, id string) error
}

// Manager implements login, logout and session resolution.
type Manager struct {
	backend Backend
	store   SessionStore
	logger  *zap.Logger

	mu       sync.RWMutex
	sessions map[string]models.UserSession
}

// NewManager wires a session manager.
func NewManager(backend Backend, store SessionStore, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		backend:  backend,
		store:    store,
		logger:   logger,
		sessions: make(map[string]models.UserSession),
	}
}

// Register forwards a sign-up to the backend. No session is created.
func (m *Manager) Register(ctx context.Context, reg models.Registration) error {
	return m.backend.Register(ctx, reg)
}

// Login authenticates against the backend and opens a session. The returned
// ID goes into the dashboard cookie.
func (m *Manager) Login(ctx context.Context, creds models.Credentials) (string, *models.UserSession, error) {
	session, err := m.backend.Login(ctx, creds)
	if err != nil {
		return "", nil, err
	}

	id := uuid.NewString()

	m.mu.Lock()
	m.sessions[id] = *session
	m.mu.Unlock()

	if err := m.store.SaveSession(ctx, id, *session); err != nil {
		// The in-memory session still works; only restart survival is lost.
		m.logger.Error("failed to persist session", zap.Error(err), zap.String("user", session.UserName))
	}

	m.logger.Info("user logged in", zap.String("user", session.UserName), zap.String("role", session.RoleSelection))
	return id, session, nil
}

// Resolve maps a session ID back to its user, falling back to the store when
// memory misses (fresh process, old cookie).
func (m *Manager) Resolve(ctx context.Context, id string) (*models.UserSession, error) {
	if id == "" {
		return nil, ErrNotAuthenticated
	}

	m.mu.RLock()
	session, hit := m.sessions[id]
	m.mu.RUnlock()
	if hit {
		return &session, nil
	}

	restored, err := m.store.FindSession(ctx, id)
	if err != nil {
		m.logger.Error("session store lookup failed", zap.Error(err))
		return nil, ErrNotAuthenticated
	}
	if restored == nil {
		return nil, ErrNotAuthenticated
	}

	m.mu.Lock()
	m.sessions[id] = *restored
	m.mu.Unlock()

	return restored, nil
}

// Logout drops the session from memory and the store.
func (m *Manager) Logout(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()

	if err := m.store.DeleteSession(ctx, id); err != nil {
		return err
	}
	return nil
}
