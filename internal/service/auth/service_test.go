package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arsathrahman00-arsath/fpda/internal/domain/models"
)

type fakeBackend struct {
	loginErr   error
	registered []models.Registration
}

func (f *fakeBackend) Register(_ context.Context, reg models.Registration) error {
	f.registered = append(f.registered, reg)
	return nil
}

func (f *fakeBackend) Login(_ context.Context, creds models.Credentials) (*models.UserSession, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &models.UserSession{
		UserName:      creds.UserName,
		UserCode:      "U042",
		RoleSelection: "kitchen",
	}, nil
}

type fakeStore struct {
	sessions map[string]models.UserSession
	saveErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: make(map[string]models.UserSession)}
}

func (f *fakeStore) SaveSession(_ context.Context, id string, s models.UserSession) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.sessions[id] = s
	return nil
}

func (f *fakeStore) FindSession(_ context.Context, id string) (*models.UserSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeStore) DeleteSession(_ context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

func TestManager_LoginOpensSession(t *testing.T) {
	store := newFakeStore()
	mgr := NewManager(&fakeBackend{}, store, nil)

	id, session, err := mgr.Login(context.Background(), models.Credentials{UserName: "arsath", Password: "pw"})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, "arsath", session.UserName)
	assert.Equal(t, "kitchen", session.RoleSelection)

	// Mirrored to the store for restart survival.
	assert.Contains(t, store.sessions, id)

	resolved, err := mgr.Resolve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, session, resolved)
}

func TestManager_LoginFailurePropagates(t *testing.T) {
	backend := &fakeBackend{loginErr: errors.New("invalid credentials")}
	mgr := NewManager(backend, newFakeStore(), nil)

	_, _, err := mgr.Login(context.Background(), models.Credentials{UserName: "x", Password: "y"})
	assert.Error(t, err)
}

func TestManager_LoginSurvivesStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.saveErr = errors.New("mongo down")
	mgr := NewManager(&fakeBackend{}, store, nil)

	id, _, err := mgr.Login(context.Background(), models.Credentials{UserName: "arsath", Password: "pw"})
	require.NoError(t, err)

	// In-memory session still resolves even though persistence failed.
	resolved, err := mgr.Resolve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "arsath", resolved.UserName)
}

func TestManager_ResolveRestoresFromStore(t *testing.T) {
	store := newFakeStore()
	store.sessions["old-cookie"] = models.UserSession{UserName: "arsath", UserCode: "U042", RoleSelection: "admin"}

	// Fresh manager simulates a restarted process with an old cookie.
	mgr := NewManager(&fakeBackend{}, store, nil)

	session, err := mgr.Resolve(context.Background(), "old-cookie")
	require.NoError(t, err)
	assert.Equal(t, "arsath", session.UserName)
	assert.Equal(t, "admin", session.RoleSelection)
}

func TestManager_ResolveUnknown(t *testing.T) {
	mgr := NewManager(&fakeBackend{}, newFakeStore(), nil)

	_, err := mgr.Resolve(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = mgr.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestManager_Logout(t *testing.T) {
	store := newFakeStore()
	mgr := NewManager(&fakeBackend{}, store, nil)

	id, _, err := mgr.Login(context.Background(), models.Credentials{UserName: "arsath", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, mgr.Logout(context.Background(), id))
	assert.NotContains(t, store.sessions, id)

	_, err = mgr.Resolve(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestManager_RegisterForwards(t *testing.T) {
	backend := &fakeBackend{}
	mgr := NewManager(backend, newFakeStore(), nil)

	reg := models.Registration{UserName: "new-user", Password: "pw", RoleSelection: "delivery"}
	require.NoError(t, mgr.Register(context.Background(), reg))
	require.Len(t, backend.registered, 1)
	assert.Equal(t, "new-user", backend.registered[0].UserName)
}
