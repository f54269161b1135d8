package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aston-csic/csic-go/domain"
	"github.com/aston-csic/csic-go/rest"
	"github.com/aston-csic/csic-go/rest/request"
	"github.com/aston-csic/csic-go/rest/response"
)

type fakeAuthAPI struct {
	loginResp    response.AuthResponse
	loginErr     error
	loginCalls   int
	registerResp response.AuthResponse
	registerErr  error
}

func (f *fakeAuthAPI) Login(_ context.Context, _ request.LoginRequest) (response.AuthResponse, error) {
	f.loginCalls++
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) Register(_ context.Context, _ request.SignupRequest) (response.AuthResponse, error) {
	return f.registerResp, f.registerErr
}

func TestManagerInitialize(t *testing.T) {
	t.Run("empty store leaves the session unauthenticated", func(t *testing.T) {
		m := NewManager(&fakeAuthAPI{}, NewMemoryStore())

		require.NoError(t, m.Initialize())

		assert.Equal(t, StateUnauthenticated, m.State())
		assert.False(t, m.IsAuthenticated())
		_, ok := m.Identity()
		assert.False(t, ok)
	})

	t.Run("valid persisted credential restores the identity", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Save(signToken(t, jwt.MapClaims{
			"sub": "u1", "email": "alice@csic.club", "role": "Admin",
			"exp": time.Now().Add(time.Hour).Unix(),
		})))
		m := NewManager(&fakeAuthAPI{}, store)

		require.NoError(t, m.Initialize())

		require.True(t, m.IsAuthenticated())
		identity, ok := m.Identity()
		require.True(t, ok)
		assert.Equal(t, "u1", identity.ID)
		assert.Equal(t, domain.RoleAdmin, identity.Role)
	})

	t.Run("undecodable credential is discarded silently", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Save("corrupted"))
		m := NewManager(&fakeAuthAPI{}, store)

		require.NoError(t, m.Initialize())

		assert.Equal(t, StateUnauthenticated, m.State())
		token, err := store.Load()
		require.NoError(t, err)
		assert.Empty(t, token, "the corrupt credential should have been cleared")
	})

	t.Run("expired credential is discarded silently", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Save(signToken(t, jwt.MapClaims{
			"sub": "u1", "exp": time.Now().Add(-time.Hour).Unix(),
		})))
		m := NewManager(&fakeAuthAPI{}, store)

		require.NoError(t, m.Initialize())

		assert.Equal(t, StateUnauthenticated, m.State())
	})
}

func TestManagerLogin(t *testing.T) {
	validToken := func(t *testing.T) string {
		return signToken(t, jwt.MapClaims{
			"sub": "u1", "email": "alice@csic.club", "name": "Alice Doe", "role": "Staff",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
	}

	t.Run("success persists the credential and authenticates", func(t *testing.T) {
		store := NewMemoryStore()
		api := &fakeAuthAPI{loginResp: response.AuthResponse{Token: validToken(t)}}
		m := NewManager(api, store)
		require.NoError(t, m.Initialize())

		identity, err := m.Login(context.Background(), "alice@csic.club", "Passw0rd1")

		require.NoError(t, err)
		assert.Equal(t, domain.RoleStaff, identity.Role)
		assert.True(t, m.IsAuthenticated())
		token, ok := store.Token()
		require.True(t, ok)
		assert.NotEmpty(t, token)
	})

	t.Run("rejected credentials leave no trace", func(t *testing.T) {
		store := NewMemoryStore()
		api := &fakeAuthAPI{loginErr: &rest.AuthenticationError{Message: "invalid email or password"}}
		m := NewManager(api, store)
		require.NoError(t, m.Initialize())

		_, err := m.Login(context.Background(), "alice@csic.club", "wrongpass1")

		var authErr *rest.AuthenticationError
		require.ErrorAs(t, err, &authErr)
		assert.False(t, m.IsAuthenticated())
		_, ok := store.Token()
		assert.False(t, ok, "nothing should be persisted on a failed login")
	})

	t.Run("undecodable response token is not persisted", func(t *testing.T) {
		store := NewMemoryStore()
		api := &fakeAuthAPI{loginResp: response.AuthResponse{Token: "garbage"}}
		m := NewManager(api, store)

		_, err := m.Login(context.Background(), "alice@csic.club", "Passw0rd1")

		require.ErrorIs(t, err, ErrInvalidCredential)
		_, ok := store.Token()
		assert.False(t, ok)
	})

	t.Run("invalid input never reaches the network", func(t *testing.T) {
		api := &fakeAuthAPI{}
		m := NewManager(api, NewMemoryStore())

		_, err := m.Login(context.Background(), "not-an-email", "Passw0rd1")

		require.Error(t, err)
		assert.Zero(t, api.loginCalls)
	})
}

func TestManagerSignupMergesFullName(t *testing.T) {
	store := NewMemoryStore()
	api := &fakeAuthAPI{registerResp: response.AuthResponse{Token: signToken(t, jwt.MapClaims{
		"sub": "u1", "email": "new@csic.club", "role": "Student",
		"exp": time.Now().Add(time.Hour).Unix(),
	})}}
	m := NewManager(api, store)

	identity, err := m.Signup(context.Background(), request.SignupRequest{
		FirstName: "New",
		LastName:  "Member",
		Email:     "new@csic.club",
		Password:  "Passw0rd1",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Member", identity.FullName)
	assert.Equal(t, domain.RoleStudent, identity.Role)
	assert.True(t, m.IsAuthenticated())
}

func TestManagerLogout(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(signToken(t, jwt.MapClaims{
		"sub": "u1", "role": "Admin", "exp": time.Now().Add(time.Hour).Unix(),
	})))
	m := NewManager(&fakeAuthAPI{}, store)
	require.NoError(t, m.Initialize())
	require.True(t, m.IsAuthenticated())

	require.NoError(t, m.Logout())

	assert.Equal(t, StateUnauthenticated, m.State())
	_, ok := store.Token()
	assert.False(t, ok)
	_, ok = m.Identity()
	assert.False(t, ok)
}

func TestManagerIsAllowed(t *testing.T) {
	authedAs := func(t *testing.T, role string) *Manager {
		store := NewMemoryStore()
		require.NoError(t, store.Save(signToken(t, jwt.MapClaims{
			"sub": "u1", "role": role, "exp": time.Now().Add(time.Hour).Unix(),
		})))
		m := NewManager(&fakeAuthAPI{}, store)
		require.NoError(t, m.Initialize())
		return m
	}

	t.Run("no required roles means open access", func(t *testing.T) {
		m := NewManager(&fakeAuthAPI{}, NewMemoryStore())
		require.NoError(t, m.Initialize())

		assert.True(t, m.IsAllowed())
	})

	t.Run("unauthenticated fails any role gate", func(t *testing.T) {
		m := NewManager(&fakeAuthAPI{}, NewMemoryStore())
		require.NoError(t, m.Initialize())

		assert.False(t, m.IsAllowed(domain.RoleStudent))
	})

	t.Run("admin passes an admin gate and fails a student gate", func(t *testing.T) {
		m := authedAs(t, "Admin")

		assert.True(t, m.IsAllowed(domain.RoleAdmin))
		assert.True(t, m.IsAllowed(domain.RoleStaff, domain.RoleAdmin))
		assert.False(t, m.IsAllowed(domain.RoleStudent))
	})

	t.Run("student passes a student gate", func(t *testing.T) {
		m := authedAs(t, "Student")

		assert.True(t, m.IsAllowed(domain.RoleStudent))
		assert.False(t, m.IsAllowed(domain.RoleAdmin))
	})
}

func TestManagerInitializePropagatesStoreErrors(t *testing.T) {
	m := NewManager(&fakeAuthAPI{}, failingStore{})

	err := m.Initialize()

	require.Error(t, err)
	assert.Equal(t, StateUnauthenticated, m.State())
}

type failingStore struct{}

func (failingStore) Load() (string, error) { return "", errors.New("disk gone") }
func (failingStore) Save(string) error     { return errors.New("disk gone") }
func (failingStore) Clear() error          { return errors.New("disk gone") }
func (failingStore) Token() (string, bool) { return "", false }
