package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/petcare-cl/petcare-cli/internal/client/api"
	"github.com/petcare-cl/petcare-cli/internal/client/storage"
	"github.com/petcare-cl/petcare-cli/pkg/api"
)

// memStore is an in-memory storage.Store. failWrites makes the session-pair
// writes (token and user) fail while the rest keeps working.
type memStore struct {
	user       *api.User
	token      string
	refresh    string
	deviceID   string
	failWrites bool
}

var _ storage.Store = (*memStore)(nil)

func (m *memStore) SaveToken(_ context.Context, token string) bool {
	if m.failWrites {
		return false
	}
	m.token = token
	return true
}
func (m *memStore) Token(context.Context) string      { return m.token }
func (m *memStore) RemoveToken(context.Context) bool  { m.token = ""; return true }
func (m *memStore) SaveUser(_ context.Context, u *api.User) bool {
	if m.failWrites {
		return false
	}
	m.user = u
	return true
}
func (m *memStore) User(context.Context) *api.User  { return m.user }
func (m *memStore) RemoveUser(context.Context) bool { m.user = nil; return true }
func (m *memStore) SaveRefreshToken(_ context.Context, token string) bool {
	m.refresh = token
	return true
}
func (m *memStore) RefreshToken(context.Context) string     { return m.refresh }
func (m *memStore) RemoveRefreshToken(context.Context) bool { m.refresh = ""; return true }
func (m *memStore) SaveDeviceID(_ context.Context, id string) bool {
	m.deviceID = id
	return true
}
func (m *memStore) DeviceID(context.Context) string { return m.deviceID }
func (m *memStore) PurgeCredentials(ctx context.Context) bool {
	tokenOK := m.RemoveToken(ctx)
	userOK := m.RemoveUser(ctx)
	return tokenOK && userOK
}
func (m *memStore) Clear(context.Context) bool {
	*m = memStore{}
	return true
}

// newFixture wires a controller to a real pipeline against handler.
func newFixture(t *testing.T, handler http.HandlerFunc) (*Controller, *memStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := &memStore{}
	client := apiclient.NewClient(server.URL, 0, store)
	return NewController(client, store), store
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func loginHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			var req api.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "user@test.cl", req.Email)
			assert.Equal(t, "secret1", req.Password)
			writeJSON(t, w, http.StatusOK, map[string]any{
				"success": true,
				"data": map[string]any{
					"token": "abc",
					"user":  map[string]any{"id": 1, "firstName": "Ana", "email": "user@test.cl"},
				},
			})
		default:
			writeJSON(t, w, http.StatusNotFound, map[string]any{"success": false, "message": "not found"})
		}
	}
}

func TestLogin_HappyPath(t *testing.T) {
	controller, store := newFixture(t, loginHandler(t))
	ctx := context.Background()

	result := controller.Login(ctx, "user@test.cl", "secret1")

	require.True(t, result.Success)
	assert.Equal(t, StateAuthenticated, controller.State())
	assert.Equal(t, "Ana", result.User.FirstName)
	assert.Equal(t, "abc", store.Token(ctx))

	snapshot := controller.Snapshot()
	assert.True(t, snapshot.Authenticated)
	assert.False(t, snapshot.Loading)
	assert.Equal(t, "Ana", snapshot.User.FirstName)
	assert.Equal(t, uint64(1), snapshot.Epoch)
}

func TestLogin_RejectsInvalidForm(t *testing.T) {
	controller, store := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request should leave the device")
	})

	result := controller.Login(context.Background(), "not-an-email", "secret1")

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Err)
	assert.Empty(t, store.token)
}

func TestLogin_BackendRejection(t *testing.T) {
	controller, _ := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]any{
			"success": false, "message": "Credenciales incorrectas",
		})
	})

	result := controller.Login(context.Background(), "user@test.cl", "wrong-password")

	assert.False(t, result.Success)
	assert.Equal(t, "Credenciales incorrectas", result.Err)
	assert.Equal(t, StateUnknown, controller.State())
}

func TestLogin_PersistenceFailure_LeavesMemoryUntouched(t *testing.T) {
	controller, store := newFixture(t, loginHandler(t))
	store.failWrites = true

	result := controller.Login(context.Background(), "user@test.cl", "secret1")

	assert.False(t, result.Success)
	assert.NotEqual(t, StateAuthenticated, controller.State())
	assert.Nil(t, controller.Snapshot().User)
	assert.Equal(t, uint64(0), controller.Epoch())
}

func TestLogin_PersistenceFailure_KeepsNoRefreshToken(t *testing.T) {
	controller, store := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"token":        "abc",
				"refreshToken": "refresh-1",
				"user":         map[string]any{"id": 1, "firstName": "Ana", "email": "user@test.cl"},
			},
		})
	})
	ctx := context.Background()
	store.failWrites = true

	result := controller.Login(ctx, "user@test.cl", "secret1")

	assert.False(t, result.Success)
	assert.Empty(t, store.RefreshToken(ctx))
}

func TestLogin_SavesRefreshToken(t *testing.T) {
	controller, store := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"token":        "abc",
				"refreshToken": "refresh-1",
				"user":         map[string]any{"id": 1, "firstName": "Ana", "email": "user@test.cl"},
			},
		})
	})
	ctx := context.Background()

	result := controller.Login(ctx, "user@test.cl", "secret1")

	require.True(t, result.Success)
	assert.Equal(t, "refresh-1", store.RefreshToken(ctx))
}

func TestBootstrap_NoStoredSession(t *testing.T) {
	controller, _ := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("nothing stored, nothing to validate")
	})

	result := controller.Bootstrap(context.Background())

	assert.False(t, result.Success)
	assert.Equal(t, StateUnauthenticated, controller.State())
	assert.False(t, controller.Snapshot().Loading)
	assert.Equal(t, uint64(0), controller.Epoch())
}

func TestBootstrap_ValidStoredSession(t *testing.T) {
	controller, store := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/me", r.URL.Path)
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"id": 1, "firstName": "Ana Fresca", "email": "user@test.cl"},
		})
	})
	ctx := context.Background()
	store.token = "abc"
	store.user = &api.User{ID: 1, FirstName: "Ana"}

	result := controller.Bootstrap(ctx)

	require.True(t, result.Success)
	assert.Equal(t, StateAuthenticated, controller.State())
	// The cached snapshot is refreshed from the validation response.
	assert.Equal(t, "Ana Fresca", controller.Snapshot().User.FirstName)
	assert.Equal(t, "Ana Fresca", store.User(ctx).FirstName)
	assert.Equal(t, "abc", store.Token(ctx))
}

func TestBootstrap_RejectedStoredToken(t *testing.T) {
	controller, store := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{
			"success": false, "message": "Token inválido",
		})
	})
	ctx := context.Background()
	store.token = "stale"
	store.user = &api.User{ID: 1, FirstName: "Ana"}

	result := controller.Bootstrap(ctx)

	assert.False(t, result.Success)
	assert.Equal(t, StateUnauthenticated, controller.State())
	assert.Empty(t, store.Token(ctx))
	assert.Nil(t, store.User(ctx))
	assert.Nil(t, controller.Snapshot().User)
}

func TestUnauthorizedCall_ThenRevalidation(t *testing.T) {
	// Start authenticated, then the server starts answering 401.
	rejecting := false
	controller, store := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if rejecting {
			writeJSON(t, w, http.StatusUnauthorized, map[string]any{
				"success": false, "message": "Token expirado",
			})
			return
		}
		loginHandler(t)(w, r)
	})
	ctx := context.Background()

	require.True(t, controller.Login(ctx, "user@test.cl", "secret1").Success)
	epochWhileAuthenticated := controller.Epoch()
	rejecting = true

	// Any 401 purges the stored credentials at the pipeline level.
	controller.RefreshProfile(ctx)
	assert.Empty(t, store.Token(ctx))

	// The next startup-style validation resolves to Unauthenticated and,
	// because it ends an authenticated session, advances the epoch.
	result := controller.Bootstrap(ctx)
	assert.False(t, result.Success)
	assert.Equal(t, StateUnauthenticated, controller.State())
	assert.Empty(t, store.Token(ctx))
	assert.Greater(t, controller.Epoch(), epochWhileAuthenticated)
}

func TestRevalidation_RejectedWhileAuthenticated(t *testing.T) {
	rejecting := false
	controller, store := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if rejecting && r.URL.Path == "/users/me" {
			writeJSON(t, w, http.StatusUnauthorized, map[string]any{
				"success": false, "message": "Token expirado",
			})
			return
		}
		loginHandler(t)(w, r)
	})
	ctx := context.Background()

	require.True(t, controller.Login(ctx, "user@test.cl", "secret1").Success)
	epochWhileAuthenticated := controller.Epoch()
	rejecting = true

	result := controller.Bootstrap(ctx)

	assert.False(t, result.Success)
	assert.Equal(t, StateUnauthenticated, controller.State())
	assert.Empty(t, store.Token(ctx))
	assert.Greater(t, controller.Epoch(), epochWhileAuthenticated)
}

func TestLogout_Idempotent(t *testing.T) {
	controller, store := newFixture(t, loginHandler(t))
	ctx := context.Background()

	require.True(t, controller.Login(ctx, "user@test.cl", "secret1").Success)

	first := controller.Logout(ctx)
	assert.True(t, first.Success)
	assert.Equal(t, StateUnauthenticated, controller.State())
	assert.Empty(t, store.Token(ctx))

	// A repeated logout still ends Unauthenticated with an empty store.
	second := controller.Logout(ctx)
	assert.True(t, second.Success)
	assert.Equal(t, StateUnauthenticated, controller.State())
	assert.Empty(t, store.Token(ctx))
	assert.Nil(t, controller.Snapshot().User)
}

func TestEpoch_StrictlyIncreases(t *testing.T) {
	controller, _ := newFixture(t, loginHandler(t))
	ctx := context.Background()

	last := controller.Epoch()
	steps := []func() bool{
		func() bool { return controller.Login(ctx, "user@test.cl", "secret1").Success },
		func() bool { return controller.Logout(ctx).Success },
		func() bool { return controller.Login(ctx, "user@test.cl", "secret1").Success },
		func() bool { return controller.Logout(ctx).Success },
		func() bool { return controller.Logout(ctx).Success },
	}
	for i, step := range steps {
		require.True(t, step(), "step %d", i)
		current := controller.Epoch()
		assert.Greater(t, current, last, "step %d must advance the epoch", i)
		last = current
	}
}

func TestUpdateUser_KeepsTokenAndEpoch(t *testing.T) {
	controller, store := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/me" && r.Method == http.MethodPost {
			var req api.UpdateProfileRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Beatriz", req.FirstName)
			writeJSON(t, w, http.StatusOK, map[string]any{
				"success": true,
				"data":    map[string]any{"id": 1, "firstName": "Beatriz", "email": "user@test.cl"},
			})
			return
		}
		loginHandler(t)(w, r)
	})
	ctx := context.Background()

	require.True(t, controller.Login(ctx, "user@test.cl", "secret1").Success)
	epochBefore := controller.Epoch()

	result := controller.UpdateUser(ctx, api.UpdateProfileRequest{FirstName: "Beatriz"})

	require.True(t, result.Success)
	assert.Equal(t, "Beatriz", controller.Snapshot().User.FirstName)
	assert.Equal(t, "Beatriz", store.User(ctx).FirstName)
	assert.Equal(t, "abc", store.Token(ctx))
	assert.Equal(t, epochBefore, controller.Epoch())
}

func TestUpdateUser_FailureLeavesStateUntouched(t *testing.T) {
	failing := false
	controller, _ := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if failing {
			writeJSON(t, w, http.StatusUnprocessableEntity, map[string]any{
				"success": false,
				"message": "Validation failed",
				"details": []map[string]string{{"field": "firstName", "message": "es requerido"}},
			})
			return
		}
		loginHandler(t)(w, r)
	})
	ctx := context.Background()

	require.True(t, controller.Login(ctx, "user@test.cl", "secret1").Success)
	failing = true

	result := controller.UpdateUser(ctx, api.UpdateProfileRequest{})

	assert.False(t, result.Success)
	assert.Equal(t, "firstName: es requerido", result.Err)
	assert.Equal(t, "Ana", controller.Snapshot().User.FirstName)
	assert.Equal(t, StateAuthenticated, controller.State())
}

func TestEnsureDeviceID_StableAcrossCalls(t *testing.T) {
	controller, store := newFixture(t, loginHandler(t))
	ctx := context.Background()

	first := controller.EnsureDeviceID(ctx)
	require.NotEmpty(t, first)
	assert.Equal(t, first, store.DeviceID(ctx))
	assert.Equal(t, first, controller.EnsureDeviceID(ctx))
}

func TestSnapshot_LoadingUntilBootstrap(t *testing.T) {
	controller, _ := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{}})
	})

	assert.True(t, controller.Snapshot().Loading)
	controller.Bootstrap(context.Background())
	assert.False(t, controller.Snapshot().Loading)
}
