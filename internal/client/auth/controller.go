package auth

import (
	"context"
	"net/url"
	"sync"

	"github.com/google/uuid"

	"github.com/petcare-cl/petcare-cli/internal/client/storage"
	"github.com/petcare-cl/petcare-cli/internal/validation"
	"github.com/petcare-cl/petcare-cli/pkg/api"
)

// State of the session lifecycle.
type State int

const (
	// StateUnknown is the initial state before Bootstrap has run.
	StateUnknown State = iota
	// StateValidating means a stored session is being checked against the server.
	StateValidating
	// StateAuthenticated means a validated session is active.
	StateAuthenticated
	// StateUnauthenticated means there is no active session.
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateValidating:
		return "validating"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "invalid"
	}
}

// Result is the tagged outcome of every controller operation. Nothing in
// this package returns an error across its public boundary.
type Result struct {
	User    *api.User
	Err     string
	Success bool
}

// Snapshot is the read-only session view exposed to the rest of the client.
// Loading is true until Bootstrap has resolved, so callers gate protected
// flows on it.
type Snapshot struct {
	User          *api.User
	Epoch         uint64
	Authenticated bool
	Loading       bool
}

// Backend is the slice of the request pipeline the controller uses.
type Backend interface {
	Get(ctx context.Context, path string, query url.Values) *api.Response
	Post(ctx context.Context, path string, body any) *api.Response
}

// Controller owns the session lifecycle: startup recovery, login,
// registration, logout and profile refresh. It is the only writer of the
// session keys in the store; everything else reads through Snapshot.
type Controller struct {
	backend Backend
	store   storage.Store
	user    *api.User
	token   string
	mu      sync.Mutex
	epoch   uint64
	state   State
}

// NewController creates a controller in StateUnknown. Call Bootstrap before
// exposing any protected flow.
func NewController(backend Backend, store storage.Store) *Controller {
	return &Controller{
		backend: backend,
		store:   store,
		state:   StateUnknown,
	}
}

// Bootstrap recovers the persisted session on startup. A stored token+user
// pair is validated against GET /users/me; success refreshes the cached
// user and publishes Authenticated, anything else purges the store and
// publishes Unauthenticated. Re-runnable: a later call revalidates the
// current credentials the same way.
func (c *Controller) Bootstrap(ctx context.Context) Result {
	c.mu.Lock()
	// Validating overwrites the state, so remember whether this run tears
	// down an authenticated session: that transition must advance the epoch.
	wasAuthenticated := c.state == StateAuthenticated
	c.state = StateValidating
	c.mu.Unlock()

	token := c.store.Token(ctx)
	user := c.store.User(ctx)
	if token == "" || user == nil {
		// Nothing stored: no purge. Happens after a pipeline-level 401
		// purge too, so the epoch still moves when a session ends here.
		c.mu.Lock()
		c.user = nil
		c.token = ""
		c.state = StateUnauthenticated
		if wasAuthenticated {
			c.epoch++
		}
		c.mu.Unlock()
		return Result{Err: "no hay sesión guardada"}
	}

	resp := c.backend.Get(ctx, "/users/me", nil)
	if !resp.Success {
		// Stored token rejected (or unreachable backend): treat identically
		// to an explicit validation failure.
		return c.invalidate(ctx, resp.ErrorText(), wasAuthenticated)
	}

	var fresh api.User
	if err := resp.DecodeData(&fresh); err != nil {
		return c.invalidate(ctx, err.Error(), wasAuthenticated)
	}

	// Refresh the cached snapshot alongside the existing token.
	c.store.SaveToken(ctx, token)
	c.store.SaveUser(ctx, &fresh)

	c.mu.Lock()
	c.user = &fresh
	c.token = token
	c.state = StateAuthenticated
	c.epoch++
	c.mu.Unlock()

	return Result{Success: true, User: &fresh}
}

// invalidate purges the store and forces Unauthenticated, advancing the
// epoch when an authenticated session is being torn down.
func (c *Controller) invalidate(ctx context.Context, reason string, wasAuthenticated bool) Result {
	c.store.PurgeCredentials(ctx)

	c.mu.Lock()
	c.user = nil
	c.token = ""
	c.state = StateUnauthenticated
	if wasAuthenticated {
		c.epoch++
	}
	c.mu.Unlock()

	return Result{Err: reason}
}

// Login authenticates against POST /auth/login and persists the returned
// session.
func (c *Controller) Login(ctx context.Context, email, password string) Result {
	if err := validation.Login(email, password); err != nil {
		return Result{Err: err.Error()}
	}

	resp := c.backend.Post(ctx, "/auth/login", api.LoginRequest{Email: email, Password: password})
	if !resp.Success {
		return Result{Err: resp.ErrorText()}
	}

	var session api.SessionData
	if err := resp.DecodeData(&session); err != nil {
		return Result{Err: err.Error()}
	}

	result := c.SetSession(ctx, session.Token, &session.User)
	// Only a persisted session gets a refresh token; a failed save must not
	// leave one behind for a session that never existed.
	if result.Success && session.RefreshToken != "" {
		c.store.SaveRefreshToken(ctx, session.RefreshToken)
	}
	return result
}

// Register creates a new account via POST /auth/register and persists the
// returned session.
func (c *Controller) Register(ctx context.Context, req api.RegisterRequest) Result {
	if err := validation.Register(req); err != nil {
		return Result{Err: err.Error()}
	}

	resp := c.backend.Post(ctx, "/auth/register", req)
	if !resp.Success {
		return Result{Err: resp.ErrorText()}
	}

	var session api.SessionData
	if err := resp.DecodeData(&session); err != nil {
		return Result{Err: err.Error()}
	}

	return c.SetSession(ctx, session.Token, &session.User)
}

// SetSession persists a token+user pair as the new session. If persistence
// fails the in-memory state is left untouched, keeping memory and disk
// consistent.
func (c *Controller) SetSession(ctx context.Context, token string, user *api.User) Result {
	if !c.store.SaveToken(ctx, token) || !c.store.SaveUser(ctx, user) {
		// Drop whatever half was written.
		c.store.PurgeCredentials(ctx)
		return Result{Err: "no se pudo guardar la sesión"}
	}

	c.mu.Lock()
	c.user = user
	c.token = token
	c.state = StateAuthenticated
	c.epoch++
	c.mu.Unlock()

	return Result{Success: true, User: user}
}

// Logout always drives the local state to Unauthenticated and advances the
// epoch, even when the store purge fails: the user must never look logged
// in after asking to log out. The result only reports whether the purge
// itself was clean.
func (c *Controller) Logout(ctx context.Context) Result {
	clean := c.store.PurgeCredentials(ctx)

	c.mu.Lock()
	c.user = nil
	c.token = ""
	c.state = StateUnauthenticated
	c.epoch++
	c.mu.Unlock()

	if !clean {
		return Result{Err: "no se pudo eliminar la sesión local"}
	}
	return Result{Success: true}
}

// UpdateUser applies a partial profile update through POST /users/me. On
// success the cached user is overwritten in memory and on disk; the token
// and the epoch are untouched. On failure the prior state survives.
func (c *Controller) UpdateUser(ctx context.Context, req api.UpdateProfileRequest) Result {
	resp := c.backend.Post(ctx, "/users/me", req)
	if !resp.Success {
		return Result{Err: resp.ErrorText()}
	}

	var updated api.User
	if err := resp.DecodeData(&updated); err != nil {
		return Result{Err: err.Error()}
	}

	return c.replaceUser(ctx, &updated)
}

// RefreshProfile re-fetches the profile through GET /users/me with the same
// overwrite semantics as UpdateUser.
func (c *Controller) RefreshProfile(ctx context.Context) Result {
	resp := c.backend.Get(ctx, "/users/me", nil)
	if !resp.Success {
		return Result{Err: resp.ErrorText()}
	}

	var updated api.User
	if err := resp.DecodeData(&updated); err != nil {
		return Result{Err: err.Error()}
	}

	return c.replaceUser(ctx, &updated)
}

func (c *Controller) replaceUser(ctx context.Context, updated *api.User) Result {
	c.store.SaveUser(ctx, updated)

	c.mu.Lock()
	c.user = updated
	c.mu.Unlock()

	return Result{Success: true, User: updated}
}

// ValidateToken asks the server whether the current token is still accepted.
func (c *Controller) ValidateToken(ctx context.Context) bool {
	return c.backend.Get(ctx, "/auth/validate", nil).Success
}

// EnsureDeviceID returns the per-install device ID, generating and
// persisting one on first run.
func (c *Controller) EnsureDeviceID(ctx context.Context) string {
	if id := c.store.DeviceID(ctx); id != "" {
		return id
	}
	id := uuid.New().String()
	c.store.SaveDeviceID(ctx, id)
	return id
}

// Snapshot returns the read-only session view.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		User:          c.user,
		Epoch:         c.epoch,
		Authenticated: c.state == StateAuthenticated,
		Loading:       c.state == StateUnknown || c.state == StateValidating,
	}
}

// Token returns the in-memory bearer token of the authenticated session,
// or "" when no session is active.
func (c *Controller) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Epoch returns the session epoch. It strictly increases on every
// transition into or out of Authenticated; consumers key full navigation
// resets on it.
func (c *Controller) Epoch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch
}
