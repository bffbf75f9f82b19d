package storage

import (
	"context"

	"github.com/petcare-cl/petcare-cli/pkg/api"
)

// Store is the persisted session cache: bearer token, user snapshot,
// optional refresh token and the per-install device ID.
//
// Every operation is best-effort and never returns an error. Reads degrade
// to the zero value ("", nil) when the entry is absent or corrupt; writes
// and removes report success as a bool. A storage hiccup must degrade to
// "no session", never crash the session lifecycle.
type Store interface {
	// SaveToken persists the bearer token.
	SaveToken(ctx context.Context, token string) bool

	// Token returns the stored bearer token, or "" if absent or unreadable.
	Token(ctx context.Context) string

	// RemoveToken deletes the stored token. Idempotent.
	RemoveToken(ctx context.Context) bool

	// SaveUser persists the user snapshot. The snapshot is an opaque cache;
	// its shape is never validated on read.
	SaveUser(ctx context.Context, user *api.User) bool

	// User returns the stored user snapshot, or nil if absent or unreadable.
	User(ctx context.Context) *api.User

	// RemoveUser deletes the stored user snapshot. Idempotent.
	RemoveUser(ctx context.Context) bool

	// SaveRefreshToken persists the refresh token.
	SaveRefreshToken(ctx context.Context, token string) bool

	// RefreshToken returns the stored refresh token, or "".
	RefreshToken(ctx context.Context) string

	// RemoveRefreshToken deletes the stored refresh token. Idempotent.
	RemoveRefreshToken(ctx context.Context) bool

	// SaveDeviceID persists the per-install device identifier.
	SaveDeviceID(ctx context.Context, id string) bool

	// DeviceID returns the stored device identifier, or "".
	DeviceID(ctx context.Context) string

	// PurgeCredentials removes the token and the user snapshot together.
	// Used on logout and when the server answers 401. The device ID and
	// refresh token survive.
	PurgeCredentials(ctx context.Context) bool

	// Clear removes every session entry. Hard-reset flows only, not part
	// of normal logout.
	Clear(ctx context.Context) bool
}
