package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"go.etcd.io/bbolt"

	"github.com/petcare-cl/petcare-cli/internal/client/storage"
	"github.com/petcare-cl/petcare-cli/internal/crypto"
	"github.com/petcare-cl/petcare-cli/pkg/api"
)

// Compile-time check that Store implements storage.Store.
var _ storage.Store = (*Store)(nil)

// setItem serializes value to JSON and writes it under key.
func (s *Store) setItem(key []byte, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Error("failed to marshal session entry", "key", string(key), "error", err)
		return false
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}
		return bucket.Put(key, data)
	})
	if err != nil {
		slog.Error("failed to save session entry", "key", string(key), "error", err)
		return false
	}
	return true
}

// getItem reads the entry under key into out. Absent or corrupt entries
// report false; out is left untouched in that case.
func (s *Store) getItem(key []byte, out any) bool {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}
		if data := bucket.Get(key); data != nil {
			raw = append(raw, data...)
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to read session entry", "key", string(key), "error", err)
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		slog.Warn("corrupt session entry ignored", "key", string(key), "error", err)
		return false
	}
	return true
}

// removeItem deletes the entry under key. Deleting an absent key succeeds.
func (s *Store) removeItem(key []byte) bool {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}
		return bucket.Delete(key)
	})
	if err != nil {
		slog.Error("failed to remove session entry", "key", string(key), "error", err)
		return false
	}
	return true
}

// saveSealed seals a token with the device key and stores it.
func (s *Store) saveSealed(key []byte, token string) bool {
	sealed, err := crypto.SealToBase64([]byte(token), s.sealKey)
	if err != nil {
		slog.Error("failed to seal token", "key", string(key), "error", err)
		return false
	}
	return s.setItem(key, sealed)
}

// loadSealed reads and unseals a stored token. Any fault reads as "".
func (s *Store) loadSealed(key []byte) string {
	var sealed string
	if !s.getItem(key, &sealed) {
		return ""
	}
	plain, err := crypto.OpenFromBase64(sealed, s.sealKey)
	if err != nil {
		slog.Warn("failed to unseal token, treating as absent", "key", string(key), "error", err)
		return ""
	}
	return string(plain)
}

// SaveToken persists the bearer token sealed at rest.
func (s *Store) SaveToken(_ context.Context, token string) bool {
	return s.saveSealed(keyAuthToken, token)
}

// Token returns the stored bearer token, or "" if absent or unreadable.
func (s *Store) Token(_ context.Context) string {
	return s.loadSealed(keyAuthToken)
}

// RemoveToken deletes the stored bearer token.
func (s *Store) RemoveToken(_ context.Context) bool {
	return s.removeItem(keyAuthToken)
}

// SaveUser persists the user snapshot.
func (s *Store) SaveUser(_ context.Context, user *api.User) bool {
	if user == nil {
		slog.Error("refusing to save nil user snapshot")
		return false
	}
	return s.setItem(keyUserData, user)
}

// User returns the stored user snapshot, or nil.
func (s *Store) User(_ context.Context) *api.User {
	var user api.User
	if !s.getItem(keyUserData, &user) {
		return nil
	}
	return &user
}

// RemoveUser deletes the stored user snapshot.
func (s *Store) RemoveUser(_ context.Context) bool {
	return s.removeItem(keyUserData)
}

// SaveRefreshToken persists the refresh token sealed at rest.
func (s *Store) SaveRefreshToken(_ context.Context, token string) bool {
	return s.saveSealed(keyRefreshToken, token)
}

// RefreshToken returns the stored refresh token, or "".
func (s *Store) RefreshToken(_ context.Context) string {
	return s.loadSealed(keyRefreshToken)
}

// RemoveRefreshToken deletes the stored refresh token.
func (s *Store) RemoveRefreshToken(_ context.Context) bool {
	return s.removeItem(keyRefreshToken)
}

// SaveDeviceID persists the per-install device identifier.
func (s *Store) SaveDeviceID(_ context.Context, id string) bool {
	return s.setItem(keyDeviceID, id)
}

// DeviceID returns the stored device identifier, or "".
func (s *Store) DeviceID(_ context.Context) string {
	var id string
	if !s.getItem(keyDeviceID, &id) {
		return ""
	}
	return id
}

// PurgeCredentials removes the token and the user snapshot. Both removals
// run even if the first fails.
func (s *Store) PurgeCredentials(ctx context.Context) bool {
	tokenOK := s.RemoveToken(ctx)
	userOK := s.RemoveUser(ctx)
	return tokenOK && userOK
}

// Clear removes every session entry.
func (s *Store) Clear(_ context.Context) bool {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketSession); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketSession)
		return err
	})
	if err != nil {
		slog.Error("failed to clear session storage", "error", err)
		return false
	}
	return true
}
