package boltdb

import (
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/petcare-cl/petcare-cli/internal/crypto"
)

// Session entry keys inside the session bucket.
var (
	bucketSession = []byte("session")

	keyAuthToken    = []byte("auth_token")
	keyUserData     = []byte("user_data")
	keyRefreshToken = []byte("refresh_token")
	keyDeviceID     = []byte("device_id")
)

// Store is the bbolt-backed session store. The bearer and refresh tokens
// are sealed with the device key before they touch disk.
type Store struct {
	db      *bbolt.DB
	sealKey []byte
}

// New opens (or creates) the session database at dbPath. sealKey must be a
// crypto.KeySize key, normally loaded via crypto.LoadOrCreateKey.
func New(dbPath string, sealKey []byte) (*Store, error) {
	if len(sealKey) != crypto.KeySize {
		return nil, fmt.Errorf("seal key must be %d bytes, got %d", crypto.KeySize, len(sealKey))
	}

	db, err := bbolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	store := &Store{db: db, sealKey: sealKey}

	if err := store.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return store, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketSession); err != nil {
			return fmt.Errorf("failed to create session bucket: %w", err)
		}
		return nil
	})
}
