package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

var bucketAccounts = []byte("accounts")

// BoltStore implements Store using BoltDB, for memory-bounded operation on
// large account sets. BoltDB keeps keys in byte order, which for pubkey
// strings is the lexicographic order Traverse requires.
type BoltStore struct {
	db   *bolt.DB
	path string
}

// NewBoltStore creates a new BoltDB-backed store under dataDir. An existing
// file is removed first: the store's content is always rebuilt from a
// checkpoint, never reused across runs.
func NewBoltStore(dataDir string) (*BoltStore, error) {
	dbPath := filepath.Join(dataDir, "accounts.db")
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove stale store: %w", err)
	}

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketAccounts)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltStore{db: db, path: dbPath}, nil
}

func (s *BoltStore) Get(pubkey string) ([]byte, bool, error) {
	var data []byte
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketAccounts).Get([]byte(pubkey))
		if v == nil {
			return nil
		}
		found = true
		data = make([]byte, len(v))
		copy(data, v)
		return nil
	})
	return data, found, err
}

func (s *BoltStore) Upsert(pubkey string, data []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAccounts).Put([]byte(pubkey), data)
	})
}

func (s *BoltStore) Delete(pubkey string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAccounts).Delete([]byte(pubkey))
	})
}

func (s *BoltStore) Traverse(fn func(pubkey string, data []byte) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAccounts).ForEach(func(k, v []byte) error {
			return fn(string(k), v)
		})
	})
}

// Close closes the database and removes its backing file.
func (s *BoltStore) Close() error {
	if err := s.db.Close(); err != nil {
		return err
	}
	return os.Remove(s.path)
}
