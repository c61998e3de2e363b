// Package bbolt implements the ports.KVStore interface using bbolt
// (embedded B+ tree). All values live in a single bucket. Writes are
// transactional — a crash mid-write cannot corrupt previously committed
// data, which keeps the search history safe across unclean shutdowns.
package bbolt

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// bucketSearch holds all persisted search-subsystem values.
var bucketSearch = []byte("search")

// Store implements ports.KVStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the raw value stored under key, or nil, nil when absent.
func (s *Store) Get(key string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSearch)
		if b == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only
		// valid within tx)
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set stores value under key, overwriting any prior value.
func (s *Store) Set(key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketSearch)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})
}

// Remove deletes the value under key. Idempotent: removing an absent key
// is not an error.
func (s *Store) Remove(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSearch)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}
