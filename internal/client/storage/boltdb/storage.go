// Package boltdb implements the client KV contract on top of BoltDB.
package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/akulikov/stockpile/internal/client/storage"
)

// bucketApp holds every namespaced client key (session, preferences).
var bucketApp = []byte("stockpile")

// Storage represents BoltDB storage implementation for the client.
type Storage struct {
	db *bbolt.DB
}

// Compile-time check that Storage implements storage.KV
var _ storage.KV = (*Storage)(nil)

// New creates a new BoltDB storage instance.
// dbPath is the path to the BoltDB database file.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketApp); err != nil {
			return fmt.Errorf("failed to create app bucket: %w", err)
		}
		return nil
	})
}

// Get returns the value stored under key.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketApp)
		if bucket == nil {
			return fmt.Errorf("app bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrKeyNotFound
		}

		// Copy out: bbolt values are only valid inside the transaction.
		value = make([]byte, len(data))
		copy(value, data)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Set stores value under key.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketApp)
		if bucket == nil {
			return fmt.Errorf("app bucket not found")
		}

		if err := bucket.Put([]byte(key), value); err != nil {
			return fmt.Errorf("failed to save value: %w", err)
		}

		return nil
	})
}

// Delete removes key. Absent keys are ignored.
func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketApp)
		if bucket == nil {
			return fmt.Errorf("app bucket not found")
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete value: %w", err)
		}

		return nil
	})
}

// Clear removes every key in the application namespace.
func (s *Storage) Clear(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketApp); err != nil {
			return fmt.Errorf("failed to drop app bucket: %w", err)
		}
		if _, err := tx.CreateBucket(bucketApp); err != nil {
			return fmt.Errorf("failed to recreate app bucket: %w", err)
		}
		return nil
	})
}
