// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package boltstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/danielhkuo/council-vote/ledger"
)

var (
	candidatesBucket  = []byte("candidates")
	votersBucket      = []byte("voters")
	votersByNISBucket = []byte("voters_by_nis")
)

var ErrBucketNotFound = errors.New("bucket not found")

// Store implements ledger.Store on a bbolt file. bbolt allows one writer at a
// time, so Update transactions are serializable.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database file at path and its buckets.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(btx *bolt.Tx) error {
		for _, name := range [][]byte{candidatesBucket, votersBucket, votersByNISBucket} {
			if _, err := btx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create buckets: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) View(ctx context.Context, fn func(ledger.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(btx *bolt.Tx) error {
		return fn(&tx{tx: btx})
	})
}

func (s *Store) Update(ctx context.Context, fn func(ledger.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(btx *bolt.Tx) error {
		if err := fn(&tx{tx: btx}); err != nil {
			return err
		}
		// Caller gave up while we held the write lock: roll back
		return ctx.Err()
	})
}
