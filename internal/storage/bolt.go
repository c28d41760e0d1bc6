package storage

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

const boltBucketCollections = "collections"

// Bolt is the bbolt-backed Gateway. bbolt serializes writers, so every
// full-collection write lands whole; racing logical owners still overwrite
// each other at the collection level (last writer wins).
type Bolt struct {
	storage *bbolt.DB
}

// OpenBolt opens (creating if needed) the database at path.
func OpenBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create data directory")
	}

	instance, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open database %s", path)
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketCollections))
		return err
	}); err != nil {
		_ = instance.Close()
		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

func (b *Bolt) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var value []byte
	err := b.storage.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket([]byte(boltBucketCollections)).Get([]byte(key))
		if raw != nil {
			value = make([]byte, len(raw))
			copy(value, raw)
		}
		return nil
	})
	return value, err
}

func (b *Bolt) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketCollections)).Put([]byte(key), value)
	})
}

func (b *Bolt) Update(ctx context.Context, fn func(Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		return fn(boltTxn{bucket: tx.Bucket([]byte(boltBucketCollections))})
	})
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

type boltTxn struct {
	bucket *bbolt.Bucket
}

func (t boltTxn) Get(key string) []byte {
	raw := t.bucket.Get([]byte(key))
	if raw == nil {
		return nil
	}
	value := make([]byte, len(raw))
	copy(value, raw)
	return value
}

func (t boltTxn) Put(key string, value []byte) error {
	return t.bucket.Put([]byte(key), value)
}
