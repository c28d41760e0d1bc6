// Package storage provides the single key-value boundary all template and
// category mutation passes through. The store holds exactly two logical
// keys, each carrying an entire JSON-encoded collection as one value; there
// are no per-record keys and no indices.
package storage

import "context"

const (
	// KeyTemplates holds the full template collection.
	KeyTemplates = "templates"
	// KeyCategories holds the full category collection.
	KeyCategories = "categories"
)

// Txn exposes key access inside a single atomic write.
type Txn interface {
	Get(key string) []byte
	Put(key string, value []byte) error
}

// Gateway is the persistence boundary. Get returns nil for a key that has
// never been written. Update runs fn inside one transaction so writes to
// both keys become visible together.
type Gateway interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Update(ctx context.Context, fn func(Txn) error) error
	Close() error
}
