// Package storage provides the record store: a key-value persistence
// facade over named collections of JSON-serialized records.
package storage

import "context"

// Collection and scalar key names. Each collection holds one JSON array;
// Language holds a bare locale code.
const (
	Vendors   = "vendors"
	Suppliers = "suppliers"
	Orders    = "orders"
	Language  = "language"
)

// KV defines the key-value backend for the record store. This abstraction
// allows swapping storage backends (SQLite, a real server-side store, etc.)
// without changing the service layer.
type KV interface {
	// Get returns the payload stored under key, and whether one exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put overwrites the payload stored under key. Writes are atomic at
	// key granularity; there is no transactional guarantee across keys.
	Put(ctx context.Context, key string, payload []byte) error

	// Delete removes the key entirely. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Quarantine sets aside an unparsable payload for key so that a
	// corrupt collection is kept for inspection rather than lost.
	Quarantine(ctx context.Context, key string, payload []byte) error

	// Close releases any resources held by the backend.
	Close() error
}
