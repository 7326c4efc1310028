package store

import "context"

// KVStore persists opaque values under string keys.
type KVStore interface {
	// Get returns the value stored under key.
	// Returns ErrKeyNotFound (which is ErrNotFound) if nothing is stored.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	// Returns ErrInvalidEntity if key is empty.
	Set(ctx context.Context, key string, value []byte) error
}
