// Package memory provides an in-process implementation of store.KVStore.
// Values do not survive a restart; the store backs tests and the
// "memory" storage driver.
package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/phrazzld/emphasis-trainer/internal/store"
)

// KVStore is a mutex-guarded map. It is safe for concurrent use, so several
// statistics engines can share one instance the way separate processes share
// a database.
type KVStore struct {
	mu     sync.RWMutex
	values map[string][]byte
	gets   int
	sets   int
}

// Ensure KVStore implements store.KVStore interface
var _ store.KVStore = (*KVStore)(nil)

// NewKVStore creates an empty store.
func NewKVStore() *KVStore {
	return &KVStore{values: make(map[string][]byte)}
}

// Get implements store.KVStore.Get.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.gets++
	v, ok := s.values[key]
	if !ok {
		return nil, store.ErrKeyNotFound
	}
	return bytes.Clone(v), nil
}

// Set implements store.KVStore.Set.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return store.ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sets++
	s.values[key] = bytes.Clone(value)
	return nil
}

// Reads returns how many Get calls reached the store.
func (s *KVStore) Reads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gets
}

// Writes returns how many Set calls succeeded.
func (s *KVStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sets
}
