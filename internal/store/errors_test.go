package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "ErrKeyNotFound",
			err:      ErrKeyNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrKeyNotFound",
			err:      fmt.Errorf("failed to read stats: %w", ErrKeyNotFound),
			expected: true,
		},
		{
			name:     "StoreError wrapping ErrKeyNotFound",
			err:      NewStoreError("kv", "get", "missing", ErrKeyNotFound),
			expected: true,
		},
		{
			name:     "ErrEmptyKey",
			err:      ErrEmptyKey,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		cause := errors.New("disk full")
		err := NewStoreError("kv", "set", "failed to upsert value", cause)

		assert.Equal(t, "set operation on kv failed: failed to upsert value: disk full", err.Error())
		assert.ErrorIs(t, err, cause)

		var storeErr *StoreError
		assert.ErrorAs(t, fmt.Errorf("outer: %w", err), &storeErr)
		assert.Equal(t, "kv", storeErr.Entity)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := &StoreError{Entity: "kv", Operation: "get", Message: "closed"}

		assert.Equal(t, "get operation on kv failed: closed", err.Error())
		assert.Nil(t, err.Unwrap())
	})
}

func TestErrEmptyKeyIsInvalidEntity(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrEmptyKey, ErrInvalidEntity)
	assert.Equal(t, "invalid entity: empty key", ErrEmptyKey.Error())
	assert.Equal(t, "entity not found: key", ErrKeyNotFound.Error())
}
