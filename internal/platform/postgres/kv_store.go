package postgres

import (
	"context"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/phrazzld/emphasis-trainer/internal/store"
)

const (
	entity  = "kv"
	kvTable = "kv_entries"
)

// PostgresKVStore implements the store.KVStore interface
// using a PostgreSQL database as the storage backend.
type PostgresKVStore struct {
	db      Querier
	logger  *slog.Logger
	builder sq.StatementBuilderType
}

// Ensure PostgresKVStore implements store.KVStore interface
var _ store.KVStore = (*PostgresKVStore)(nil)

// NewPostgresKVStore creates a new PostgreSQL implementation of the KVStore interface.
// It accepts a pool or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresKVStore(db Querier, logger *slog.Logger) *PostgresKVStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresKVStore{
		db:      db,
		logger:  logger.With(slog.String("component", "postgres_kv_store")),
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Get implements store.KVStore.Get.
// Returns store.ErrKeyNotFound if no row exists for key.
func (s *PostgresKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := s.builder.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, store.NewStoreError(entity, "get", "failed to build query", err)
	}

	var value []byte
	if err := s.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		err = MapError(err)
		if store.IsNotFoundError(err) {
			s.logger.Debug("key not found", slog.String("key", key))
			return nil, err
		}
		s.logger.Error("failed to read value",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError(entity, "get", "failed to read value", err)
	}

	return value, nil
}

// Set implements store.KVStore.Set.
func (s *PostgresKVStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return store.ErrEmptyKey
	}
	if value == nil {
		value = []byte{}
	}

	query, args, err := s.builder.
		Insert(kvTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return store.NewStoreError(entity, "set", "failed to build query", err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		err = MapError(err)
		s.logger.Error("failed to upsert value",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return store.NewStoreError(entity, "set", "failed to upsert value", err)
	}

	s.logger.Debug("value stored",
		slog.String("key", key),
		slog.Int("bytes", len(value)))
	return nil
}
