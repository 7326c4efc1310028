package sqlite

import (
	"context"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/phrazzld/emphasis-trainer/internal/store"
)

const (
	entity  = "kv"
	kvTable = "kv_entries"
)

// KVStore implements store.KVStore on the kv_entries table.
type KVStore struct {
	db      store.DBTX
	logger  *slog.Logger
	builder sq.StatementBuilderType
	now     func() time.Time
}

// Ensure KVStore implements store.KVStore interface
var _ store.KVStore = (*KVStore)(nil)

// NewKVStore creates a store over a migrated database connection or
// transaction. If logger is nil, a default logger will be used.
func NewKVStore(db store.DBTX, logger *slog.Logger) *KVStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &KVStore{
		db:      db,
		logger:  logger.With(slog.String("component", "sqlite_kv_store")),
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now:     time.Now,
	}
}

// Get implements store.KVStore.Get.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := s.builder.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, store.NewStoreError(entity, "get", "failed to build query", err)
	}

	var value []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		err = MapError(err)
		if store.IsNotFoundError(err) {
			s.logger.Debug("key not found", slog.String("key", key))
			return nil, err
		}
		return nil, store.NewStoreError(entity, "get", "failed to read value", err)
	}

	return value, nil
}

// Set implements store.KVStore.Set.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return store.ErrEmptyKey
	}
	if value == nil {
		value = []byte{}
	}

	query, args, err := s.builder.
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, s.now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return store.NewStoreError(entity, "set", "failed to build query", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return store.NewStoreError(entity, "set", "failed to upsert value", MapError(err))
	}

	s.logger.Debug("value stored",
		slog.String("key", key),
		slog.Int("bytes", len(value)))
	return nil
}
