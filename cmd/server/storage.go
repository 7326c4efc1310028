package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/emphasis-trainer/internal/config"
	"github.com/phrazzld/emphasis-trainer/internal/platform/memory"
	"github.com/phrazzld/emphasis-trainer/internal/platform/postgres"
	"github.com/phrazzld/emphasis-trainer/internal/platform/sqlite"
	"github.com/phrazzld/emphasis-trainer/internal/redact"
	"github.com/phrazzld/emphasis-trainer/internal/store"
)

// openStore connects the configured statistics backend, applying schema
// migrations for the SQL drivers. The returned function releases it.
func openStore(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (store.KVStore, func() error, error) {
	log := logger.With(
		slog.String("component", "storage"),
		slog.String("driver", cfg.Driver))

	switch cfg.Driver {
	case config.DriverMemory:
		log.Warn("statistics are kept in memory and lost on exit")
		return memory.NewKVStore(), func() error { return nil }, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		if err := sqlite.Migrate(ctx, db, log); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to migrate sqlite database: %w", err)
		}
		log.Info("statistics storage ready", slog.String("dsn", redact.DSN(cfg.DSN)))
		return sqlite.NewKVStore(db, logger), db.Close, nil

	case config.DriverPostgres:
		pool, err := postgres.Connect(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to migrate postgres database: %w", err)
		}
		log.Info("statistics storage ready", slog.String("dsn", redact.DSN(cfg.DSN)))
		return postgres.NewPostgresKVStore(pool, logger), func() error { pool.Close(); return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
